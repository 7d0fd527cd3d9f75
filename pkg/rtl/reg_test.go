// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package rtl

import "testing"

// Reg binds a fresh clone and appends exactly one declaration, leaving the
// type template untouched.
func Test_Reg_01(t *testing.T) {
	tpl := UInt(8)
	//
	var r *Bits
	//
	m := build(t, func(b *Builder) {
		r = Reg(b, tpl)
	})
	//
	if IsBound(tpl) {
		t.Errorf("template should remain unbound")
	}
	//
	if !IsBound(r) || r == tpl {
		t.Errorf("register should be a fresh bound clone")
	}
	//
	checkWidth(t, r, 8)
	checkTags(t, m, "defreg")
	//
	cmd := m.Commands()[0].(*DefReg)
	//
	if cmd.Reg != nodeOf(r) {
		t.Errorf("declaration should reference the register node")
	}
	//
	if m.NodeName(cmd.Clock) != "clock" {
		t.Errorf("register should sit on the implicit clock")
	}
	//
	if !cmd.Site.IsKnown() {
		t.Errorf("declaration should record its site")
	}
}

// Registers of aggregate type clone the whole structure.
func Test_Reg_02(t *testing.T) {
	tpl := NewBundle(F("x", UInt(8)), F("y", NewBool()))
	//
	var r *Bundle
	//
	build(t, func(b *Builder) {
		r = Reg(b, tpl)
	})
	//
	if !IsBound(r) || IsBound(tpl) {
		t.Errorf("register should be bound, template should not")
	}
	//
	if r.String() == tpl.String() {
		t.Errorf("register should render as its node, not as its type")
	}
}

// Under the default policy, a bound value cannot stand as a declared type.
func Test_Reg_03(t *testing.T) {
	checkAborts(t, BindingViolation, "Reg", func(b *Builder) {
		r := Reg(b, UInt(8))
		Reg(b, r)
	})
}

// Under the default policy, a literal cannot stand as a declared type.
func Test_Reg_04(t *testing.T) {
	checkAborts(t, BindingViolation, "Reg", func(b *Builder) {
		Reg(b, Lit(5))
	})
}

// With the policy switched off, bound values are silently cloned instead.
func Test_Reg_05(t *testing.T) {
	opts := Options{DeclaredTypeMustBeUnbound: false}
	//
	var r1, r2 *Bits
	//
	m := buildWith(t, opts, func(b *Builder) {
		r1 = Reg(b, UInt(8))
		r2 = Reg(b, r1)
	})
	//
	checkTags(t, m, "defreg", "defreg")
	//
	if nodeOf(r1) == nodeOf(r2) {
		t.Errorf("second register should be a fresh node")
	}
	//
	checkWidth(t, r2, 8)
}

// With the policy switched off, a literal declared type contributes its
// width but not its payload.
func Test_Reg_06(t *testing.T) {
	opts := Options{DeclaredTypeMustBeUnbound: false}
	//
	var r *Bits
	//
	buildWith(t, opts, func(b *Builder) {
		r = Reg(b, LitW(5, 8))
	})
	//
	checkWidth(t, r, 8)
	//
	if r.Lit() != nil {
		t.Errorf("register should not inherit the literal payload")
	}
}

// RegInit records clock, reset and initial value, materialising literal
// initial values as nodes.
func Test_RegInit_01(t *testing.T) {
	var r *Bits
	//
	m := build(t, func(b *Builder) {
		r = RegInit(b, UInt(8), LitW(3, 8))
	})
	//
	checkTags(t, m, "defreginit")
	//
	cmd := m.Commands()[0].(*DefRegInit)
	//
	if cmd.Reg != nodeOf(r) {
		t.Errorf("declaration should reference the register node")
	}
	//
	if m.NodeName(cmd.Clock) != "clock" || m.NodeName(cmd.Reset) != "reset" {
		t.Errorf("register should sit on the implicit clock and reset")
	}
	//
	if m.RenderRef(cmd.Init) != "u8(3)" {
		t.Errorf("unexpected initial value %q", m.RenderRef(cmd.Init))
	}
}

// Initial values may be bound nodes of the same module.
func Test_RegInit_02(t *testing.T) {
	m := build(t, func(b *Builder) {
		seed := Input(b, "seed", UInt(8))
		RegInit(b, UInt(8), seed)
	})
	//
	cmd := m.Commands()[0].(*DefRegInit)
	//
	if m.NodeName(cmd.Init) != "seed" {
		t.Errorf("unexpected initial value %q", m.RenderRef(cmd.Init))
	}
}

// An unbound, non-literal initial value aborts, emitting nothing.
func Test_RegInit_03(t *testing.T) {
	checkAborts(t, BindingViolation, "RegInit", func(b *Builder) {
		RegInit(b, UInt(8), UInt(8))
	})
}

// A value bound in another module cannot initialise a register here.
func Test_RegInit_04(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	//
	var foreign *Bits
	//
	b.Elaborate(ModuleSpec{Name: "first", Build: func(b *Builder) {
		foreign = Reg(b, UInt(8))
	}})
	//
	defer checkRecover(t, BindingViolation, "RegInit")
	//
	b.Elaborate(ModuleSpec{Name: "second", Build: func(b *Builder) {
		RegInit(b, UInt(8), foreign)
	}})
}

// RegInitOf keeps an explicitly declared literal width.
func Test_RegInitOf_01(t *testing.T) {
	var r *Bits
	//
	build(t, func(b *Builder) {
		r = RegInitOf(b, LitW(7, 8))
	})
	//
	checkWidth(t, r, 8)
}

// RegInitOf leaves the width open for a literal whose width was merely
// derived from its payload.
func Test_RegInitOf_02(t *testing.T) {
	var r *Bits
	//
	build(t, func(b *Builder) {
		r = RegInitOf(b, Lit(7))
	})
	//
	if r.Width().IsKnown() {
		t.Errorf("expected inferred width, got %s", r.Width())
	}
}

// RegInitOf leaves the width open for bound values, even of known width.
func Test_RegInitOf_03(t *testing.T) {
	var r *Bits
	//
	build(t, func(b *Builder) {
		seed := Input(b, "seed", UInt(8))
		r = RegInitOf(b, seed)
	})
	//
	if r.Width().IsKnown() {
		t.Errorf("expected inferred width, got %s", r.Width())
	}
}

// RegInitOf of a boolean yields a boolean register.
func Test_RegInitOf_04(t *testing.T) {
	var r *Bool
	//
	build(t, func(b *Builder) {
		r = RegInitOf(b, BoolLit(true))
	})
	//
	checkWidth(t, r.AsBits(), 1)
}

// RegInitOf of an aggregate yields a register of the same structure.
func Test_RegInitOf_05(t *testing.T) {
	var r *Bundle
	//
	m := build(t, func(b *Builder) {
		in := Input(b, "in", NewBundle(F("x", UInt(8))))
		r = RegInitOf(b, in)
	})
	//
	if m.NodeType(nodeOf(r)) != "{x: u8}" {
		t.Errorf("unexpected register type %q", m.NodeType(nodeOf(r)))
	}
}

// RegNext declares a register and connects the captured value to it.
func Test_RegNext_01(t *testing.T) {
	var (
		in, r *Bits
	)
	//
	m := build(t, func(b *Builder) {
		in = Input(b, "in", UInt(8))
		r = RegNext(b, in)
	})
	//
	checkTags(t, m, "defreg", "connect")
	//
	conn := m.Commands()[1].(*Connect)
	//
	if conn.Dst != nodeOf(r) || conn.Src != nodeOf(in) {
		t.Errorf("capture should connect the input to the register")
	}
	//
	if r.Width().IsKnown() {
		t.Errorf("expected inferred width, got %s", r.Width())
	}
}

// RegNext of an unbound, non-literal value aborts before declaring anything.
func Test_RegNext_02(t *testing.T) {
	checkAborts(t, BindingViolation, "RegNext", func(b *Builder) {
		RegNext(b, UInt(8))
	})
}

// RegNext of a boolean stays boolean.
func Test_RegNext_03(t *testing.T) {
	var r *Bool
	//
	build(t, func(b *Builder) {
		flag := Input(b, "flag", NewBool())
		r = RegNext(b, flag)
	})
	//
	checkWidth(t, r.AsBits(), 1)
}

// RegNextInit derives the register type from the captured value, not from
// the initial value: the width stays open even when the initial value
// declares one explicitly.  Existing descriptions depend on this exact
// behaviour, so it must not be "corrected" to consult the initial value.
func Test_RegNextInit_01(t *testing.T) {
	var r *Bits
	//
	m := build(t, func(b *Builder) {
		in := Input(b, "in", UInt(8))
		r = RegNextInit(b, in, LitW(0, 8))
	})
	//
	checkTags(t, m, "defreginit", "connect")
	//
	if r.Width().IsKnown() {
		t.Errorf("expected inferred width, got %s", r.Width())
	}
	//
	cmd := m.Commands()[0].(*DefRegInit)
	//
	if m.RenderRef(cmd.Init) != "u8(0)" {
		t.Errorf("unexpected initial value %q", m.RenderRef(cmd.Init))
	}
}

// RegNextInit requires both the captured and the initial value to be
// synthesizable.
func Test_RegNextInit_02(t *testing.T) {
	checkAborts(t, BindingViolation, "RegNextInit", func(b *Builder) {
		RegNextInit(b, UInt(8), LitW(0, 8))
	})
	//
	checkAborts(t, BindingViolation, "RegNextInit", func(b *Builder) {
		in := Input(b, "in", UInt(8))
		RegNextInit(b, in, UInt(8))
	})
}

// Registers pick up name suggestions attached to their templates.
func Test_Reg_07(t *testing.T) {
	var r *Bits
	//
	m := build(t, func(b *Builder) {
		r = Reg(b, Named(UInt(8), "count"))
	})
	//
	if m.NodeName(nodeOf(r)) != "count" {
		t.Errorf("unexpected register name %q", m.NodeName(nodeOf(r)))
	}
}

// Renaming a bound register takes effect immediately, uniquified against
// names already taken.
func Test_Reg_08(t *testing.T) {
	var r1, r2 *Bits
	//
	m := build(t, func(b *Builder) {
		r1 = Named(Reg(b, UInt(8)), "count")
		r2 = Named(Reg(b, UInt(8)), "count")
	})
	//
	if m.NodeName(nodeOf(r1)) != "count" {
		t.Errorf("unexpected register name %q", m.NodeName(nodeOf(r1)))
	}
	//
	if m.NodeName(nodeOf(r2)) != "count_1" {
		t.Errorf("unexpected register name %q", m.NodeName(nodeOf(r2)))
	}
}
