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

// Reg declares a register of the given type in the module under
// construction, attached to the ambient clock.  The register has no reset
// semantics: its power-on contents are indeterminate.  The returned value is
// a fresh clone of the type, bound to the new register node; the argument
// itself is never mutated.
func Reg[T Value](b *Builder, typ T) T {
	op := "Reg"
	site := callSite(1)
	//
	m := b.module(op, site)
	clk := b.clock(op, site)
	checkDeclaredType(b, op, site, typ)
	//
	r := bindNode(m, typ, roleReg, "")
	m.push(&DefReg{Site: site, Reg: nodeOf(r), Clock: clk.id})
	//
	return r.(T)
}

// RegInit declares a register of the given type in the module under
// construction, attached to the ambient clock, which assumes the given
// initial value whenever the ambient reset is asserted.  The initial value
// must be synthesizable (bound in this module, or a literal).
func RegInit[T Value](b *Builder, typ T, init T) T {
	op := "RegInit"
	site := callSite(1)
	//
	checkDeclaredType(b, op, site, typ)
	//
	return regInitAt(b, op, site, typ, init).(T)
}

// RegInitOf declares a register initialised to the given value, deriving the
// register type from that value: a literal bit vector of explicitly declared
// width yields a register of that width, any other bit vector yields a
// register of inferred width, and an aggregate yields a register of the same
// structure.
func RegInitOf[T Value](b *Builder, init T) T {
	op := "RegInitOf"
	site := callSite(1)
	//
	return regInitAt(b, op, site, initType(init), init).(T)
}

// RegNext declares a register capturing the given value on every rising edge
// of the ambient clock, so the register reads as that value delayed by one
// cycle.  The register type is derived from the value: bit vectors yield a
// register of inferred width, aggregates a register of the same structure.
func RegNext[T Value](b *Builder, next T) T {
	op := "RegNext"
	site := callSite(1)
	//
	m := b.module(op, site)
	clk := b.clock(op, site)
	// Check before anything is allocated.
	if !IsSynthesizable(next) {
		abortf(BindingViolation, op, site, "next value %s is neither bound nor a literal", next)
	}
	//
	r := bindNode(m, nextType(next), roleReg, "")
	m.push(&DefReg{Site: site, Reg: nodeOf(r), Clock: clk.id})
	b.connectAt(op, site, r, next)
	//
	return r.(T)
}

// RegNextInit declares a register capturing the given value on every rising
// edge of the ambient clock, and assuming the given initial value whenever
// the ambient reset is asserted.  The register type is derived from the next
// value, not from the initial value: in particular, a bit-vector register
// comes out width-inferred even when the initial value declares its width
// explicitly.
func RegNextInit[T Value](b *Builder, next T, init T) T {
	op := "RegNextInit"
	site := callSite(1)
	//
	if !IsSynthesizable(next) {
		abortf(BindingViolation, op, site, "next value %s is neither bound nor a literal", next)
	}
	//
	r := regInitAt(b, op, site, nextType(next), init).(T)
	b.connectAt(op, site, r, next)
	//
	return r
}

// regInitAt declares an initialised register from an explicit type template,
// on behalf of an operation at a given site.
func regInitAt(b *Builder, op string, site Site, typ Value, init Value) Value {
	m := b.module(op, site)
	clk := b.clock(op, site)
	reset := b.reset(op, site)
	//
	if typ.Kind() != init.Kind() {
		abortf(BindingViolation, op, site,
			"initial value %s (%s) does not match register type %s (%s)",
			init, init.Kind(), typ, typ.Kind())
	} else if !IsSynthesizable(init) {
		abortf(BindingViolation, op, site, "initial value %s is neither bound nor a literal", init)
	}
	//
	// The initial value must be referenced before the reset: an aborting init
	// must not leave a materialised reset literal behind.
	iid := m.ref(op, site, init)
	rid := m.ref(op, site, reset)
	//
	r := bindNode(m, typ, roleReg, "")
	m.push(&DefRegInit{
		Site:  site,
		Reg:   nodeOf(r),
		Clock: clk.id,
		Reset: rid,
		Init:  iid,
	})
	//
	return r
}

// checkDeclaredType enforces the declared-type policy on a register (or
// port) type argument: under the default options the argument must be a pure
// type template, neither bound to a node nor carrying a literal payload.
// With the policy switched off such arguments are silently cloned instead,
// which older descriptions rely on.
func checkDeclaredType(b *Builder, op string, site Site, typ Value) {
	if !b.opts.DeclaredTypeMustBeUnbound {
		return
	}
	//
	if IsBound(typ) {
		abortf(BindingViolation, op, site,
			"declared type %s is already bound (pass a type template, not a value)", typ)
	} else if literalBits(typ) != nil {
		abortf(BindingViolation, op, site,
			"declared type %s is a literal (pass a type template, not a value)", typ)
	}
}

// initType derives a register type from an initial value: literal bit
// vectors of declared width keep that width, other bit vectors come out
// width-inferred, and aggregates keep their structure.
func initType(init Value) Value {
	switch v := init.(type) {
	case *Bool:
		return NewBool()
	case *Bits:
		if v.HasForcedWidth() {
			return &Bits{width: v.width}
		}
		//
		return UIntInferred()
	case *Bundle:
		return v.cloneType()
	default:
		panic("unreachable")
	}
}

// nextType derives a register type from a captured value: bit vectors come
// out width-inferred, aggregates keep their structure.
func nextType(next Value) Value {
	switch v := next.(type) {
	case *Bool:
		return NewBool()
	case *Bits:
		return UIntInferred()
	case *Bundle:
		return v.cloneType()
	default:
		panic("unreachable")
	}
}

// bindNode binds a fresh clone of the given type template to a new node of
// the given module, returning the bound clone.  An empty name falls back to
// the template's name suggestion (if any), and failing that an automatic
// name.
func bindNode(m *Module, tpl Value, role nodeRole, name string) Value {
	if name == "" {
		name = tpl.binder().name
	}
	//
	c := tpl.cloneType()
	id := m.newNode(role, c.typeString(), name)
	//
	e := c.binder()
	e.bind = &binding{mod: m, id: id}
	e.name = m.NodeName(id)
	//
	return c
}

// nodeOf returns the node a bound value is bound to.
func nodeOf(v Value) NodeId {
	return v.binder().bind.id
}
