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

// Not defines a node computing the boolean negation of x, in the module
// under construction.
func (p *Builder) Not(x *Bool) *Bool {
	return p.notAt("Not", callSite(1), x)
}

// And defines a node computing the boolean conjunction of x and y, in the
// module under construction.
func (p *Builder) And(x *Bool, y *Bool) *Bool {
	return p.boolOpAt("And", callSite(1), "and", x, y)
}

// Or defines a node computing the boolean disjunction of x and y, in the
// module under construction.
func (p *Builder) Or(x *Bool, y *Bool) *Bool {
	return p.orAt("Or", callSite(1), x, y)
}

// Eq defines a node comparing x and y for equality, in the module under
// construction.
func (p *Builder) Eq(x *Bits, y *Bits) *Bool {
	site := callSite(1)
	m := p.module("Eq", site)
	xid := m.ref("Eq", site, x)
	yid := m.ref("Eq", site, y)
	//
	return boundBool(m, m.newExprNode(site, "eq", "u1", xid, yid))
}

// Add defines a node computing the (unsigned) sum of x and y, in the module
// under construction.  The width of the sum is left for inference.
func (p *Builder) Add(x *Bits, y *Bits) *Bits {
	site := callSite(1)
	m := p.module("Add", site)
	xid := m.ref("Add", site, x)
	yid := m.ref("Add", site, y)
	//
	return boundBits(m, m.newExprNode(site, "add", Inferred().String(), xid, yid), Inferred())
}

// AsBits exposes the bit-vector view of this boolean, for use with
// operations accepting arbitrary bit vectors (e.g. Add, or the data
// arguments of Printf).
func (p *Bool) AsBits() *Bits {
	return &p.Bits
}

// notAt implements Not on behalf of an operation at a given site.
func (p *Builder) notAt(op string, site Site, x *Bool) *Bool {
	return p.boolOpAt(op, site, "not", x)
}

// orAt implements Or on behalf of an operation at a given site.
func (p *Builder) orAt(op string, site Site, x *Bool, y *Bool) *Bool {
	return p.boolOpAt(op, site, "or", x, y)
}

// boolOpAt defines a node applying a boolean operator to the given
// arguments, on behalf of an operation at a given site.
func (p *Builder) boolOpAt(op string, site Site, name string, args ...*Bool) *Bool {
	m := p.module(op, site)
	ids := make([]NodeId, len(args))
	//
	for i, arg := range args {
		ids[i] = m.ref(op, site, arg)
	}
	//
	return boundBool(m, m.newExprNode(site, name, "u1", ids...))
}

// boundBool constructs a boolean bound to the given node.
func boundBool(m *Module, id NodeId) *Bool {
	v := NewBool()
	v.bind = &binding{mod: m, id: id}
	//
	return v
}

// boundBits constructs a bit vector of the given width, bound to the given
// node.
func boundBits(m *Module, id NodeId, width Width) *Bits {
	v := &Bits{width: width}
	v.bind = &binding{mod: m, id: id}
	//
	return v
}
