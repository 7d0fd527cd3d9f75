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

// Connect drives dst with src from this point of the command list onwards,
// subject to any enclosing conditional scopes.  The destination must be a
// register or an output port of the module under construction; the source
// may be anything synthesizable of matching kind.
func (p *Builder) Connect(dst Value, src Value) {
	p.connectAt("Connect", callSite(1), dst, src)
}

// connectAt implements Connect on behalf of an operation at a given site.
func (p *Builder) connectAt(op string, site Site, dst Value, src Value) {
	m := p.module(op, site)
	//
	if dst.Kind() != src.Kind() {
		abortf(BindingViolation, op, site,
			"cannot connect %s value %s to %s value %s", src.Kind(), src, dst.Kind(), dst)
	}
	// Resolve the destination, which must be connectable.  Literals are
	// rejected up front, before a reference would materialise them.
	if !IsBound(dst) && literalBits(dst) != nil {
		abortf(BindingViolation, op, site, "literal %s is not connectable", dst)
	}
	//
	did := m.ref(op, site, dst)
	//
	if role := m.nodes[did.Unwrap()].role; !role.connectable() {
		abortf(BindingViolation, op, site,
			"%s %s is not connectable (destinations must be registers or output ports)", role, dst)
	}
	//
	sid := m.ref(op, site, src)
	//
	m.push(&Connect{Site: site, Dst: did, Src: sid})
}
