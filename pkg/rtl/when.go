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

// When runs the given function within a conditional scope of the module
// under construction: commands appended by the function take effect only in
// cycles where the condition holds.  Structurally this brackets those
// commands between a WhenBegin and a WhenEnd in the command list.  Scopes
// nest, and conditions of nested scopes conjoin.
func (p *Builder) When(cond *Bool, fn func()) {
	p.whenAt("When", callSite(1), cond, fn)
}

// whenAt implements When on behalf of an operation at a given site.
func (p *Builder) whenAt(op string, site Site, cond *Bool, fn func()) {
	m := p.module(op, site)
	pred := m.ref(op, site, cond)
	//
	m.push(&WhenBegin{Site: site, Pred: pred})
	fn()
	m.push(&WhenEnd{Site: site})
}
