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

// Assert appends a simulation-time assertion to the module under
// construction: in any cycle where the condition is false and the module is
// not under reset, the simulator prints a diagnostic and halts with exit
// code 1.  The diagnostic quotes the site of this call followed by the
// message, with any data arguments interpolated per the format verbs of
// Printf; an empty message defaults to a rendering of the condition itself.
//
// Structurally, one conditional scope is appended, guarded by the negation
// of (condition or reset), containing one print and one halt.  The print is
// additionally gated on the module not being under reset through its enable
// node.  The reset test therefore appears in both the guard and the enable;
// descriptions which splice extra commands into the scope rely on the print
// carrying its own gate, so neither test can be dropped.
func (p *Builder) Assert(cond *Bool, msg string, data ...*Bits) {
	site := callSite(1)
	op := "Assert"
	//
	m := p.module(op, site)
	clk := p.clock(op, site)
	reset := p.reset(op, site)
	// Default the message to a rendering of the condition.
	if msg == "" {
		msg = m.RenderNode(m.ref(op, site, cond))
	}
	//
	format := "Assertion failed at " + site.String() + ": " + msg
	// Validate before anything is allocated.
	checkFormat(op, site, format, len(data))
	// Fire only in cycles where the condition fails outside of reset.
	guard := p.notAt(op, site, p.orAt(op, site, cond, reset))
	//
	p.whenAt(op, site, guard, func() {
		enable := p.notAt(op, site, reset)
		p.printfAt(op, site, clk, enable, format, data)
		p.stopAt(site, clk, 1)
	})
}

// StaticAssert checks a host-level invariant of the circuit description
// itself, at construction time.  A failing static assertion panics
// immediately: it is a bug in the description (or the program running it),
// not a property of the circuit, hence no command is emitted and drivers do
// not translate it into an ordinary error.
func StaticAssert(cond bool, msg string) {
	if !cond {
		panic("static assertion failed: " + msg)
	}
}
