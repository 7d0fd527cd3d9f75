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

// Printf appends a print command to the module under construction, firing
// on every rising edge of the ambient clock in which the module is not
// under reset.  The format string supports the verbs %d (decimal), %x
// (hexadecimal), %b (binary) and %c (character), one per data argument,
// plus %% for a literal percent sign.  Exactly one command is appended per
// call; the reset gate materialises as the enable node of that command, not
// as a conditional scope.
func (p *Builder) Printf(format string, data ...*Bits) {
	site := callSite(1)
	op := "Printf"
	//
	clk := p.clock(op, site)
	reset := p.reset(op, site)
	// Validate before anything is allocated, so a malformed call leaves the
	// module untouched.
	checkFormat(op, site, format, len(data))
	// Gate on the module not being under reset.
	enable := p.notAt(op, site, reset)
	//
	p.printfAt(op, site, clk, enable, format, data)
}

// Stop appends a halt command to the module under construction, halting
// simulation with the given exit code on every rising edge of the ambient
// clock in which it executes.  Halting is typically wrapped in a
// conditional scope; see Assert for the canonical use.
func (p *Builder) Stop(code int) {
	site := callSite(1)
	clk := p.clock("Stop", site)
	//
	p.stopAt(site, clk, code)
}

// printfAt appends a print command gated on the given enable node alone, on
// behalf of an operation at a given site.  No reset check is involved
// beyond whatever the caller baked into the enable; callers own the gating
// discipline.
func (p *Builder) printfAt(op string, site Site, clk Clock, enable *Bool, format string, data []*Bits) {
	m := p.module(op, site)
	checkFormat(op, site, format, len(data))
	//
	args := make([]NodeId, len(data))
	//
	for i, d := range data {
		args[i] = m.ref(op, site, d)
	}
	//
	eid := m.ref(op, site, enable)
	//
	m.push(&Printf{
		Site:   site,
		Clock:  clk.id,
		Enable: eid,
		Format: format,
		Args:   args,
	})
}

// stopAt appends a halt command on behalf of an operation at a given site.
func (p *Builder) stopAt(site Site, clk Clock, code int) {
	m := clk.mod
	//
	m.push(&Stop{Site: site, Clock: clk.id, Code: code})
}

// checkFormat validates a format string against the number of data
// arguments supplied, aborting the given operation on any mismatch.
func checkFormat(op string, site Site, format string, ndata int) {
	verbs := countVerbs(op, site, format)
	//
	if verbs != ndata {
		abortf(BadFormat, op, site,
			"format %q takes %d argument(s), but %d supplied", format, verbs, ndata)
	}
}

// countVerbs validates a format string and returns the number of data
// arguments it consumes.  The supported verbs are %d, %x, %b and %c, each
// consuming one argument, plus the escape %% which consumes none.  Anything
// else following a percent sign is malformed, and aborts the given
// operation.
func countVerbs(op string, site Site, format string) int {
	var count int
	//
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		//
		if i+1 == len(format) {
			abortf(BadFormat, op, site, "format %q ends in a bare %%", format)
		}
		//
		i++
		//
		switch format[i] {
		case 'd', 'x', 'b', 'c':
			count++
		case '%':
			// Escape, consumes nothing.
		default:
			abortf(BadFormat, op, site, "format %q contains unsupported verb %%%c", format, format[i])
		}
	}
	//
	return count
}
