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

// Clock is an opaque handle on a clock node of some module.  Clocks are not
// values: they cannot be registered, connected, compared or printed, only
// supplied to registers, prints and halts (usually implicitly, via the
// ambient clock of the enclosing scope).  Every module owns an
// implicit clock, and further ones can be declared with ClockInput.
type Clock struct {
	mod *Module
	id  NodeId
}

// IsValid reports whether this handle refers to an actual clock node, as
// opposed to being the zero value.
func (p Clock) IsValid() bool {
	return p.mod != nil
}

// Module returns the module owning this clock.
func (p Clock) Module() *Module {
	return p.mod
}

// Id returns the node backing this clock.
func (p Clock) Id() NodeId {
	return p.id
}

// String implementation for the Stringer interface.
func (p Clock) String() string {
	if !p.IsValid() {
		return "(invalid clock)"
	}
	//
	return p.mod.NodeName(p.id)
}
