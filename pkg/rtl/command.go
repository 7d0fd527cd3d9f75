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

// Command is a single instruction of a module's command list.  Commands are
// appended strictly in the order the corresponding construction calls were
// made, and later passes (emission, simulation) interpret them in that same
// order.  A command carries node identifiers rather than values, together
// with the source site of the call which produced it.  The set of commands
// is closed.
type Command interface {
	// Tag returns a short stable name identifying the command variant, for
	// use in logs and statistics.
	Tag() string
	// isCommand seals the interface.
	isCommand()
}

// DefReg declares a register without reset semantics, attached to the given
// clock.  Its power-on contents are indeterminate.
type DefReg struct {
	// Site of the declaring call.
	Site Site
	// Reg is the declared register node.
	Reg NodeId
	// Clock driving the register.
	Clock NodeId
}

// DefRegInit declares a register which assumes the given initial value
// whenever the given reset is asserted.
type DefRegInit struct {
	// Site of the declaring call.
	Site Site
	// Reg is the declared register node.
	Reg NodeId
	// Clock driving the register.
	Clock NodeId
	// Reset gating the initialisation.
	Reset NodeId
	// Init is the value assumed under reset.
	Init NodeId
}

// DefNode defines an intermediate node as the application of an operator to
// zero or more argument nodes.  Nodes are immutable once defined.
type DefNode struct {
	// Site of the defining call.
	Site Site
	// Node being defined.
	Node NodeId
	// Op is the operator applied (e.g. "not", "or", "add").
	Op string
	// Args are the operator arguments.
	Args []NodeId
}

// DefInstance instantiates another module of the circuit at this point of
// the enclosing module.
type DefInstance struct {
	// Site of the instantiating call.
	Site Site
	// Name of the instance within the enclosing module.
	Name string
	// Module identifies the instantiated module within the circuit.
	Module ModuleId
}

// Connect drives the destination node with the source node from this point
// of the command list onwards, subject to any enclosing conditional scopes.
type Connect struct {
	// Site of the connecting call.
	Site Site
	// Dst is the driven node.
	Dst NodeId
	// Src is the driving node.
	Src NodeId
}

// WhenBegin opens a conditional scope: commands up to the matching WhenEnd
// take effect only in cycles where the predicate holds.  Scopes nest.
type WhenBegin struct {
	// Site of the opening call.
	Site Site
	// Pred is the controlling predicate.
	Pred NodeId
}

// WhenEnd closes the innermost open conditional scope.
type WhenEnd struct {
	// Site of the closing call.
	Site Site
}

// Printf prints to the simulation console on every rising edge of the given
// clock in which the enable node holds, interpolating the argument nodes
// into the format string.
type Printf struct {
	// Site of the printing call.
	Site Site
	// Clock on whose rising edge the print fires.
	Clock NodeId
	// Enable gates the print.
	Enable NodeId
	// Format string, using the verbs %d, %x, %b and %c.
	Format string
	// Args are interpolated into the format string.
	Args []NodeId
}

// Stop halts simulation with the given exit code on every rising edge of the
// given clock in which it executes, subject to enclosing conditional scopes.
type Stop struct {
	// Site of the halting call.
	Site Site
	// Clock on whose rising edge the halt fires.
	Clock NodeId
	// Code is the simulator exit code.
	Code int
}

// Tag implementation for the Command interface.
func (p *DefReg) Tag() string { return "defreg" }

// Tag implementation for the Command interface.
func (p *DefRegInit) Tag() string { return "defreginit" }

// Tag implementation for the Command interface.
func (p *DefNode) Tag() string { return "defnode" }

// Tag implementation for the Command interface.
func (p *DefInstance) Tag() string { return "definstance" }

// Tag implementation for the Command interface.
func (p *Connect) Tag() string { return "connect" }

// Tag implementation for the Command interface.
func (p *WhenBegin) Tag() string { return "when-begin" }

// Tag implementation for the Command interface.
func (p *WhenEnd) Tag() string { return "when-end" }

// Tag implementation for the Command interface.
func (p *Printf) Tag() string { return "printf" }

// Tag implementation for the Command interface.
func (p *Stop) Tag() string { return "stop" }

func (p *DefReg) isCommand()      {}
func (p *DefRegInit) isCommand()  {}
func (p *DefNode) isCommand()     {}
func (p *DefInstance) isCommand() {}
func (p *Connect) isCommand()     {}
func (p *WhenBegin) isCommand()   {}
func (p *WhenEnd) isCommand()     {}
func (p *Printf) isCommand()      {}
func (p *Stop) isCommand()        {}
