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

import (
	"fmt"
	"strings"
)

// ModuleId abstracts the notion of a module identifier, that is an index
// into the module list of the enclosing circuit.
type ModuleId = uint

// Direction distinguishes input ports from output ports.
type Direction uint8

const (
	// DirInput marks a port driven from outside the module.
	DirInput Direction = iota
	// DirOutput marks a port driven from inside the module.
	DirOutput
)

// String implementation for the Stringer interface.
func (p Direction) String() string {
	switch p {
	case DirInput:
		return "input"
	case DirOutput:
		return "output"
	default:
		panic("unreachable")
	}
}

// Port describes one port of a module, including the two implicit ports
// (clock and reset) every module carries.
type Port struct {
	// Name of the port, unique within the module.
	Name string
	// Type is the rendered type of the port (e.g. "u8" or "clock").
	Type string
	// Direction of the port.
	Direction Direction
	// Id is the node backing this port.
	Id NodeId
}

// Module is a single module under (or after) construction: a node table
// together with the list of commands appended so far.  Modules are created
// exclusively by a Builder, and grow only through the construction
// operations of this package; they are never mutated once their build
// function has returned.
type Module struct {
	// name of this module, unique within the circuit.
	name string
	// id of this module within the circuit.
	id ModuleId
	// clock is the implicit clock input.
	clock Clock
	// reset is the implicit reset input.
	reset *Bool
	// ports of this module, in declaration order.
	ports []Port
	// nodes is the node table.
	nodes []node
	// commands appended so far, in application order.
	commands []Command
	// names tracks node names already taken, for uniquification.
	names map[string]bool
}

// newModule constructs an empty module, allocating its two implicit ports.
func newModule(name string, id ModuleId) *Module {
	p := &Module{
		name:  name,
		id:    id,
		names: make(map[string]bool),
	}
	// Allocate implicit clock port.
	clockId := p.newNode(roleClock, "clock", "clock")
	p.ports = append(p.ports, Port{Name: "clock", Type: "clock", Direction: DirInput, Id: clockId})
	p.clock = Clock{mod: p, id: clockId}
	// Allocate implicit reset port.
	resetId := p.newNode(roleReset, "u1", "reset")
	p.ports = append(p.ports, Port{Name: "reset", Type: "u1", Direction: DirInput, Id: resetId})
	//
	reset := NewBool()
	reset.bind = &binding{mod: p, id: resetId}
	p.reset = reset
	//
	return p
}

// Name returns the name of this module.
func (p *Module) Name() string {
	return p.name
}

// Id returns the identifier of this module within its circuit.
func (p *Module) Id() ModuleId {
	return p.id
}

// Clock returns the implicit clock input of this module.
func (p *Module) Clock() Clock {
	return p.clock
}

// Reset returns the implicit reset input of this module, as a bound boolean
// usable like any other value of the module.
func (p *Module) Reset() *Bool {
	return p.reset
}

// Ports returns the ports of this module in declaration order, implicit
// ports first.  The returned slice must not be mutated.
func (p *Module) Ports() []Port {
	return p.ports
}

// Commands returns the commands of this module in application order.  The
// returned slice must not be mutated.
func (p *Module) Commands() []Command {
	return p.commands
}

// Width returns the number of nodes allocated in this module.
func (p *Module) Width() uint {
	return uint(len(p.nodes))
}

// NodeName returns the name of the given node.
func (p *Module) NodeName(id NodeId) string {
	return p.nodes[id.Unwrap()].name
}

// NodeType returns the rendered type of the given node.
func (p *Module) NodeType(id NodeId) string {
	return p.nodes[id.Unwrap()].typ
}

// RenderRef renders a reference to the given node, as it would appear as an
// operand: literals render inline (e.g. "u8(5)"), everything else by name.
func (p *Module) RenderRef(id NodeId) string {
	n := &p.nodes[id.Unwrap()]
	//
	if n.role == roleLit {
		return fmt.Sprintf("%s(%s)", n.typ, n.lit)
	}
	//
	return n.name
}

// RenderNode renders the structure of the given node: intermediate nodes
// render as their defining operator applied (recursively) to its arguments,
// whilst every other node renders as a plain reference.  Useful for
// diagnostics quoting a condition.
func (p *Module) RenderNode(id NodeId) string {
	n := &p.nodes[id.Unwrap()]
	//
	if n.role != roleExpr {
		return p.RenderRef(id)
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(n.op)
	builder.WriteString("(")
	//
	for i, arg := range n.args {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(p.RenderNode(arg))
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// newNode allocates a fresh node of the given role and (rendered) type,
// returning its identifier.  An empty name requests an automatic one; a
// non-empty name is uniquified against names already taken.
func (p *Module) newNode(role nodeRole, typ string, name string) NodeId {
	id := NewNodeId(uint(len(p.nodes)))
	//
	if name == "" {
		name = autoName(role, id)
	}
	//
	name = p.uniquify(name)
	p.names[name] = true
	p.nodes = append(p.nodes, node{role: role, name: name, typ: typ})
	//
	return id
}

// newLitNode materialises a literal constant as a node of this module,
// recording its rendered payload for later emission.
func (p *Module) newLitNode(typ string, lit string) NodeId {
	id := p.newNode(roleLit, typ, "")
	p.nodes[id.Unwrap()].lit = lit
	//
	return id
}

// newExprNode allocates a fresh intermediate node defined by the given
// operator, and appends the corresponding DefNode command.
func (p *Module) newExprNode(site Site, op string, typ string, args ...NodeId) NodeId {
	id := p.newNode(roleExpr, typ, "")
	n := &p.nodes[id.Unwrap()]
	n.op = op
	n.args = args
	//
	p.push(&DefNode{Site: site, Node: id, Op: op, Args: args})
	//
	return id
}

// renameNode applies a name suggestion to an existing node, uniquifying it
// against names already taken.
func (p *Module) renameNode(id NodeId, name string) {
	n := &p.nodes[id.Unwrap()]
	//
	delete(p.names, n.name)
	//
	name = p.uniquify(name)
	p.names[name] = true
	n.name = name
}

// uniquify appends a numeric suffix to the given name until it no longer
// collides with a name already taken in this module.
func (p *Module) uniquify(name string) string {
	candidate := name
	//
	for i := 1; p.names[candidate]; i++ {
		candidate = fmt.Sprintf("%s_%d", name, i)
	}
	//
	return candidate
}

// push appends a command to this module, maintaining first-in first-out
// order of application.
func (p *Module) push(cmd Command) {
	p.commands = append(p.commands, cmd)
}

// ref resolves a value to a node identifier of this module, enforcing the
// binding discipline: bound values must be bound in this very module, whilst
// literals are materialised as fresh literal nodes on every reference.  Any
// other value is not synthesizable, and aborts construction.
func (p *Module) ref(op string, site Site, v Value) NodeId {
	if b := v.binder().bind; b != nil {
		if b.mod != p {
			abortf(BindingViolation, op, site,
				"value %s is bound in module %q, not in module %q", v, b.mod.name, p.name)
		}
		//
		return b.id
	}
	//
	if lit := literalBits(v); lit != nil {
		return p.newLitNode(lit.typeString(), lit.lit.String())
	}
	//
	abortf(BindingViolation, op, site, "value %s is neither bound nor a literal", v)
	// Unreachable
	return NewUnusedNodeId()
}

// autoName derives an automatic node name from a role and identifier.
func autoName(role nodeRole, id NodeId) string {
	var prefix string
	//
	switch role {
	case roleReg:
		prefix = "r"
	case roleExpr:
		prefix = "t"
	case roleLit:
		prefix = "c"
	default:
		prefix = "n"
	}
	//
	return fmt.Sprintf("%s%d", prefix, id.Unwrap())
}
