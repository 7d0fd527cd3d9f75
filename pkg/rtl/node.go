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

import "math"

// NodeId abstracts the notion of a node identifier, that is an index into
// the node table of some module.  Commands reference nodes exclusively
// through their identifiers; they never carry values.  Identifiers are only
// meaningful within the module that allocated them.
type NodeId struct {
	index uint
}

// NewNodeId constructs a node identifier from a raw index.
func NewNodeId(index uint) NodeId {
	return NodeId{index}
}

// NewUnusedNodeId constructs something akin to a null reference, which is
// used in situations where a node identifier is not (yet) known.
func NewUnusedNodeId() NodeId {
	return NodeId{math.MaxUint}
}

// IsUsed checks whether this identifier is used (i.e. refers to an actual
// node of some module).
func (p NodeId) IsUsed() bool {
	return p.index != math.MaxUint
}

// Unwrap the raw index underlying this identifier, panicking if it is
// unused.
func (p NodeId) Unwrap() uint {
	if !p.IsUsed() {
		panic("unwrapping unused node identifier")
	}
	//
	return p.index
}

// nodeRole classifies what a node of the graph stands for.
type nodeRole uint8

const (
	// roleClock is the implicit clock input of a module.
	roleClock nodeRole = iota
	// roleReset is the implicit reset input of a module.
	roleReset
	// roleInput is an explicitly declared input port.
	roleInput
	// roleOutput is an explicitly declared output port.
	roleOutput
	// roleReg is a register declared by one of the register constructors.
	roleReg
	// roleExpr is an intermediate node defined by an operator application.
	roleExpr
	// roleLit is a literal constant materialised on first reference.
	roleLit
)

// connectable reports whether a node of this role may legally stand on the
// left-hand side of a connection.
func (p nodeRole) connectable() bool {
	return p == roleReg || p == roleOutput
}

// String implementation for the Stringer interface.
func (p nodeRole) String() string {
	switch p {
	case roleClock:
		return "clock"
	case roleReset:
		return "reset"
	case roleInput:
		return "input"
	case roleOutput:
		return "output"
	case roleReg:
		return "reg"
	case roleExpr:
		return "node"
	case roleLit:
		return "lit"
	default:
		panic("unreachable")
	}
}

// node is a single entry of a module's node table, recording everything the
// graph retains about a value bound in that module.  Observe that nodes hold
// only renderings and identifiers, never live values.
type node struct {
	// role of this node within the module.
	role nodeRole
	// name of this node, unique within the module.
	name string
	// typ is the rendered type of this node (e.g. "u8").
	typ string
	// lit is the rendered payload for roleLit nodes.
	lit string
	// op is the defining operator for roleExpr nodes.
	op string
	// args are the operator arguments for roleExpr nodes.
	args []NodeId
}
