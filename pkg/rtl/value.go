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

// Kind identifies the shape of a value.  The set of kinds is closed: every
// value is either bit-vector shaped or a structural aggregate, and code
// dispatching over kinds is entitled to treat any other case as unreachable.
type Kind uint8

const (
	// KindBits indicates a bit-vector shaped value (including booleans, which
	// are one-bit vectors).
	KindBits Kind = iota
	// KindBundle indicates a structural aggregate of named fields.
	KindBundle
)

// String implementation for the Stringer interface.
func (p Kind) String() string {
	switch p {
	case KindBits:
		return "bits"
	case KindBundle:
		return "bundle"
	default:
		panic("unreachable")
	}
}

// Value is the interface implemented by everything which can appear in a
// circuit: bit vectors (Bits, Bool) and structural aggregates (Bundle).  A
// value is at any moment either a pure type template (unbound), a literal
// constant, or bound to a node of exactly one module.  The set of
// implementations is closed; values cannot be implemented outside this
// package.
type Value interface {
	// Kind returns the shape of this value.
	Kind() Kind
	// String returns a rendering of this value suitable for diagnostics.
	String() string
	// typeString renders the type of this value (e.g. "u8", or a brace-
	// enclosed field list for bundles).
	typeString() string
	// cloneType produces a fresh unbound value of identical type, carrying
	// neither binding nor literal payload.  The dynamic type is preserved.
	cloneType() Value
	// binder exposes the common binding state, sealing the interface.
	binder() *element
}

// IsBound reports whether a given value has been bound to a node of some
// module (e.g. by declaring a register from it, or by connecting it).
func IsBound(v Value) bool {
	return v.binder().bind != nil
}

// IsSynthesizable reports whether a given value can be referenced from a
// command: that is, whether it is bound to a node or is a literal constant.
// Pure type templates are not synthesizable.
func IsSynthesizable(v Value) bool {
	return IsBound(v) || literalBits(v) != nil
}

// Named attaches a name suggestion to a value, returning that same value for
// chaining.  For a bound value the suggestion renames its node immediately;
// for an unbound template it takes effect if and when the value is bound.
// Suggestions are uniquified against other names in the module, so the final
// node name may carry a numeric suffix.
func Named[T Value](v T, name string) T {
	e := v.binder()
	e.name = name
	//
	if e.bind != nil {
		e.bind.mod.renameNode(e.bind.id, name)
	}
	//
	return v
}

// binding records the node a value has been bound to, tying the value to
// exactly one module.
type binding struct {
	mod *Module
	id  NodeId
}

// element holds the state common to every value: its binding (if bound) and
// an optional name suggestion.  Each Value implementation embeds one.
type element struct {
	bind *binding
	name string
}

// binder implementation for the Value interface.
func (p *element) binder() *element {
	return p
}

// literalBits extracts the underlying bit-vector of a literal value, or nil
// if the value is not a literal constant.  Structural aggregates are never
// literals.
func literalBits(v Value) *Bits {
	switch w := v.(type) {
	case *Bool:
		if w.lit != nil {
			return &w.Bits
		}
	case *Bits:
		if w.lit != nil {
			return w
		}
	}
	//
	return nil
}
