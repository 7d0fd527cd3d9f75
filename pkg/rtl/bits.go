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
	"math/big"
)

// Bits is an unsigned bit-vector value of some width, where the width is
// either declared up front or left for inference.  A Bits is initially a
// pure type template; it becomes usable in commands once it either carries a
// literal payload or has been bound to a node (e.g. by Reg or Input).
type Bits struct {
	element
	width Width
	// lit holds the literal payload, or nil for non-literals.
	lit *big.Int
	// forced indicates the width of this literal was given explicitly rather
	// than derived from the payload.
	forced bool
}

// UInt constructs an unbound bit-vector type template of the given width.
func UInt(width uint) *Bits {
	return &Bits{width: W(width)}
}

// UIntInferred constructs an unbound bit-vector type template whose width is
// left for inference.
func UIntInferred() *Bits {
	return &Bits{width: Inferred()}
}

// Lit constructs a bit-vector literal whose width is the minimal number of
// bits holding the value.  The width counts as derived, not declared; see
// LitW for declaring it explicitly.
func Lit(val uint64) *Bits {
	return LitBig(new(big.Int).SetUint64(val))
}

// LitBig constructs a bit-vector literal from an arbitrary-precision value,
// which must be non-negative.  As for Lit, the width is derived.
func LitBig(val *big.Int) *Bits {
	if val.Sign() < 0 {
		abortf(BadFormat, "LitBig", callSite(1), "negative bit-vector literal %s", val)
	}
	//
	return &Bits{width: W(minWidth(val)), lit: new(big.Int).Set(val)}
}

// LitW constructs a bit-vector literal of an explicitly declared width,
// aborting construction if the value does not fit.
func LitW(val uint64, width uint) *Bits {
	var bigval = new(big.Int).SetUint64(val)
	//
	if minWidth(bigval) > width {
		abortf(BadFormat, "LitW", callSite(1), "literal %d does not fit u%d", val, width)
	}
	//
	return &Bits{width: W(width), lit: bigval, forced: true}
}

// Width returns the (possibly inferred) width of this bit vector.
func (p *Bits) Width() Width {
	return p.width
}

// Lit returns the literal payload of this bit vector, or nil if it is not a
// literal.  The returned value must not be mutated.
func (p *Bits) Lit() *big.Int {
	return p.lit
}

// HasForcedWidth reports whether this value is a literal whose width was
// declared explicitly (rather than derived from its payload).
func (p *Bits) HasForcedWidth() bool {
	return p.lit != nil && p.forced
}

// Kind implementation for the Value interface.
func (p *Bits) Kind() Kind {
	return KindBits
}

// String implementation for the Value interface.
func (p *Bits) String() string {
	switch {
	case p.bind != nil:
		return p.bind.mod.NodeName(p.bind.id)
	case p.lit != nil:
		return fmt.Sprintf("%s(%s)", p.width, p.lit)
	default:
		return p.width.String()
	}
}

// typeString implementation for the Value interface.
func (p *Bits) typeString() string {
	return p.width.String()
}

// cloneType implementation for the Value interface.
func (p *Bits) cloneType() Value {
	return &Bits{width: p.width}
}

// Bool is a single-bit value carrying truth semantics, as produced by
// comparisons and consumed by assertions and conditional scopes.  Every Bool
// is a one-bit vector; AsBits exposes that view where a plain bit vector is
// expected.
type Bool struct {
	Bits
}

// NewBool constructs an unbound boolean type template.
func NewBool() *Bool {
	return &Bool{Bits{width: W(1)}}
}

// BoolLit constructs a boolean literal.
func BoolLit(val bool) *Bool {
	var lit = big.NewInt(0)
	//
	if val {
		lit.SetInt64(1)
	}
	//
	return &Bool{Bits{width: W(1), lit: lit, forced: true}}
}

// cloneType implementation for the Value interface.
func (p *Bool) cloneType() Value {
	return NewBool()
}
