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

// Width represents the bit width of a bit-vector value, which is either a
// known number of bits or left open for a later inference pass to determine.
// The zero value is the inferred width.
type Width struct {
	known bool
	bits  uint
}

// W constructs a known width of n bits.
func W(n uint) Width {
	return Width{known: true, bits: n}
}

// Inferred constructs an unknown width, to be determined by a later
// inference pass.
func Inferred() Width {
	return Width{}
}

// IsKnown reports whether this width has a concrete number of bits.
func (p Width) IsKnown() bool {
	return p.known
}

// Unwrap returns the concrete number of bits, panicking if none is known.
// Callers are expected to have checked IsKnown beforehand.
func (p Width) Unwrap() uint {
	if !p.known {
		panic("unwrapping inferred width")
	}
	//
	return p.bits
}

// String implementation for the Stringer interface.  Known widths render in
// the form "u8", inferred widths as "u?".
func (p Width) String() string {
	if !p.known {
		return "u?"
	}
	//
	return fmt.Sprintf("u%d", p.bits)
}

// minWidth determines the least number of bits capable of holding a given
// (non-negative) value, where zero occupies one bit.
func minWidth(val *big.Int) uint {
	if n := val.BitLen(); n > 0 {
		return uint(n)
	}
	//
	return 1
}
