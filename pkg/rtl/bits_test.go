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
	"math/big"
	"testing"
)

func Test_Bits_01(t *testing.T) {
	v := UInt(8)
	//
	checkWidth(t, v, 8)
	//
	if IsBound(v) || IsSynthesizable(v) {
		t.Errorf("fresh template should be neither bound nor synthesizable")
	}
	//
	if v.String() != "u8" {
		t.Errorf("unexpected rendering %q", v.String())
	}
}

func Test_Bits_02(t *testing.T) {
	v := UIntInferred()
	//
	if v.Width().IsKnown() {
		t.Errorf("inferred width should not be known")
	}
	//
	if v.String() != "u?" {
		t.Errorf("unexpected rendering %q", v.String())
	}
}

// Literal widths are derived minimally, with zero occupying one bit.
func Test_Bits_03(t *testing.T) {
	checkWidth(t, Lit(0), 1)
	checkWidth(t, Lit(1), 1)
	checkWidth(t, Lit(2), 2)
	checkWidth(t, Lit(5), 3)
	checkWidth(t, Lit(255), 8)
	checkWidth(t, Lit(256), 9)
}

func Test_Bits_04(t *testing.T) {
	v := Lit(5)
	//
	if !IsSynthesizable(v) || IsBound(v) {
		t.Errorf("literal should be synthesizable yet unbound")
	}
	//
	if v.HasForcedWidth() {
		t.Errorf("derived literal width should not count as forced")
	}
	//
	if v.String() != "u3(5)" {
		t.Errorf("unexpected rendering %q", v.String())
	}
}

func Test_Bits_05(t *testing.T) {
	v := LitW(5, 8)
	//
	checkWidth(t, v, 8)
	//
	if !v.HasForcedWidth() {
		t.Errorf("declared literal width should count as forced")
	}
	//
	if v.String() != "u8(5)" {
		t.Errorf("unexpected rendering %q", v.String())
	}
}

// Literals which do not fit their declared width abort construction.
func Test_Bits_06(t *testing.T) {
	defer checkRecover(t, BadFormat, "LitW")
	//
	LitW(256, 8)
}

// Negative literals abort construction.
func Test_Bits_07(t *testing.T) {
	defer checkRecover(t, BadFormat, "LitBig")
	//
	LitBig(big.NewInt(-1))
}

// Cloning a type yields a fresh unbound template, dropping any literal
// payload.
func Test_Bits_08(t *testing.T) {
	v := LitW(5, 8)
	c, ok := v.cloneType().(*Bits)
	//
	if !ok {
		t.Fatalf("clone changed dynamic type")
	}
	//
	checkWidth(t, c, 8)
	//
	if c.Lit() != nil || IsBound(c) {
		t.Errorf("clone should carry neither payload nor binding")
	}
}

func Test_Bits_09(t *testing.T) {
	v := BoolLit(true)
	//
	checkWidth(t, v.AsBits(), 1)
	//
	if !IsSynthesizable(v) {
		t.Errorf("boolean literal should be synthesizable")
	}
	//
	if _, ok := v.cloneType().(*Bool); !ok {
		t.Errorf("clone of a boolean should remain a boolean")
	}
}

func Test_Bits_10(t *testing.T) {
	if UInt(8).Kind() != KindBits || NewBool().Kind() != KindBits {
		t.Errorf("bit vectors should be of bits kind")
	}
	//
	if NewBundle().Kind() != KindBundle {
		t.Errorf("bundles should be of bundle kind")
	}
}

// LitBig copies its argument, hence later mutation of the argument does not
// affect the literal.
func Test_Bits_11(t *testing.T) {
	raw := big.NewInt(5)
	v := LitBig(raw)
	raw.SetInt64(99)
	//
	if v.Lit().Int64() != 5 {
		t.Errorf("literal payload should be insulated from its source")
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

func checkWidth(t *testing.T, v *Bits, expected uint) {
	w := v.Width()
	//
	if !w.IsKnown() {
		t.Errorf("expected width u%d, got inferred", expected)
	} else if w.Unwrap() != expected {
		t.Errorf("expected width u%d, got %s", expected, w)
	}
}
