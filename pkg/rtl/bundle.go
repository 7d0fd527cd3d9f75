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

// BundleField is a single named field of a bundle, pairing a field name with
// the type template of its contents.
type BundleField struct {
	// Name of the field.
	Name string
	// Type template of the field contents.
	Type Value
}

// F constructs a bundle field, for use with NewBundle.
func F(name string, typ Value) BundleField {
	return BundleField{Name: name, Type: typ}
}

// Bundle is a structural aggregate of named fields, declared in a fixed
// order.  Bundles are bound and connected as a whole; selecting individual
// fields of a bound bundle is not supported.
type Bundle struct {
	element
	fields []BundleField
}

// NewBundle constructs an unbound bundle type template from the given
// fields, panicking on duplicate field names.
func NewBundle(fields ...BundleField) *Bundle {
	seen := make(map[string]bool, len(fields))
	//
	for _, f := range fields {
		if seen[f.Name] {
			panic(fmt.Sprintf("duplicate bundle field %q", f.Name))
		}
		//
		seen[f.Name] = true
	}
	//
	return &Bundle{fields: fields}
}

// Fields returns the fields of this bundle in declaration order.  The
// returned slice must not be mutated.
func (p *Bundle) Fields() []BundleField {
	return p.fields
}

// Field returns the type template of the named field, or nil if no such
// field exists.
func (p *Bundle) Field(name string) Value {
	for _, f := range p.fields {
		if f.Name == name {
			return f.Type
		}
	}
	//
	return nil
}

// Kind implementation for the Value interface.
func (p *Bundle) Kind() Kind {
	return KindBundle
}

// String implementation for the Value interface.
func (p *Bundle) String() string {
	if p.bind != nil {
		return p.bind.mod.NodeName(p.bind.id)
	}
	//
	return p.typeString()
}

// typeString implementation for the Value interface.
func (p *Bundle) typeString() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, f := range p.fields {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(f.Name)
		builder.WriteString(": ")
		builder.WriteString(f.Type.typeString())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// cloneType implementation for the Value interface.  Cloning is deep: each
// field type is itself cloned, hence mutating the clone (e.g. by binding it)
// never affects the original template.
func (p *Bundle) cloneType() Value {
	fields := make([]BundleField, len(p.fields))
	//
	for i, f := range p.fields {
		fields[i] = BundleField{Name: f.Name, Type: f.Type.cloneType()}
	}
	//
	return &Bundle{fields: fields}
}
