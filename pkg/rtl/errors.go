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

import "fmt"

// ErrorKind distinguishes the classes of failure which can arise whilst a
// circuit is being constructed.  All of them are fatal: construction cannot
// proceed past any of them, and the partially built circuit is discarded.
type ErrorKind uint8

const (
	// ContextMissing arises when a construction operation is invoked with no
	// module under construction, hence there is nowhere for its commands to
	// go and no ambient clock or reset to attach them to.
	ContextMissing ErrorKind = iota
	// BindingViolation arises when a value is used where its binding state
	// forbids it.  For example, using an unbound (and non-literal) value as a
	// register initialiser, referencing a value bound in a different module,
	// or declaring a register from an already-bound type template.
	BindingViolation
	// BadFormat arises when a format string is malformed, or disagrees with
	// the arguments supplied alongside it.
	BadFormat
)

// String implementation for the Stringer interface.
func (p ErrorKind) String() string {
	switch p {
	case ContextMissing:
		return "context-missing"
	case BindingViolation:
		return "binding-violation"
	case BadFormat:
		return "bad-format"
	default:
		panic("unreachable")
	}
}

// Error describes a fatal construction failure.  Operations in this package
// do not return errors; instead they panic with an *Error, which a driver
// (see pkg/elab) recovers at the boundary of the construction run and
// surfaces as an ordinary error value.  Panics carrying any other payload
// indicate a bug in the caller (or this package) and are not recovered.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Op names the construction operation which failed (e.g. "RegInit").
	Op string
	// Site of the failing call in the circuit description.
	Site Site
	// Detail is a human-readable account of what went wrong.
	Detail string
}

// Error implementation for the error interface.
func (p *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s [%s]", p.Site, p.Op, p.Detail, p.Kind)
}

// abortf raises a fatal construction failure of the given kind.  It never
// returns.
func abortf(kind ErrorKind, op string, site Site, format string, args ...any) {
	panic(&Error{
		Kind:   kind,
		Op:     op,
		Site:   site,
		Detail: fmt.Sprintf(format, args...),
	})
}
