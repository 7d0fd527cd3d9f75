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

// Circuit is the collection of modules produced by a construction run.  The
// first module elaborated is the root of the design hierarchy; children
// instantiated during its construction follow it in elaboration order.
type Circuit struct {
	modules []*Module
}

// IsEmpty reports whether any module has been elaborated yet.
func (p *Circuit) IsEmpty() bool {
	return len(p.modules) == 0
}

// Root returns the root module of this circuit, panicking if the circuit is
// empty.
func (p *Circuit) Root() *Module {
	if p.IsEmpty() {
		panic("root of empty circuit")
	}
	//
	return p.modules[0]
}

// Module returns the module with the given identifier, panicking if no such
// module exists.
func (p *Circuit) Module(id ModuleId) *Module {
	return p.modules[id]
}

// Modules returns the modules of this circuit in elaboration order.  The
// returned slice must not be mutated.
func (p *Circuit) Modules() []*Module {
	return p.modules
}
