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

// Input declares an input port of the given name and type on the module
// under construction.  The returned value is a fresh clone of the type,
// bound to the new port node.
func Input[T Value](b *Builder, name string, typ T) T {
	return port(b, "Input", callSite(1), name, typ, DirInput)
}

// Output declares an output port of the given name and type on the module
// under construction.  The returned value is a fresh clone of the type,
// bound to the new port node; drive it with Connect.
func Output[T Value](b *Builder, name string, typ T) T {
	return port(b, "Output", callSite(1), name, typ, DirOutput)
}

// ClockInput declares an additional clock input of the given name on the
// module under construction, beyond the implicit one every module carries.
// The returned handle is typically supplied to WithClock.
func (p *Builder) ClockInput(name string) Clock {
	site := callSite(1)
	m := p.module("ClockInput", site)
	checkPortName(m, name)
	//
	id := m.newNode(roleClock, "clock", name)
	m.ports = append(m.ports, Port{Name: name, Type: "clock", Direction: DirInput, Id: id})
	//
	return Clock{mod: m, id: id}
}

// port declares a port on behalf of an operation at a given site.
func port[T Value](b *Builder, op string, site Site, name string, typ T, dir Direction) T {
	m := b.module(op, site)
	checkDeclaredType(b, op, site, typ)
	checkPortName(m, name)
	//
	role := roleInput
	//
	if dir == DirOutput {
		role = roleOutput
	}
	//
	v := bindNode(m, typ, role, name)
	m.ports = append(m.ports, Port{Name: name, Type: m.NodeType(nodeOf(v)), Direction: dir, Id: nodeOf(v)})
	//
	return v.(T)
}

// checkPortName rejects empty and duplicate port names.  These are bugs in
// the description rather than recoverable construction failures, hence they
// panic directly.
func checkPortName(m *Module, name string) {
	if name == "" {
		panic(fmt.Sprintf("port of module %q without a name", m.name))
	} else if m.names[name] {
		panic(fmt.Sprintf("module %q already has a node named %q", m.name, name))
	}
}
