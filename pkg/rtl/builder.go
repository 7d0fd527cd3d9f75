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

// ModuleSpec describes a module to be elaborated: a name together with a
// build function which, when run against a Builder, declares the module's
// contents.  The same spec can be instantiated several times within one
// circuit, in which case module names are uniquified.
type ModuleSpec struct {
	// Name of the module.
	Name string
	// Build declares the contents of the module.
	Build func(*Builder)
}

// scope is one entry of the construction stack, identifying the module
// currently accepting commands together with any ambient clock or reset
// override active within it.  Overrides never leak into child scopes.
type scope struct {
	// module accepting commands.
	module *Module
	// clock override, or nil for the module's implicit clock.
	clock *Clock
	// reset override, or nil for the module's implicit reset.
	reset *Bool
}

// Builder drives the construction of one circuit.  All construction
// operations take the builder (explicitly) and consult its innermost scope
// for the module under construction and the ambient clock and reset; an
// operation invoked with no open scope aborts.  Builders are not safe for
// concurrent use.
type Builder struct {
	opts    Options
	circuit Circuit
	scopes  []scope
	// modNames tracks module names already taken, for uniquification.
	modNames map[string]bool
}

// NewBuilder constructs a fresh builder with the given policy options and no
// module under construction.
func NewBuilder(opts Options) *Builder {
	return &Builder{
		opts:     opts,
		modNames: make(map[string]bool),
	}
}

// Options returns the policy options this builder was constructed with.
func (p *Builder) Options() Options {
	return p.opts
}

// Circuit returns the circuit built so far.
func (p *Builder) Circuit() *Circuit {
	return &p.circuit
}

// CurrentModule returns the module currently accepting commands, or false if
// no module is under construction.
func (p *Builder) CurrentModule() (*Module, bool) {
	if len(p.scopes) == 0 {
		return nil, false
	}
	//
	return p.scopes[len(p.scopes)-1].module, true
}

// Elaborate runs the given module spec against this builder, appending the
// resulting module to the circuit and returning its identifier.  Elaboration
// nests: a build function may itself elaborate children via Instance.
// Construction failures surface as panics carrying *Error; see pkg/elab for
// a driver which recovers them.
func (p *Builder) Elaborate(spec ModuleSpec) ModuleId {
	if spec.Name == "" {
		panic("module spec without a name")
	} else if spec.Build == nil {
		panic(fmt.Sprintf("module spec %q without a build function", spec.Name))
	}
	//
	name := p.uniquifyModule(spec.Name)
	module := newModule(name, ModuleId(len(p.circuit.modules)))
	p.circuit.modules = append(p.circuit.modules, module)
	// Open scope for this module.
	p.scopes = append(p.scopes, scope{module: module})
	// Close it again once building completes (or aborts).
	defer func() {
		p.scopes = p.scopes[:len(p.scopes)-1]
	}()
	//
	spec.Build(p)
	//
	return module.id
}

// Instance elaborates the given spec as a child module, and records an
// instantiation of it at this point of the module under construction.
func (p *Builder) Instance(spec ModuleSpec) ModuleId {
	site := callSite(1)
	parent := p.module("Instance", site)
	// Elaborate the child.  Whilst its scope is open all commands go to the
	// child, hence the parent's command list is untouched in between.
	id := p.Elaborate(spec)
	//
	name := parent.uniquify(spec.Name)
	parent.names[name] = true
	parent.push(&DefInstance{Site: site, Name: name, Module: id})
	//
	return id
}

// WithClock runs the given function with the ambient clock of the innermost
// scope overridden, restoring the previous clock afterwards.  The clock must
// belong to the module under construction.  The override does not extend
// into modules elaborated within the function.
func (p *Builder) WithClock(clk Clock, fn func()) {
	site := callSite(1)
	m := p.module("WithClock", site)
	//
	if !clk.IsValid() {
		abortf(BindingViolation, "WithClock", site, "invalid clock")
	} else if clk.mod != m {
		abortf(BindingViolation, "WithClock", site,
			"clock %s belongs to module %q, not to module %q", clk, clk.mod.name, m.name)
	}
	//
	idx := len(p.scopes) - 1
	old := p.scopes[idx].clock
	p.scopes[idx].clock = &clk
	//
	defer func() {
		p.scopes[idx].clock = old
	}()
	//
	fn()
}

// WithReset runs the given function with the ambient reset of the innermost
// scope overridden, restoring the previous reset afterwards.  The reset must
// be synthesizable in the module under construction (a bound boolean of that
// module, or a literal).  The override does not extend into modules
// elaborated within the function.
func (p *Builder) WithReset(reset *Bool, fn func()) {
	site := callSite(1)
	m := p.module("WithReset", site)
	//
	if b := reset.bind; b != nil && b.mod != m {
		abortf(BindingViolation, "WithReset", site,
			"reset %s is bound in module %q, not in module %q", reset, b.mod.name, m.name)
	} else if b == nil && reset.lit == nil {
		abortf(BindingViolation, "WithReset", site, "reset %s is neither bound nor a literal", reset)
	}
	//
	idx := len(p.scopes) - 1
	old := p.scopes[idx].reset
	p.scopes[idx].reset = reset
	//
	defer func() {
		p.scopes[idx].reset = old
	}()
	//
	fn()
}

// module returns the module currently accepting commands, aborting the
// given operation if no module is under construction.
func (p *Builder) module(op string, site Site) *Module {
	if len(p.scopes) == 0 {
		abortf(ContextMissing, op, site, "no module is under construction")
	}
	//
	return p.scopes[len(p.scopes)-1].module
}

// clock returns the ambient clock of the innermost scope, aborting the given
// operation if no module is under construction.
func (p *Builder) clock(op string, site Site) Clock {
	sc := &p.scopes[p.scopeIndex(op, site)]
	//
	if sc.clock != nil {
		return *sc.clock
	}
	//
	return sc.module.clock
}

// reset returns the ambient reset of the innermost scope, aborting the given
// operation if no module is under construction.
func (p *Builder) reset(op string, site Site) *Bool {
	sc := &p.scopes[p.scopeIndex(op, site)]
	//
	if sc.reset != nil {
		return sc.reset
	}
	//
	return sc.module.reset
}

// scopeIndex returns the index of the innermost scope, aborting the given
// operation if there is none.
func (p *Builder) scopeIndex(op string, site Site) int {
	if len(p.scopes) == 0 {
		abortf(ContextMissing, op, site, "no module is under construction")
	}
	//
	return len(p.scopes) - 1
}

// uniquifyModule appends a numeric suffix to the given name until it no
// longer collides with a module name already taken in the circuit.
func (p *Builder) uniquifyModule(name string) string {
	candidate := name
	//
	for i := 1; p.modNames[candidate]; i++ {
		candidate = fmt.Sprintf("%s_%d", name, i)
	}
	//
	p.modNames[candidate] = true
	//
	return candidate
}
