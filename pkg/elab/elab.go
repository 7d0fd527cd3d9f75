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

// Package elab drives circuit construction to completion, translating the
// fatal construction failures of pkg/rtl into ordinary errors at the
// boundary.
package elab

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-rtl/pkg/rtl"
	"github.com/consensys/go-rtl/pkg/util"
)

// Elaborate runs the given root module spec to completion under the given
// options, returning the constructed circuit.  Construction failures
// (missing context, binding violations, malformed formats) are recovered
// here and surface as errors; panics of any other kind indicate a bug in the
// description (e.g. a failing static assertion) and propagate untouched.
func Elaborate(opts rtl.Options, root rtl.ModuleSpec) (circuit *rtl.Circuit, err error) {
	stats := util.NewPerfStats()
	defer stats.Log("elaboration")
	//
	builder := rtl.NewBuilder(opts)
	//
	defer func() {
		if r := recover(); r != nil {
			cerr, ok := r.(*rtl.Error)
			//
			if !ok {
				panic(r)
			}
			//
			circuit, err = nil, errors.Wrapf(cerr, "elaborating %q", root.Name)
		}
	}()
	//
	builder.Elaborate(root)
	circuit = builder.Circuit()
	//
	for _, m := range circuit.Modules() {
		log.Debugf("elaborated module %q (%d nodes, %d commands)",
			m.Name(), m.Width(), len(m.Commands()))
	}
	//
	return circuit, nil
}
