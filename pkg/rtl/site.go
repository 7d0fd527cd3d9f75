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
	"path/filepath"
	"runtime"
)

// Site identifies the position of a construction call in the source of the
// circuit description.  Every emitted command records the site of the call
// which produced it, and diagnostics quote it.  Sites are captured
// automatically via the runtime; only the base name of the enclosing file is
// retained.
type Site struct {
	// Base name of the source file.
	File string
	// Line number within that file (counting from 1).
	Line int
}

// IsKnown reports whether this site was successfully captured.
func (p Site) IsKnown() bool {
	return p.File != ""
}

func (p Site) String() string {
	if !p.IsKnown() {
		return "(unknown)"
	}
	//
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// callSite captures the call site a given number of frames above the caller.
// Passing 0 yields the site of the caller itself, 1 the site of the caller's
// caller, and so on.  An unknown site is returned when the runtime cannot
// resolve the frame.
func callSite(skip int) Site {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}
	}
	//
	return Site{File: filepath.Base(file), Line: line}
}
