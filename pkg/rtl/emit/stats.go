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
package emit

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/consensys/go-rtl/pkg/rtl"
)

// Stats writes a per-module summary of the given circuit: node and command
// counts, followed by a histogram of command variants.
func Stats(w io.Writer, circuit *rtl.Circuit) error {
	var builder strings.Builder
	//
	for _, m := range circuit.Modules() {
		cmds := m.Commands()
		//
		builder.WriteString(fmt.Sprintf("module %s: %d nodes, %d commands\n",
			m.Name(), m.Width(), len(cmds)))
		// Histogram commands by tag.
		histogram := make(map[string]uint)
		//
		for _, cmd := range cmds {
			histogram[cmd.Tag()]++
		}
		//
		tags := make([]string, 0, len(histogram))
		//
		for tag := range histogram {
			tags = append(tags, tag)
		}
		//
		sort.Strings(tags)
		//
		for _, tag := range tags {
			builder.WriteString(fmt.Sprintf("  %s: %d\n", tag, histogram[tag]))
		}
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}
