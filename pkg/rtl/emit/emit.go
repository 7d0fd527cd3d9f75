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

// Package emit renders constructed circuits in a stable, human-readable
// textual form, intended for inspection and golden testing rather than for
// consumption by other tools.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-rtl/pkg/rtl"
)

// Circuit writes a textual rendering of the given circuit, module by module
// in elaboration order.  Lines longer than textwidth are truncated, with
// zero meaning no limit.
func Circuit(w io.Writer, circuit *rtl.Circuit, textwidth uint) error {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("circuit %s:\n", circuit.Root().Name()))
	//
	for _, m := range circuit.Modules() {
		writeModule(&builder, circuit, m, "  ")
	}
	//
	return write(w, builder.String(), textwidth)
}

// Module writes a textual rendering of a single module.  Lines longer than
// textwidth are truncated, with zero meaning no limit.  Without the
// enclosing circuit to hand, instances render by module identifier rather
// than by name.
func Module(w io.Writer, m *rtl.Module, textwidth uint) error {
	var builder strings.Builder
	//
	writeModule(&builder, nil, m, "")
	//
	return write(w, builder.String(), textwidth)
}

// writeModule renders one module at the given indentation.
func writeModule(builder *strings.Builder, circuit *rtl.Circuit, m *rtl.Module, indent string) {
	builder.WriteString(fmt.Sprintf("%smodule %s:\n", indent, m.Name()))
	//
	for _, port := range m.Ports() {
		builder.WriteString(fmt.Sprintf("%s  %s %s : %s\n", indent, port.Direction, port.Name, port.Type))
	}
	//
	depth := 0
	//
	for _, cmd := range m.Commands() {
		if _, ok := cmd.(*rtl.WhenEnd); ok {
			depth--
			continue
		}
		//
		builder.WriteString(indent)
		builder.WriteString("  ")
		builder.WriteString(strings.Repeat("  ", depth))
		builder.WriteString(renderCommand(circuit, m, cmd))
		builder.WriteString("\n")
		//
		if _, ok := cmd.(*rtl.WhenBegin); ok {
			depth++
		}
	}
}

// renderCommand renders a single command of the given module, resolving node
// identifiers against its node table.
func renderCommand(circuit *rtl.Circuit, m *rtl.Module, cmd rtl.Command) string {
	switch c := cmd.(type) {
	case *rtl.DefReg:
		return fmt.Sprintf("reg %s : %s, %s",
			m.NodeName(c.Reg), m.NodeType(c.Reg), m.RenderRef(c.Clock))
	case *rtl.DefRegInit:
		return fmt.Sprintf("reg %s : %s, %s, reset => (%s, %s)",
			m.NodeName(c.Reg), m.NodeType(c.Reg), m.RenderRef(c.Clock),
			m.RenderRef(c.Reset), m.RenderRef(c.Init))
	case *rtl.DefNode:
		return fmt.Sprintf("node %s = %s", m.NodeName(c.Node), renderOp(m, c))
	case *rtl.DefInstance:
		return fmt.Sprintf("inst %s of %s", c.Name, moduleName(circuit, c.Module))
	case *rtl.Connect:
		return fmt.Sprintf("%s <= %s", m.RenderRef(c.Dst), m.RenderRef(c.Src))
	case *rtl.WhenBegin:
		return fmt.Sprintf("when %s:", m.RenderRef(c.Pred))
	case *rtl.Printf:
		return renderPrintf(m, c)
	case *rtl.Stop:
		return fmt.Sprintf("stop(%s, %d)", m.RenderRef(c.Clock), c.Code)
	default:
		panic("unreachable")
	}
}

// renderOp renders an operator application shallowly, with each argument as
// a plain reference.
func renderOp(m *rtl.Module, c *rtl.DefNode) string {
	args := make([]string, len(c.Args))
	//
	for i, arg := range c.Args {
		args[i] = m.RenderRef(arg)
	}
	//
	return fmt.Sprintf("%s(%s)", c.Op, strings.Join(args, ", "))
}

// renderPrintf renders a print command, quoting its format string.
func renderPrintf(m *rtl.Module, c *rtl.Printf) string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("printf(%s, %s, %q", m.RenderRef(c.Clock), m.RenderRef(c.Enable), c.Format))
	//
	for _, arg := range c.Args {
		builder.WriteString(", ")
		builder.WriteString(m.RenderRef(arg))
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// moduleName resolves a module identifier against the circuit, falling back
// to the raw identifier when no circuit is to hand.
func moduleName(circuit *rtl.Circuit, id rtl.ModuleId) string {
	if circuit == nil {
		return fmt.Sprintf("#%d", id)
	}
	//
	return circuit.Module(id).Name()
}

// write copies a rendering out line by line, truncating lines beyond the
// given width (zero meaning no limit).
func write(w io.Writer, text string, textwidth uint) error {
	if textwidth == 0 {
		_, err := io.WriteString(w, text)
		//
		return err
	}
	//
	var builder strings.Builder
	//
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		builder.WriteString(truncate(line, textwidth))
		builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

// truncate cuts a line beyond the given width, marking the cut with an
// ellipsis.
func truncate(line string, width uint) string {
	if uint(len(line)) <= width {
		return line
	}
	//
	if width <= 3 {
		return line[:width]
	}
	//
	return line[:width-3] + "..."
}
