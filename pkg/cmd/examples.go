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
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/consensys/go-rtl/pkg/rtl"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the built-in example designs.",
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, 0, len(designs))
		//
		for name := range designs {
			names = append(names, name)
		}
		//
		sort.Strings(names)
		//
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// designs maps the names of the built-in example designs to their
// constructors.
var designs = map[string]func() rtl.ModuleSpec{
	"toggle":  toggleDesign,
	"counter": counterDesign,
	"shifter": shifterDesign,
}

// lookupDesign returns the example design registered under the given name.
func lookupDesign(name string) (rtl.ModuleSpec, bool) {
	ctor, ok := designs[name]
	//
	if !ok {
		return rtl.ModuleSpec{}, false
	}
	//
	return ctor(), true
}

// A single bit of state which inverts on every cycle.
func toggleDesign() rtl.ModuleSpec {
	return rtl.ModuleSpec{
		Name: "toggle",
		Build: func(b *rtl.Builder) {
			q := rtl.Output(b, "q", rtl.NewBool())
			state := rtl.Named(rtl.RegInitOf(b, rtl.BoolLit(false)), "state")
			b.Connect(state, b.Not(state))
			b.Connect(q, state)
			b.Printf("state=%b", state.AsBits())
		},
	}
}

// An eight bit counter which increments whenever its enable input is held,
// reporting its running value and trapping on saturation.
func counterDesign() rtl.ModuleSpec {
	return rtl.ModuleSpec{
		Name: "counter",
		Build: func(b *rtl.Builder) {
			en := rtl.Input(b, "en", rtl.NewBool())
			total := rtl.Output(b, "total", rtl.UInt(8))
			count := rtl.Named(rtl.RegInit(b, rtl.UInt(8), rtl.LitW(0, 8)), "count")
			//
			b.When(en, func() {
				b.Connect(count, b.Add(count, rtl.LitW(1, 8)))
			})
			//
			b.Connect(total, count)
			b.Printf("count=%d", count)
			b.Assert(b.Not(b.Eq(count, rtl.LitW(255, 8))), "count saturated at %d", count)
		},
	}
}

// A two stage delay line, with a pair of subcircuit instances and a tap
// registered in an auxiliary clock domain.
func shifterDesign() rtl.ModuleSpec {
	stage := rtl.ModuleSpec{
		Name: "stage",
		Build: func(b *rtl.Builder) {
			d := rtl.Input(b, "d", rtl.UInt(4))
			q := rtl.Output(b, "q", rtl.UInt(4))
			b.Connect(q, rtl.RegNext(b, d))
		},
	}
	//
	return rtl.ModuleSpec{
		Name: "shifter",
		Build: func(b *rtl.Builder) {
			din := rtl.Input(b, "din", rtl.UInt(4))
			dout := rtl.Output(b, "dout", rtl.UInt(4))
			//
			b.Instance(stage)
			b.Instance(stage)
			//
			b.Connect(dout, rtl.RegNext(b, rtl.RegNext(b, din)))
			// Sample the input again on the auxiliary clock
			aux := b.ClockInput("aux")
			b.WithClock(aux, func() {
				tap := rtl.Named(rtl.RegNext(b, din), "tap")
				b.Printf("tap=%x", tap)
			})
		},
	}
}
