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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-rtl/pkg/elab"
	"github.com/consensys/go-rtl/pkg/rtl/emit"
)

var elaborateCmd = &cobra.Command{
	Use:   "elaborate [flags] design...",
	Short: "elaborate one or more example designs.",
	Long: `Elaborate one or more of the built-in example designs and
	print the resulting circuits in textual form.  Use "go-rtl list"
	to see which designs are available.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		stats := GetFlag(cmd, "stats")
		// Read in configuration file (if given)
		cfg := loadConfig(cmd)
		// Command-line flags take precedence over the configuration
		if cmd.Flags().Changed("textwidth") {
			cfg.TextWidth = GetUint(cmd, "textwidth")
		}
		//
		if cmd.Flags().Changed("strict-decl") {
			cfg.Options.DeclaredTypeMustBeUnbound = GetFlag(cmd, "strict-decl")
		}
		//
		for _, name := range args {
			design, ok := lookupDesign(name)
			//
			if !ok {
				fmt.Printf("unknown design %q (see \"go-rtl list\")\n", name)
				os.Exit(2)
			}
			// Elaborate design into a circuit
			circuit, err := elab.Elaborate(cfg.Options, design)
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			// Print summary (if requested)
			if stats {
				emit.Stats(os.Stdout, circuit)
			} else if err := emit.Circuit(os.Stdout, circuit, textWidth(cfg)); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
	},
}

// Determine the line width of the textual rendering, preferring the width of
// the attached terminal when none was configured.
func textWidth(cfg elab.Config) uint {
	if cfg.TextWidth != 0 {
		return cfg.TextWidth
	}
	// Check whether stdin is connected to a terminal
	if term.IsTerminal(0) {
		if width, _, err := term.GetSize(0); err == nil && width > 0 {
			return uint(width)
		}
	}
	// No limit
	return 0
}

// Read the elaboration configuration identified by the persistent config
// flag, falling back on the defaults when the flag is absent.
func loadConfig(cmd *cobra.Command) elab.Config {
	path := GetString(cmd, "config")
	//
	if path == "" {
		return elab.DefaultConfig()
	}
	//
	cfg, err := elab.LoadConfig(path)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return cfg
}

func init() {
	rootCmd.AddCommand(elaborateCmd)
	elaborateCmd.Flags().Bool("stats", false, "print summary information instead of the circuit")
	elaborateCmd.Flags().Uint("textwidth", 0, "set maximum textwidth to use (0 = terminal width)")
	elaborateCmd.Flags().Bool("strict-decl", true, "require declared types to be unbound templates")
}
