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
package elab

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/consensys/go-rtl/pkg/rtl"
)

// Config mirrors the on-disk configuration of a construction run.  Policy
// options omitted from the document keep their defaults.
type Config struct {
	// Options configures construction policy.
	Options rtl.Options `yaml:"options"`
	// TextWidth bounds lines of the textual rendering, zero meaning no
	// limit.
	TextWidth uint `yaml:"textwidth"`
}

// DefaultConfig returns the configuration applied when no document is given.
func DefaultConfig() Config {
	return Config{
		Options: rtl.DefaultOptions(),
	}
}

// LoadConfig reads a YAML configuration from the given path, overlaying it
// on the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	//
	bytes, err := os.ReadFile(path)
	//
	if err != nil {
		return cfg, errors.Wrapf(err, "reading configuration %q", path)
	}
	//
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing configuration %q", path)
	}
	//
	return cfg, nil
}
