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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_01(t *testing.T) {
	cfg := loadConfig(t, `
options:
  declared_type_must_be_unbound: false
textwidth: 120
`)
	//
	assert.False(t, cfg.Options.DeclaredTypeMustBeUnbound)
	assert.Equal(t, uint(120), cfg.TextWidth)
}

// Omitted options keep their defaults.
func Test_Config_02(t *testing.T) {
	cfg := loadConfig(t, "textwidth: 80\n")
	//
	assert.True(t, cfg.Options.DeclaredTypeMustBeUnbound)
	assert.Equal(t, uint(80), cfg.TextWidth)
}

func Test_Config_03(t *testing.T) {
	cfg := DefaultConfig()
	//
	assert.True(t, cfg.Options.DeclaredTypeMustBeUnbound)
	assert.Equal(t, uint(0), cfg.TextWidth)
}

func Test_Config_04(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	//
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading configuration")
}

func Test_Config_05(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options: ["), 0600))
	//
	_, err := LoadConfig(path)
	//
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing configuration")
}

// ============================================================================
// Test Helpers
// ============================================================================

func loadConfig(t *testing.T, document string) Config {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0600))
	//
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	//
	return cfg
}
