// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BuildThenClassify(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "graphene.json.xz")
	bulk := filepath.Join(dir, "si.yaml")

	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"build", "graphene", "--repeat", "4,4,1", "-o", sheet}, &out, &errOut))
	require.NoError(t, run([]string{"build", "diamond", "--repeat", "2,2,2", "-o", bulk}, &out, &errOut))
	assert.Contains(t, errOut.String(), "structure written")

	out.Reset()
	require.NoError(t, run([]string{"--log-level", "warn", "classify", sheet, bulk, "--workers", "2"}, &out, &errOut))

	var got []struct {
		File        string `json:"file"`
		Fingerprint string `json:"fingerprint"`
		Formula     string `json:"formula"`
		Result      struct {
			Category       string `json:"category"`
			Dimensionality int    `json:"dimensionality"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, sheet, got[0].File)
	assert.Equal(t, "C32", got[0].Formula)
	assert.Equal(t, "Material2D", got[0].Result.Category)
	assert.Len(t, got[0].Fingerprint, 64)
	assert.Equal(t, "Crystal", got[1].Result.Category)
	assert.Equal(t, 3, got[1].Result.Dimensionality)
}

func TestRun_Dimensionality(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yml")
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"build", "chain", "--repeat", "6,1,1", "-o", path}, &out, &errOut))

	out.Reset()
	require.NoError(t, run([]string{"dimensionality", path}, &out, &errOut))
	assert.Contains(t, out.String(), "C6\t1D")
}

func TestRun_DefaultsAndVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"defaults"}, &out, &errOut))
	assert.Contains(t, out.String(), "max_atoms: 1000")

	out.Reset()
	require.NoError(t, run([]string{"defaults", "--format", "toml"}, &out, &errOut))
	assert.Contains(t, out.String(), "max_atoms = 1000")

	out.Reset()
	require.NoError(t, run([]string{"version"}, &out, &errOut))
	assert.Equal(t, "systax "+version+"\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Error(t, run([]string{"build", "quasicrystal", "-o", "x.json"}, &out, &errOut))
	require.Error(t, run([]string{"classify", filepath.Join(t.TempDir(), "missing.json")}, &out, &errOut))
	require.Error(t, run([]string{"build", "graphene", "--repeat", "2,2", "-o", filepath.Join(t.TempDir(), "g.json")}, &out, &errOut))
}
