// SPDX-License-Identifier: MIT
package structio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systax/builder"
	"github.com/katalvlaran/systax/structio"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	s, err := builder.Build(builder.RockSalt(11, 17, builder.NaClA))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"nacl.json", "nacl.yaml", "nacl.json.xz", "nacl.yml.xz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, structio.Write(path, s))
			got, err := structio.Read(path)
			require.NoError(t, err)
			assert.Equal(t, s.Numbers, got.Numbers)
			assert.Equal(t, s.Positions, got.Positions)
			assert.Equal(t, s.Cell, got.Cell)
			assert.Equal(t, s.PBC, got.PBC)
		})
	}
}

func TestDecode_Symbols(t *testing.T) {
	doc := `{"symbols": ["O", "H", "H"], "positions": [[0,0,0],[0.76,0.59,0],[-0.76,0.59,0]],
	"cell": [[0,0,0],[0,0,0],[0,0,0]], "pbc": [false,false,false]}`
	s, err := structio.Decode(strings.NewReader(doc), structio.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 1, 1}, s.Numbers)
}

func TestDecode_Errors(t *testing.T) {
	_, err := structio.Decode(strings.NewReader(`{"numbers": [1], "positions": []}`), structio.FormatJSON)
	require.ErrorIs(t, err, structio.ErrDecode)

	_, err = structio.Decode(strings.NewReader(`{"symbols": ["Qq"], "positions": [[0,0,0]]}`), structio.FormatJSON)
	require.ErrorIs(t, err, structio.ErrDecode)

	_, err = structio.Decode(strings.NewReader("numbers: [1]\nspin: 2\n"), structio.FormatYAML)
	require.ErrorIs(t, err, structio.ErrDecode)

	_, _, err = structio.FormatOf("a.cif")
	require.ErrorIs(t, err, structio.ErrUnsupportedFormat)
}

func TestFingerprint(t *testing.T) {
	a, err := builder.Build(builder.Graphene(builder.GrapheneA), builder.WithRepeat(2, 2, 1))
	require.NoError(t, err)
	b, err := builder.Build(builder.Graphene(builder.GrapheneA), builder.WithRepeat(2, 2, 1))
	require.NoError(t, err)

	fa, err := structio.Fingerprint(a)
	require.NoError(t, err)
	fb, err := structio.Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
	assert.Len(t, fa, 64)

	b.Numbers[0] = 7
	fc, err := structio.Fingerprint(b)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fc)
}

func TestEncodeValue_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, structio.EncodeValue(&buf, map[string]int{"dimension": 2}, structio.FormatYAML))
	assert.Equal(t, "dimension: 2\n", buf.String())
}
