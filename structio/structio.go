// SPDX-License-Identifier: MIT
// Package structio reads and writes structures and reports as JSON or YAML,
// optionally xz-compressed, and fingerprints structures by content.
//
// File layout (JSON shown, YAML uses the same keys):
//
//	{
//	  "numbers":   [6, 6],            // or "symbols": ["C", "C"]
//	  "positions": [[0, 0, 0], [0, 1.42, 0]],
//	  "cell":      [[2.46, 0, 0], [-1.23, 2.13, 0], [0, 0, 0]],
//	  "pbc":       [true, true, false]
//	}
package structio

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/matrix"
)

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .json, .yaml and .yml (each optionally followed by .xz).
	ErrUnsupportedFormat = errors.New("structio: unsupported format")

	// ErrDecode wraps malformed documents.
	ErrDecode = errors.New("structio: cannot decode structure")
)

// Format is a document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// compressedExt marks xz-compressed files.
const compressedExt = ".xz"

type document struct {
	Numbers   []int         `json:"numbers,omitempty" yaml:"numbers,omitempty"`
	Symbols   []string      `json:"symbols,omitempty" yaml:"symbols,omitempty"`
	Positions []matrix.Vec3 `json:"positions" yaml:"positions"`
	Cell      matrix.Mat3   `json:"cell" yaml:"cell"`
	PBC       [3]bool       `json:"pbc" yaml:"pbc"`
}

// FormatOf returns the syntax of path and whether it is xz-compressed.
func FormatOf(path string) (Format, bool, error) {
	name := strings.ToLower(path)
	compressed := strings.HasSuffix(name, compressedExt)
	name = strings.TrimSuffix(name, compressedExt)
	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	default:
		return "", false, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Read loads a structure from path.
func Read(path string) (*atoms.Structure, error) {
	f, compressed, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("structio: open %s: %w", path, err)
	}
	defer file.Close()

	var r io.Reader = file
	if compressed {
		xr, err := xz.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("structio: xz reader for %s: %w", path, err)
		}
		r = xr
	}

	return Decode(r, f)
}

// Write stores s at path, compressing when path ends in .xz.
func Write(path string, s *atoms.Structure) error {
	f, compressed, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("structio: create %s: %w", path, err)
	}
	defer file.Close()

	if !compressed {
		return Encode(file, s, f)
	}
	xw, err := xz.NewWriter(file)
	if err != nil {
		return fmt.Errorf("structio: xz writer for %s: %w", path, err)
	}
	if err := Encode(xw, s, f); err != nil {
		xw.Close()
		return err
	}

	return xw.Close()
}

// Decode reads one structure document and validates it.
func Decode(r io.Reader, f Format) (*atoms.Structure, error) {
	var doc document
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	numbers := doc.Numbers
	if len(numbers) == 0 && len(doc.Symbols) > 0 {
		numbers = make([]int, len(doc.Symbols))
		for i, sym := range doc.Symbols {
			z, err := atoms.Number(sym)
			if err != nil {
				return nil, fmt.Errorf("%w: symbol %q: %w", ErrDecode, sym, err)
			}
			numbers[i] = z
		}
	}
	s, err := atoms.New(numbers, doc.Positions, doc.Cell, doc.PBC)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return s, nil
}

// Encode writes s as one document.
func Encode(w io.Writer, s *atoms.Structure, f Format) error {
	doc := document{Numbers: s.Numbers, Positions: s.Positions, Cell: s.Cell, PBC: s.PBC}

	return EncodeValue(w, doc, f)
}

// EncodeValue writes any value (typically a report) in the given syntax.
func EncodeValue(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Fingerprint returns the hex BLAKE3 digest of the canonical JSON encoding
// of s. Structures with equal numbers, positions, cell and periodicity share
// a fingerprint.
func Fingerprint(s *atoms.Structure) (string, error) {
	var buf bytes.Buffer
	doc := document{Numbers: s.Numbers, Positions: s.Positions, Cell: s.Cell, PBC: s.PBC}
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return "", err
	}
	sum := blake3.Sum256(buf.Bytes())

	return hex.EncodeToString(sum[:]), nil
}
