// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsolve/matrix"
)

// stdinPath selects standard input as the document source.
const stdinPath = "-"

// errNoRHS is returned by solve when the document has no b vector.
var errNoRHS = errors.New("input has no right-hand side b")

// System is the YAML input document:
//
//	a:
//	  - [1, 1, 1]
//	  - [2, -1, 3]
//	b: [3, 4]
type System struct {
	A [][]float64 `yaml:"a"`
	B []float64   `yaml:"b,omitempty"`
}

// loadSystem reads and decodes the document at path ("-" for stdin).
func loadSystem(path string, stdin io.Reader) (*System, error) {
	if path == stdinPath {
		return decodeSystem(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return decodeSystem(f)
}

// decodeSystem parses one document; unknown keys are rejected.
func decodeSystem(r io.Reader) (*System, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sys System
	if err := dec.Decode(&sys); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("parse input: empty document")
		}
		return nil, fmt.Errorf("parse input: %w", err)
	}
	if len(sys.A) == 0 {
		return nil, errors.New("parse input: missing matrix a")
	}

	return &sys, nil
}

// Matrix converts the a rows into a *matrix.Dense.
func (s *System) Matrix() (*matrix.Dense, error) {
	m, err := matrix.NewFromRows(s.A)
	if err != nil {
		return nil, fmt.Errorf("matrix a: %w", err)
	}

	return m, nil
}

// HasRHS reports whether the document carries a b vector.
func (s *System) HasRHS() bool { return s.B != nil }
