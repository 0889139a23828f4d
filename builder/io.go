// SPDX-License-Identifier: MIT
// Package: cycletsp/builder
//
// io.go — YAML instance files (gopkg.in/yaml.v3).
//
// Unknown keys are rejected so that typos in hand-written files surface
// instead of silently producing an empty cover.

package builder

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes one instance from r.
func Load(r io.Reader) (*Instance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in Instance
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, builderErrorf(MethodLoad, ErrBadInstance, "empty document")
		}
		return nil, builderErrorf(MethodLoad, ErrBadInstance, "%v", err)
	}
	if len(in.Weights) == 0 {
		return nil, builderErrorf(MethodLoad, ErrBadInstance, "no weights")
	}
	if len(in.Cover) == 0 {
		return nil, builderErrorf(MethodLoad, ErrBadInstance, "no cover")
	}

	return &in, nil
}

// LoadFile reads an instance from path.
func LoadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Save encodes in to w with two-space indentation.
func Save(w io.Writer, in *Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return builderErrorf(MethodSave, err, "encode %q", in.Name)
	}

	return enc.Close()
}

// SaveFile writes in to path, replacing any existing file.
func SaveFile(path string, in *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Save(f, in); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
