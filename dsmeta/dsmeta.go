// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsmeta describes the datasets behind the value columns of a
// validation results table: which satellite / model dataset each column
// comes from, which reference it was validated against, and which
// metric it holds. It is the metadata that drives plot titles, box
// labels, and range selection.
package dsmeta

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Var is the metadata for one value column of a results table.
type Var struct {

	// Dataset is the identifier of the compared dataset, e.g., "C3S".
	Dataset string `yaml:"dataset"`

	// DatasetPretty is the human-readable dataset name.
	DatasetPretty string `yaml:"dataset_pretty"`

	// Version is the dataset version identifier.
	Version string `yaml:"version"`

	// VersionPretty is the human-readable version name.
	VersionPretty string `yaml:"version_pretty"`

	// Metric is the metric identifier for the column values,
	// e.g., "R", looked up in the [metrics.Registry].
	Metric string `yaml:"metric"`

	// Ref is the identifier of the reference dataset, e.g., "ISMN".
	Ref string `yaml:"ref"`

	// RefPretty is the human-readable reference dataset name.
	RefPretty string `yaml:"ref_pretty"`

	// RefVersion is the reference dataset version identifier.
	RefVersion string `yaml:"ref_version"`

	// RefVersionPretty is the human-readable reference version name.
	RefVersionPretty string `yaml:"ref_version_pretty"`
}

// VarMeta maps value column names to their [Var] metadata.
type VarMeta map[string]Var

// Global is the subset of [Var] metadata that must be identical across
// all compared columns of one plot: one metric, one reference.
type Global struct {
	Metric           string
	Ref              string
	RefPretty        string
	RefVersion       string
	RefVersionPretty string
}

// Columns returns the sorted value column names, for deterministic
// iteration when building labels and ranges.
func (vm VarMeta) Columns() []string {
	cs := make([]string, 0, len(vm))
	for c := range vm {
		cs = append(cs, c)
	}
	slices.Sort(cs)
	return cs
}

// Global extracts the shared metadata from all columns, returning an
// error with a field-by-field diff if any column disagrees on any of
// the global fields.
func (vm VarMeta) Global() (Global, error) {
	var gl Global
	cs := vm.Columns()
	if len(cs) == 0 {
		return gl, fmt.Errorf("dsmeta: no variable metadata")
	}
	first := cs[0]
	gl = globalOf(vm[first])
	for _, c := range cs[1:] {
		og := globalOf(vm[c])
		if og == gl {
			continue
		}
		var df []string
		diff := func(field, a, b string) {
			if a != b {
				df = append(df, fmt.Sprintf("%s: %q != %q", field, a, b))
			}
		}
		diff("metric", gl.Metric, og.Metric)
		diff("ref", gl.Ref, og.Ref)
		diff("ref_pretty", gl.RefPretty, og.RefPretty)
		diff("ref_version", gl.RefVersion, og.RefVersion)
		diff("ref_version_pretty", gl.RefVersionPretty, og.RefVersionPretty)
		return gl, fmt.Errorf("dsmeta: global metadata inconsistent between columns %q and %q: %s",
			first, c, strings.Join(df, "; "))
	}
	return gl, nil
}

func globalOf(v Var) Global {
	return Global{
		Metric:           v.Metric,
		Ref:              v.Ref,
		RefPretty:        v.RefPretty,
		RefVersion:       v.RefVersion,
		RefVersionPretty: v.RefVersionPretty,
	}
}

// Read reads [VarMeta] from YAML, keyed by column name.
func Read(r io.Reader) (VarMeta, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	vm := VarMeta{}
	if err := yaml.Unmarshal(b, &vm); err != nil {
		return nil, fmt.Errorf("dsmeta: %w", err)
	}
	return vm, nil
}

// Open reads [VarMeta] from the given YAML file.
func Open(filename string) (VarMeta, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
