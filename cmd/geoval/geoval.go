// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command geoval renders maps and statistical summaries of
// geoscience validation results from NetCDF or CSV files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/core/tensor/table"
	"cogentcore.org/geoval/dsmeta"
	"cogentcore.org/geoval/metrics"
	"cogentcore.org/geoval/ncread"
	"cogentcore.org/geoval/plotsurf"
	"cogentcore.org/geoval/valplot"
)

// Config is the configuration information for the geoval cli.
type Config struct {

	// Input is the validation results file to plot, either a NetCDF
	// file (.nc) or a delimited text file.
	Input string `posarg:"0"`

	// Meta is the YAML file with the per-variable dataset metadata.
	Meta string `flag:"m,meta"`

	// Output is the directory the plot files are written to.
	Output string `flag:"o,output" default:"plots"`

	// Format is the output image format (png, jpg, or svg).
	Format string `default:"png"`

	// Columns restricts plotting to the given data columns.
	// All columns with metadata are plotted if empty.
	Columns []string

	// Gridded plots maps as rasters on the reconstructed lattice
	// instead of scattered points, falling back to points for
	// columns whose coordinates are not on a regular lattice.
	Gridded bool

	valplot.Config
}

func main() {
	opts := cli.DefaultOptions("geoval", "Geoval renders maps and statistical summaries of geoscience validation results.")
	cli.Run(opts, &Config{}, Plot)
}

// Plot renders one summary boxplot per metric and one map per data
// column of the input file into the output directory.
func Plot(c *Config) error { //cli:cmd -root
	dt, err := load(c)
	if err != nil {
		return err
	}
	vm, err := dsmeta.Open(c.Meta)
	if err != nil {
		return err
	}
	reg := metrics.Default()
	cols := vm.Columns()
	if len(c.Columns) > 0 {
		cols = c.Columns
	}
	if err := os.MkdirAll(c.Output, 0o755); err != nil {
		return err
	}
	for metric, sub := range byMetric(vm, cols) {
		sf := plotsurf.New(c.Width, c.Height)
		if err := valplot.Boxplot(sf, dt, sub, reg, &c.Config); err != nil {
			return fmt.Errorf("boxplot for %s: %w", metric, err)
		}
		if err := save(sf, c, "boxplot_"+metric); err != nil {
			return err
		}
	}
	for _, col := range cols {
		if _, ok := vm[col]; !ok {
			return fmt.Errorf("no metadata for column %q", col)
		}
		sf := plotsurf.New(c.Width, c.Height)
		if c.Gridded {
			err = valplot.GridMap(sf, dt, col, vm, reg, &c.Config)
			if err != nil {
				slog.Warn("gridded map failed, falling back to points", "column", col, "err", err)
				sf = plotsurf.New(c.Width, c.Height)
				err = valplot.ScatterMap(sf, dt, col, vm, reg, &c.Config)
			}
		} else {
			err = valplot.ScatterMap(sf, dt, col, vm, reg, &c.Config)
		}
		if err != nil {
			return fmt.Errorf("map for %s: %w", col, err)
		}
		if err := save(sf, c, "map_"+col); err != nil {
			return err
		}
	}
	return nil
}

func load(c *Config) (*table.Table, error) {
	ext := strings.ToLower(filepath.Ext(c.Input))
	if ext == ".nc" || ext == ".nc4" {
		return ncread.Load(c.Input)
	}
	dt := table.NewTable(c.Input)
	if err := dt.OpenCSV(core.Filename(c.Input), table.Detect); err != nil {
		return nil, err
	}
	return dt, nil
}

func save(sf *plotsurf.Surface, c *Config, name string) error {
	fn := filepath.Join(c.Output, name+"."+c.Format)
	if err := sf.Save(fn); err != nil {
		return err
	}
	slog.Info("saved plot", "file", fn)
	return nil
}

// byMetric splits the metadata into one VarMeta per metric,
// keeping only the given columns.
func byMetric(vm dsmeta.VarMeta, cols []string) map[string]dsmeta.VarMeta {
	groups := map[string]dsmeta.VarMeta{}
	for _, c := range cols {
		v, ok := vm[c]
		if !ok {
			continue
		}
		g := groups[v.Metric]
		if g == nil {
			g = dsmeta.VarMeta{}
			groups[v.Metric] = g
		}
		g[c] = v
	}
	return groups
}
