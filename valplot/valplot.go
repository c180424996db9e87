// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package valplot renders statistical and geospatial views of
// validation results: box summaries comparing datasets, scatter maps,
// and gridded raster maps. It computes value ranges, reconstructs
// grids, and generates labels and titles from dataset metadata, and
// paints through the narrow [Surface] interface, keeping the plotting
// library an external collaborator.
package valplot

import (
	"fmt"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/tensor/table"
	"cogentcore.org/geoval/dsmeta"
	"cogentcore.org/geoval/grids"
	"cogentcore.org/geoval/metrics"
	"cogentcore.org/geoval/ranges"
)

// Boxplot paints one box-and-whisker summary per metadata column of
// dt onto sf, with a shared value range selected for the common metric
// of all columns. The columns must agree on their global metadata
// (metric and reference dataset).
func Boxplot(sf Surface, dt *table.Table, vm dsmeta.VarMeta, reg *metrics.Registry, cfg *Config) error {
	gl, err := vm.Global()
	if err != nil {
		return err
	}
	cols := vm.Columns()
	labels := make([]string, len(cols))
	bxs := make([]BoxStats, len(cols))
	for i, c := range cols {
		data, err := columnData(dt, c)
		if err != nil {
			return err
		}
		v := vm[c]
		labels[i], err = summaryLabel(v.DatasetPretty, v.VersionPretty, data, cfg.PrintNumbers)
		if err != nil {
			return fmt.Errorf("column %q: %w", c, err)
		}
		bxs[i], err = boxStats(data)
		if err != nil {
			return fmt.Errorf("column %q: %w", c, err)
		}
	}
	vr, err := ranges.SelectTable(dt, cols, gl.Metric, reg, rangeOptions(cfg))
	if err != nil {
		return err
	}
	vlab, err := reg.Label(gl.Metric, gl.Ref)
	if err != nil {
		vlab = gl.Metric
	}
	sf.Boxes(labels, bxs, vr, vlab)
	if cfg.AddTitle {
		names := make([]string, len(cols))
		for i, c := range cols {
			names[i] = vm[c].DatasetPretty
		}
		sf.Title(ComparisonTitle(gl.RefPretty, names, cfg.MaxTitleLen))
	}
	watermark(sf, cfg)
	return nil
}

// ScatterMap paints the given column of dt as a colored scatter map
// onto sf, with a colorbar scaled by the column's metric.
func ScatterMap(sf Surface, dt *table.Table, column string, vm dsmeta.VarMeta, reg *metrics.Registry, cfg *Config) error {
	v, data, err := mapVar(dt, column, vm)
	if err != nil {
		return err
	}
	vr, err := ranges.Select(data, v.Metric, reg, rangeOptions(cfg))
	if err != nil {
		return err
	}
	ext, err := PlotExtent(dt, cfg)
	if err != nil {
		return err
	}
	lats, err := columnData(dt, cfg.LatColumn)
	if err != nil {
		return err
	}
	lons, err := columnData(dt, cfg.LonColumn)
	if err != nil {
		return err
	}
	sf.SetExtent(ext)
	sf.Scatter(lons, lats, data, vr, reg.ColorMap(v.Metric))
	colorbar(sf, reg, v, data, vr)
	if cfg.AddTitle {
		sf.Title(MapTitle(v))
	}
	watermark(sf, cfg)
	return nil
}

// GridMap reconstructs the lattice underlying the given column of dt
// and paints it as a raster map onto sf, with a colorbar scaled by the
// column's metric. The coordinates must lie on a regular lattice; see
// [grids.FromTable].
func GridMap(sf Surface, dt *table.Table, column string, vm dsmeta.VarMeta, reg *metrics.Registry, cfg *Config) error {
	v, data, err := mapVar(dt, column, vm)
	if err != nil {
		return err
	}
	vr, err := ranges.Select(data, v.Metric, reg, rangeOptions(cfg))
	if err != nil {
		return err
	}
	ext, err := PlotExtent(dt, cfg)
	if err != nil {
		return err
	}
	gd, gext, err := grids.FromTable(dt, column, cfg.LatColumn, cfg.LonColumn)
	if err != nil {
		return err
	}
	sf.SetExtent(ext)
	sf.Raster(gd, gext, vr, reg.ColorMap(v.Metric))
	colorbar(sf, reg, v, data, vr)
	if cfg.AddTitle {
		sf.Title(MapTitle(v))
	}
	watermark(sf, cfg)
	return nil
}

func mapVar(dt *table.Table, column string, vm dsmeta.VarMeta) (dsmeta.Var, []float64, error) {
	v, ok := vm[column]
	if !ok {
		return v, nil, fmt.Errorf("valplot: no metadata for column %q", column)
	}
	data, err := columnData(dt, column)
	if err != nil {
		return v, nil, err
	}
	return v, data, nil
}

// colorbar adds the colorbar for a map plot. The extend decoration
// comes from the metric registry; for a metric the registry does not
// know, it is derived from the data instead.
func colorbar(sf Surface, reg *metrics.Registry, v dsmeta.Var, data []float64, vr minmax.F64) {
	var ex metrics.Extend
	if mr, ok := reg.Lookup(v.Metric); ok {
		ex = metrics.FromRange(mr)
	} else {
		ex = ranges.ExtendFromData(data, vr)
	}
	label, err := reg.Label(v.Metric, v.Ref)
	if err != nil {
		label = v.Metric
	}
	sf.Colorbar(vr, ex, label, reg.ColorMap(v.Metric))
}

func watermark(sf Surface, cfg *Config) {
	if cfg.Watermark == "" || cfg.WatermarkPos == "" {
		return
	}
	sf.Watermark(cfg.Watermark, cfg.WatermarkPos)
}

func rangeOptions(cfg *Config) ranges.Options {
	var op ranges.Options
	op.Defaults()
	if cfg.Quantiles.IsValid() && cfg.Quantiles != (minmax.F64{}) {
		op.Quantiles = cfg.Quantiles
	}
	return op
}
