// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valplot

import (
	"math"

	"cogentcore.org/core/tensor/table"
	"cogentcore.org/geoval/grids"
)

// PlotExtent returns the coordinate extent for a map plot of the given
// table: the coordinate range of the data, padded on all sides by
// cfg.MapPad of the smaller dimension, and clamped to the world.
func PlotExtent(dt *table.Table, cfg *Config) (grids.Extent, error) {
	var ext grids.Extent
	la, err := dt.ColumnTry(cfg.LatColumn)
	if err != nil {
		return ext, err
	}
	lo, err := dt.ColumnTry(cfg.LonColumn)
	if err != nil {
		return ext, err
	}
	ext.X.SetInfinity()
	ext.Y.SetInfinity()
	for i := range la.NumRows() {
		ext.Y.FitValInRange(la.FloatRow(i))
		ext.X.FitValInRange(lo.FloatRow(i))
	}
	pad := math.Min(ext.X.Range(), ext.Y.Range()) * cfg.MapPad / (1 + cfg.MapPad)
	ext.X.Min = math.Max(ext.X.Min-pad, -180)
	ext.X.Max = math.Min(ext.X.Max+pad, 180)
	ext.Y.Min = math.Max(ext.Y.Min-pad, -90)
	ext.Y.Max = math.Min(ext.Y.Max+pad, 90)
	return ext, nil
}
