// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valplot

import (
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/tensor"
	"cogentcore.org/geoval/grids"
	"cogentcore.org/geoval/metrics"
)

// Surface is the rendering sink that the plotting functions write to.
// It is a narrow interface over an external plotting library: the
// functions in this package compute ranges, grids, labels, and titles,
// and hand them to the surface to paint. See [plotsurf] for the
// standard implementation.
type Surface interface {

	// Title sets the plot title, which may contain newlines.
	Title(title string)

	// SetExtent sets the coordinate extent of a map plot,
	// with longitude on X and latitude on Y.
	SetExtent(ext grids.Extent)

	// Scatter paints points at (lons, lats) colored by vals
	// scaled over vr with the named colormap.
	Scatter(lons, lats, vals []float64, vr minmax.F64, colorMap string)

	// Raster paints the grid as a raster image over the given extent,
	// colored over vr with the named colormap. Row 0 of the grid is
	// the lowest latitude; NaN cells are not painted.
	Raster(gd *tensor.Float64, ext grids.Extent, vr minmax.F64, colorMap string)

	// Boxes paints one box-and-whisker summary per label,
	// with a shared value axis of the given range and label.
	Boxes(labels []string, bxs []BoxStats, vr minmax.F64, valueLabel string)

	// Colorbar adds a colorbar for the given range and colormap,
	// decorated with out-of-range arrows per extend.
	Colorbar(vr minmax.F64, extend metrics.Extend, label, colorMap string)

	// Watermark places the given text at the given position
	// ([WatermarkTop] or [WatermarkBottom]).
	Watermark(text, pos string)

	// Save renders the plot to the given file; the format is
	// determined by the file extension.
	Save(filename string) error
}

// BoxStats is the five-number summary painted as one box:
// whiskers at Low / High, box from Q1 to Q3, line at Median.
type BoxStats struct {
	Low    float64
	Q1     float64
	Median float64
	Q3     float64
	High   float64
}
