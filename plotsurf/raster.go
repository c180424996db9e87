// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotsurf

import (
	"math"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/tensor"
	"cogentcore.org/geoval/grids"
)

// Raster implements the Plotter interface, drawing a 2D grid of
// values as filled cells colored through a colormap. Cells with NaN
// values are left unpainted.
type Raster struct {
	// Grid is the values, indexed as (y, x).
	Grid *tensor.Float64

	// Extent is the coordinate extent covered by the grid,
	// spanning the outer edges of the edge cells.
	Extent grids.Extent

	// Range is the value range mapped onto the colormap.
	// Values outside it are clamped to the end colors.
	Range minmax.F64

	// ColorMap translates normalized values to colors.
	ColorMap *colormap.Map
}

// NewRaster returns a Raster over the given grid and extent.
func NewRaster(gd *tensor.Float64, ext grids.Extent, vr minmax.F64, cm *colormap.Map) *Raster {
	return &Raster{Grid: gd, Extent: ext, Range: vr, ColorMap: cm}
}

// Plot draws the cells, implementing the plot.Plotter interface.
func (rs *Raster) Plot(plt *plot.Plot) {
	pc := plt.Paint
	ny := rs.Grid.DimSize(0)
	nx := rs.Grid.DimSize(1)
	xstep := rs.Extent.X.Range() / float64(nx)
	ystep := rs.Extent.Y.Range() / float64(ny)
	for yi := range ny {
		y0 := rs.Extent.Y.Min + float64(yi)*ystep
		for xi := range nx {
			v := rs.Grid.Float(yi, xi)
			if math.IsNaN(v) {
				continue
			}
			x0 := rs.Extent.X.Min + float64(xi)*xstep
			var box math32.Box2
			box.Min.Set(plt.PX(float32(x0)), plt.PY(float32(y0+ystep)))
			box.Max.Set(plt.PX(float32(x0+xstep)), plt.PY(float32(y0)))
			clr := colors.Uniform(rs.ColorMap.Map(norm(v, rs.Range)))
			pc.FillStyle.Color = clr
			pc.StrokeStyle.Color = clr
			pc.DrawRectangle(box.Min.X, box.Min.Y, box.Size().X, box.Size().Y)
			pc.FillStrokeClear()
		}
	}
	pc.FillStyle.Color = nil
}

// DataRange returns the coordinate extent of the grid,
// implementing the plot.DataRanger interface.
func (rs *Raster) DataRange() (xmin, xmax, ymin, ymax float32) {
	return float32(rs.Extent.X.Min), float32(rs.Extent.X.Max),
		float32(rs.Extent.Y.Min), float32(rs.Extent.Y.Max)
}
