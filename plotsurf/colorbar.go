// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotsurf

import (
	"fmt"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/plot/plots"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/geoval/metrics"
)

// Colorbar implements the Plotter interface, drawing a vertical
// colormap legend along the right edge of the plot area, with the
// range end values, an optional axis label, and triangular
// out-of-range markers on the open ends.
type Colorbar struct {
	// Range is the value range spanned by the bar.
	Range minmax.F64

	// Extend selects which ends get an out-of-range triangle.
	Extend metrics.Extend

	// Label is the description drawn alongside the bar.
	Label string

	// ColorMap translates normalized values to colors.
	ColorMap *colormap.Map

	// Width is the thickness of the bar.
	Width units.Value

	// TextStyle is the style of the end values and label.
	TextStyle plot.TextStyle
}

// steps is the number of constant-color strips the bar is
// painted with.
const steps = 64

// NewColorbar returns a new colorbar for the given range.
func NewColorbar(vr minmax.F64, extend metrics.Extend, label string, cm *colormap.Map) *Colorbar {
	cb := &Colorbar{Range: vr, Extend: extend, Label: label, ColorMap: cm}
	cb.Width.Pt(12)
	cb.TextStyle.Defaults()
	return cb
}

// Plot draws the bar, implementing the plot.Plotter interface.
func (cb *Colorbar) Plot(plt *plot.Plot) {
	pc := plt.Paint
	cb.Width.ToDots(&pc.UnitContext)
	cb.TextStyle.ToDots(&pc.UnitContext)
	ptb := pc.Bounds
	w := cb.Width.Dots
	x0 := float32(ptb.Max.X) - 2.5*w
	ytop := float32(ptb.Min.Y) + 3*w
	ybot := float32(ptb.Max.Y) - 3*w
	ht := ybot - ytop

	for i := range steps {
		frac := (float32(i) + 0.5) / steps
		clr := colors.Uniform(cb.ColorMap.Map(frac))
		pc.FillStyle.Color = clr
		pc.StrokeStyle.Color = clr
		y1 := ybot - frac*ht
		pc.DrawRectangle(x0, y1-0.5*ht/steps, w, ht/steps+1)
		pc.FillStrokeClear()
	}

	if cb.Extend == metrics.Max || cb.Extend == metrics.Both {
		clr := colors.Uniform(cb.ColorMap.Map(1))
		pc.FillStyle.Color = clr
		pc.StrokeStyle.Color = clr
		plots.DrawPyramid(pc, math32.Vec2(x0+0.5*w, ytop-0.75*w), 0.75*w)
	}
	if cb.Extend == metrics.Min || cb.Extend == metrics.Both {
		clr := colors.Uniform(cb.ColorMap.Map(0))
		pc.FillStyle.Color = clr
		pc.StrokeStyle.Color = clr
		downPyramid(pc, math32.Vec2(x0+0.5*w, ybot+0.75*w), 0.75*w)
	}
	pc.FillStyle.Color = nil

	var ltxt plot.Text
	ltxt.Style = cb.TextStyle

	ltxt.Text = fmt.Sprintf("%.3g", cb.Range.Max)
	ltxt.Config(plt)
	sz := ltxt.PaintText.BBox.Size()
	ltxt.Draw(plt, math32.Vec2(x0-sz.X-4, ytop-0.5*sz.Y))

	ltxt.Text = fmt.Sprintf("%.3g", cb.Range.Min)
	ltxt.Config(plt)
	sz = ltxt.PaintText.BBox.Size()
	ltxt.Draw(plt, math32.Vec2(x0-sz.X-4, ybot-0.5*sz.Y))

	if cb.Label != "" {
		ltxt.Style.Rotation = 90
		ltxt.Text = cb.Label
		ltxt.Config(plt)
		sz = ltxt.PaintText.BBox.Size()
		ltxt.Draw(plt, math32.Vec2(x0+w+4, ytop+0.5*(ht-sz.X)))
	}
}

// downPyramid draws a filled downward-pointing triangle,
// mirroring [plots.DrawPyramid].
func downPyramid(pc *paint.Context, pos math32.Vector2, size float32) {
	x := size * 0.9
	pc.MoveTo(pos.X, pos.Y+x)
	pc.LineTo(pos.X-x, pos.Y-x)
	pc.LineTo(pos.X+x, pos.Y-x)
	pc.ClosePath()
	pc.FillStrokeClear()
}
