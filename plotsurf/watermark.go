// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotsurf

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
	"cogentcore.org/geoval/valplot"
)

// watermark draws a small attribution text at the top or bottom left
// corner of the plot area.
type watermark struct {
	text string
	pos  string
}

func (wm *watermark) Plot(plt *plot.Plot) {
	pc := plt.Paint
	var ltxt plot.Text
	ltxt.Style.Defaults()
	ltxt.Style.ToDots(&pc.UnitContext)
	ltxt.Text = wm.text
	ltxt.Config(plt)
	sz := ltxt.PaintText.BBox.Size()
	ptb := pc.Bounds
	pos := math32.Vec2(float32(ptb.Min.X)+4, float32(ptb.Min.Y)+2)
	if wm.pos == valplot.WatermarkBottom {
		pos.Y = float32(ptb.Max.Y) - sz.Y - 2
	}
	ltxt.Draw(plt, pos)
}
