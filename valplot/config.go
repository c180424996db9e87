// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valplot

import "cogentcore.org/core/math32/minmax"

// Watermark positions.
const (
	WatermarkTop    = "top"
	WatermarkBottom = "bottom"
)

// Config has the styling defaults for the plotting functions.
// It is passed explicitly: there is no process-global configuration.
type Config struct {

	// LatColumn and LonColumn are the coordinate column names
	// in results tables.
	LatColumn string `default:"lat"`
	LonColumn string `default:"lon"`

	// MapPad is the fraction of the smaller map dimension added as
	// padding around the data when computing the plot extent.
	MapPad float64 `default:"0.05"`

	// MaxTitleLen is the maximum length of one title line before
	// the title wraps.
	MaxTitleLen int `default:"50"`

	// Quantiles are the data quantiles used when a display range
	// bound is not fixed by the metric registry.
	Quantiles minmax.F64

	// PrintNumbers adds median, standard deviation, and number of
	// observations to each box label.
	PrintNumbers bool `default:"true"`

	// AddTitle generates a title from the dataset metadata.
	AddTitle bool `default:"true"`

	// Watermark is the watermark text; empty disables the watermark.
	Watermark string `default:"made with geoval"`

	// WatermarkPos is [WatermarkTop] or [WatermarkBottom];
	// empty disables the watermark.
	WatermarkPos string `default:"top"`

	// Width and Height are the output image size in pixels.
	Width  int `default:"1152"`
	Height int `default:"864"`
}

// Defaults sets the default configuration values.
func (cfg *Config) Defaults() {
	cfg.LatColumn = "lat"
	cfg.LonColumn = "lon"
	cfg.MapPad = 0.05
	cfg.MaxTitleLen = 50
	cfg.Quantiles.Set(0.025, 0.975)
	cfg.PrintNumbers = true
	cfg.AddTitle = true
	cfg.Watermark = "made with geoval"
	cfg.WatermarkPos = WatermarkTop
	cfg.Width = 1152
	cfg.Height = 864
}
