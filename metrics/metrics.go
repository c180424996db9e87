// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics provides the registry of validation metrics:
// their display value ranges, human-readable names, unit strings,
// and colormaps, used to drive consistent plot scaling and labeling.
package metrics

//go:generate core generate

import (
	"fmt"
	"math"
	"slices"
)

// Open is the open (unspecified) bound value for a [Range].
// An open bound is determined from data quantiles at plot time.
var Open = math.NaN()

// Range is the display value range for a metric.
// Either bound may be [Open] (NaN), in which case it is
// computed from the data being plotted.
type Range struct {
	Min float64
	Max float64
}

// HasMin returns true if the lower bound is specified (not [Open]).
func (r Range) HasMin() bool { return !math.IsNaN(r.Min) }

// HasMax returns true if the upper bound is specified (not [Open]).
func (r Range) HasMax() bool { return !math.IsNaN(r.Max) }

// Info has the display properties of one validation metric.
type Info struct {

	// Name is the human-readable name of the metric,
	// e.g., "Pearson correlation coefficient".
	Name string

	// Range is the fixed display range, with [Open] bounds
	// filled in from data quantiles at plot time.
	Range Range

	// Description is a format string appended to Name in axis and
	// colorbar labels, with one %s verb taking the unit string of
	// the reference dataset. Empty for unitless metrics.
	Description string

	// ColorMap is the name of the colormap used for map plots
	// of this metric, from [cogentcore.org/core/colors/colormap].
	ColorMap string
}

// Registry maps metric identifiers to their display properties,
// and dataset identifiers to unit strings. It is passed explicitly
// to the range-selection and plotting functions: there is no
// process-global registry.
type Registry struct {

	// Metrics is keyed by the metric identifier used in variable
	// metadata and column naming, e.g., "R", "RMSD".
	Metrics map[string]Info

	// Units is keyed by dataset identifier, e.g., "ISMN", "C3S",
	// giving the unit string for soil moisture values in that dataset.
	Units map[string]string
}

// Default returns the standard registry of soil-moisture validation
// metrics and dataset units.
func Default() *Registry {
	return &Registry{
		Metrics: map[string]Info{
			"R": {
				Name:     "Pearson correlation coefficient",
				Range:    Range{-1, 1},
				ColorMap: "ColdHot",
			},
			"p_R": {
				Name:     "Pearson correlation p-value",
				Range:    Range{0, 1},
				ColorMap: "Viridis",
			},
			"rho": {
				Name:     "Spearman rank correlation coefficient",
				Range:    Range{-1, 1},
				ColorMap: "ColdHot",
			},
			"p_rho": {
				Name:     "Spearman rank correlation p-value",
				Range:    Range{0, 1},
				ColorMap: "Viridis",
			},
			"RMSD": {
				Name:        "Root-mean-square deviation",
				Range:       Range{0, Open},
				Description: " in %s",
				ColorMap:    "Viridis",
			},
			"ubRMSD": {
				Name:        "Unbiased root-mean-square deviation",
				Range:       Range{0, Open},
				Description: " in %s",
				ColorMap:    "Viridis",
			},
			"BIAS": {
				Name:        "Bias (difference of means)",
				Range:       Range{Open, Open},
				Description: " in %s",
				ColorMap:    "ColdHot",
			},
			"RSS": {
				Name:        "Residual sum of squares",
				Range:       Range{0, Open},
				Description: " in (%s)²",
				ColorMap:    "Viridis",
			},
			"mse": {
				Name:        "Mean square error",
				Range:       Range{0, Open},
				Description: " in (%s)²",
				ColorMap:    "Viridis",
			},
			"mse_corr": {
				Name:        "Correlation component of MSE",
				Range:       Range{0, Open},
				Description: " in (%s)²",
				ColorMap:    "Viridis",
			},
			"mse_bias": {
				Name:        "Bias component of MSE",
				Range:       Range{0, Open},
				Description: " in (%s)²",
				ColorMap:    "Viridis",
			},
			"mse_var": {
				Name:        "Variance component of MSE",
				Range:       Range{0, Open},
				Description: " in (%s)²",
				ColorMap:    "Viridis",
			},
			"n_obs": {
				Name:     "Number of observations",
				Range:    Range{Open, Open},
				ColorMap: "Viridis",
			},
		},
		Units: map[string]string{
			"ISMN":                "m³/m³",
			"GLDAS":               "m³/m³",
			"ERA5":                "m³/m³",
			"ERA5_LAND":           "m³/m³",
			"C3S":                 "m³/m³",
			"ESA_CCI_SM_combined": "m³/m³",
			"ESA_CCI_SM_active":   "% saturation",
			"ESA_CCI_SM_passive":  "m³/m³",
			"SMAP":                "m³/m³",
			"SMOS":                "m³/m³",
			"ASCAT":               "% saturation",
		},
	}
}

// Lookup returns the display range for the given metric identifier,
// and whether the metric is known.
func (rg *Registry) Lookup(metric string) (Range, bool) {
	mi, ok := rg.Metrics[metric]
	return mi.Range, ok
}

// Known returns the sorted list of known metric identifiers.
func (rg *Registry) Known() []string {
	ks := make([]string, 0, len(rg.Metrics))
	for k := range rg.Metrics {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}

// ColorMap returns the colormap name for the given metric,
// or "Viridis" if the metric is unknown.
func (rg *Registry) ColorMap(metric string) string {
	if mi, ok := rg.Metrics[metric]; ok && mi.ColorMap != "" {
		return mi.ColorMap
	}
	return "Viridis"
}

// Label returns the axis / colorbar label for the given metric,
// composed of the metric name and its description formatted with
// the unit string of the given reference dataset.
// Returns an error if the metric or the reference dataset is unknown.
func (rg *Registry) Label(metric, ref string) (string, error) {
	mi, ok := rg.Metrics[metric]
	if !ok {
		return "", fmt.Errorf("metrics: metric %q is not known", metric)
	}
	if mi.Description == "" {
		return mi.Name, nil
	}
	un, ok := rg.Units[ref]
	if !ok {
		return "", fmt.Errorf("metrics: reference dataset %q is not known", ref)
	}
	return mi.Name + fmt.Sprintf(mi.Description, un), nil
}
