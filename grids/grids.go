// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grids reconstructs dense regular grids from scattered
// (lat, lon, value) observations sampled on an implicit lattice.
// The observations may be in any order and may be missing arbitrary
// lattice points, as long as the gaps between the distinct coordinate
// values are whole multiples of the true lattice step on each axis.
package grids

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
)

// Tol is the default absolute tolerance for treating two floating point
// coordinates or step sizes as equal during lattice inference.
const Tol = 1e-8

// Extent is the cell-edge bounding box of a reconstructed grid:
// the cell-center coordinate range expanded by half a step on each side,
// so that a raster painted over the extent places cell centers exactly
// at the observed coordinates.
type Extent struct {

	// X is the longitude range of the cell edges.
	X minmax.F64

	// Y is the latitude range of the cell edges.
	Y minmax.F64
}

// Axis is one inferred lattice axis.
type Axis struct {

	// Min and Max are the lowest and highest coordinate values present.
	Min, Max float64

	// Step is the minimal lattice step size.
	Step float64

	// Len is the number of lattice cells along this axis.
	Len int
}

// Index returns the cell index of the given coordinate on this axis.
func (ax *Axis) Index(coord float64) int {
	return int(math.Round((coord - ax.Min) / ax.Step))
}

// FloatGCD returns the greatest common divisor of two positive
// floating point step sizes, using the Euclidean algorithm with
// absolute tolerance atol.
func FloatGCD(a, b, atol float64) float64 {
	for math.Abs(b) > atol {
		a, b = b, math.Mod(a, b)
	}
	return a
}

// InferAxis infers the lattice axis underlying the given coordinates,
// which may be unordered and contain duplicates. The step size is the
// GCD of the consecutive differences among the distinct values, so that
// gaps from missing lattice points do not distort it, as long as they
// are whole multiples of the true step. Returns an error if there are
// fewer than 2 distinct values (step size undefined), or if the
// reduced step collapses toward the tolerance scale, which happens
// when the coordinates are irregularly sampled or drift beyond [Tol]
// and would otherwise silently misplace points on a degenerate grid.
func InferAxis(coords []float64) (Axis, error) {
	var ax Axis
	uq := slices.Clone(coords)
	slices.Sort(uq)
	uq = slices.CompactFunc(uq, func(a, b float64) bool {
		return math.Abs(a-b) <= Tol
	})
	if len(uq) < 2 {
		return ax, fmt.Errorf("grids: axis must have at least 2 distinct coordinate values, got %d", len(uq))
	}
	step := uq[1] - uq[0]
	for i := 2; i < len(uq); i++ {
		d := uq[i] - uq[i-1]
		if math.Abs(d-step) <= Tol {
			continue
		}
		step = FloatGCD(d, step, Tol)
	}
	if step <= 100*Tol {
		return ax, fmt.Errorf("grids: inferred step %v is at the tolerance scale: coordinates are not on a regular lattice", step)
	}
	ax.Min = uq[0]
	ax.Max = uq[len(uq)-1]
	ax.Step = step
	ax.Len = int(math.Round((ax.Max-ax.Min)/step)) + 1
	return ax, nil
}

// Steps returns the inferred lattice steps (dy, dx) for the given
// coordinates, without building the grid.
func Steps(lats, lons []float64) (dy, dx float64, err error) {
	ya, err := InferAxis(lats)
	if err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	xa, err := InferAxis(lons)
	if err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	return ya.Step, xa.Step, nil
}

// FromPoints reconstructs the dense grid underlying the given
// (lat, lon, value) observations. The returned tensor has shape
// (lat, lon) with row 0 at the lowest latitude (lower-left origin),
// and NaN in cells with no observation. On duplicate coordinates,
// the last value wins. A pure function of its inputs: safe for
// concurrent use with per-call slices.
func FromPoints(lats, lons, vals []float64) (*tensor.Float64, Extent, error) {
	var ext Extent
	if len(lats) != len(lons) || len(lats) != len(vals) {
		return nil, ext, fmt.Errorf("grids: length mismatch: %d lats, %d lons, %d values", len(lats), len(lons), len(vals))
	}
	ya, err := InferAxis(lats)
	if err != nil {
		return nil, ext, fmt.Errorf("latitude: %w", err)
	}
	xa, err := InferAxis(lons)
	if err != nil {
		return nil, ext, fmt.Errorf("longitude: %w", err)
	}
	gd := tensor.NewFloat64(ya.Len, xa.Len)
	for i := range gd.Values {
		gd.Values[i] = math.NaN()
	}
	for i, v := range vals {
		gd.SetFloat(v, ya.Index(lats[i]), xa.Index(lons[i]))
	}
	ext.X.Set(xa.Min-xa.Step/2, xa.Max+xa.Step/2)
	ext.Y.Set(ya.Min-ya.Step/2, ya.Max+ya.Step/2)
	return gd, ext, nil
}

// FromTable reconstructs the dense grid for the given value column of
// a table with latitude and longitude columns of the given names.
// See [FromPoints] for the grid conventions.
func FromTable(dt *table.Table, valColumn, latColumn, lonColumn string) (*tensor.Float64, Extent, error) {
	var ext Extent
	la, err := dt.ColumnTry(latColumn)
	if err != nil {
		return nil, ext, err
	}
	lo, err := dt.ColumnTry(lonColumn)
	if err != nil {
		return nil, ext, err
	}
	vl, err := dt.ColumnTry(valColumn)
	if err != nil {
		return nil, ext, err
	}
	n := la.NumRows()
	lats := make([]float64, n)
	lons := make([]float64, n)
	vals := make([]float64, n)
	for i := range n {
		lats[i] = la.FloatRow(i)
		lons[i] = lo.FloatRow(i)
		vals[i] = vl.FloatRow(i)
	}
	return FromPoints(lats, lons, vals)
}
