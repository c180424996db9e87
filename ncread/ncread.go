// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ncread loads validation results from NetCDF files into a
// [table.Table] with "lat" / "lon" coordinate columns and one float64
// column per metric variable. It supports both trajectory layouts
// (lat, lon, and values all along one location dimension) and gridded
// layouts (values on a lat x lon grid, flattened row-major).
package ncread

import (
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// LatName and LonName are the coordinate variable names expected in
// the input files and used for the coordinate columns of the output.
const (
	LatName = "lat"
	LonName = "lon"
)

// Load reads the given metric variables from a NetCDF file into a
// table with "lat", "lon", and one column per variable. If no variable
// names are given, all variables other than the coordinates are loaded.
func Load(path string, vars ...string) (*table.Table, error) {
	nc, err := netcdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer nc.Close()

	lat, err := floatVar(nc, LatName)
	if err != nil {
		return nil, err
	}
	lon, err := floatVar(nc, LonName)
	if err != nil {
		return nil, err
	}
	if len(vars) == 0 {
		for _, v := range nc.ListVariables() {
			if v == LatName || v == LonName {
				continue
			}
			vars = append(vars, v)
		}
		slices.Sort(vars)
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("ncread: %s: no metric variables", path)
	}

	lats, lons, err := locations(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("ncread: %s: %w", path, err)
	}
	n := len(lats)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dt := table.NewTable(name)
	lac := dt.AddFloat64Column(LatName)
	loc := dt.AddFloat64Column(LonName)
	vcs := make([]*tensor.Float64, len(vars))
	for i, v := range vars {
		vcs[i] = dt.AddFloat64Column(v)
	}
	dt.SetNumRows(n)
	for i := range n {
		lac.SetFloat1D(lats[i], i)
		loc.SetFloat1D(lons[i], i)
	}
	for i, v := range vars {
		vals, err := floatVar(nc, v)
		if err != nil {
			return nil, err
		}
		if len(vals) != n {
			return nil, fmt.Errorf("ncread: %s: variable %q has %d values for %d locations", path, v, len(vals), n)
		}
		for j, val := range vals {
			vcs[i].SetFloat1D(val, j)
		}
	}
	return dt, nil
}

// locations expands the coordinate vectors into per-row coordinates:
// equal-length lat/lon are a trajectory and are used as-is; otherwise
// they are grid axes and the full lat x lon product is produced in
// row-major order, matching the flattened layout of gridded variables.
func locations(lat, lon []float64) (lats, lons []float64, err error) {
	if len(lat) == 0 || len(lon) == 0 {
		return nil, nil, fmt.Errorf("empty coordinate variable")
	}
	if len(lat) == len(lon) {
		return lat, lon, nil
	}
	n := len(lat) * len(lon)
	lats = make([]float64, 0, n)
	lons = make([]float64, 0, n)
	for _, la := range lat {
		for _, lo := range lon {
			lats = append(lats, la)
			lons = append(lons, lo)
		}
	}
	return lats, lons, nil
}

// floatVar reads the named variable as a flat []float64 with the
// fill value (if any) replaced by NaN.
func floatVar(nc api.Group, name string) ([]float64, error) {
	vg, err := nc.GetVarGetter(name)
	if err != nil {
		return nil, err
	}
	v, err := vg.Values()
	if err != nil {
		return nil, err
	}
	vals, err := Floats(v)
	if err != nil {
		return nil, fmt.Errorf("ncread: variable %q: %w", name, err)
	}
	if fv, ok := fillValue(vg); ok {
		for i, val := range vals {
			if val == fv {
				vals[i] = math.NaN()
			}
		}
	}
	return vals, nil
}

func fillValue(vg api.VarGetter) (float64, bool) {
	at, has := vg.Attributes().Get("_FillValue")
	if !has {
		return 0, false
	}
	fv, err := Floats(at)
	if err != nil || len(fv) != 1 {
		return 0, false
	}
	return fv[0], true
}

// Floats converts the value types returned by the NetCDF reader
// (scalars, vectors, and nested 2D grids of the numeric types)
// into a flat []float64.
func Floats(v any) ([]float64, error) {
	switch x := v.(type) {
	case []float64:
		return x, nil
	case float64:
		return []float64{x}, nil
	case float32:
		return []float64{float64(x)}, nil
	case int64:
		return []float64{float64(x)}, nil
	case int32:
		return []float64{float64(x)}, nil
	case int16:
		return []float64{float64(x)}, nil
	case int8:
		return []float64{float64(x)}, nil
	case []float32:
		return convert(x), nil
	case []int64:
		return convert(x), nil
	case []int32:
		return convert(x), nil
	case []int16:
		return convert(x), nil
	case []int8:
		return convert(x), nil
	case [][]float64:
		return flatten(x)
	case [][]float32:
		return flatten(x)
	case [][]int32:
		return flatten(x)
	case [][]int16:
		return flatten(x)
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}

func convert[T int8 | int16 | int32 | int64 | float32](vals []T) []float64 {
	fs := make([]float64, len(vals))
	for i, v := range vals {
		fs[i] = float64(v)
	}
	return fs
}

func flatten[T int16 | int32 | float32 | float64](rows [][]T) ([]float64, error) {
	var fs []float64
	for i, row := range rows {
		if i > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("ragged 2D variable")
		}
		for _, v := range row {
			fs = append(fs, float64(v))
		}
	}
	return fs, nil
}
