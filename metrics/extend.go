// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

// Extend indicates whether a colorbar should be decorated with
// out-of-range arrows, because data exists beyond the displayed
// value range on the low side, high side, both, or neither.
type Extend int32 //enums:enum -transform lower

const (
	// Neither: the range covers all of the data.
	Neither Extend = iota

	// Min: data exists below the lower bound of the range.
	Min

	// Max: data exists above the upper bound of the range.
	Max

	// Both: data exists beyond the range on both sides.
	Both
)

// FromRange returns the [Extend] decoration implied by the registry
// range of a metric: an [Open] bound is filled in from data quantiles,
// which clip by construction, so each open bound extends on its side.
func FromRange(r Range) Extend {
	switch {
	case !r.HasMin() && !r.HasMax():
		return Both
	case !r.HasMin():
		return Min
	case !r.HasMax():
		return Max
	}
	return Neither
}
