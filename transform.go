/*
Copyright © 2023 the abminit authors.
This file is part of abminit.

abminit is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

abminit is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with abminit.  If not, see <http://www.gnu.org/licenses/>.
*/

package abminit

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Transform maps raw sample coordinates onto an integer simulation grid
// with margins. Each axis is independent of the others.
type Transform struct {
	// Steps is the sampling resolution detected along x, y, and z.
	Steps [3]float64
	// Offsets translates each axis so that the minimum transformed
	// coordinate equals margin + 1.
	Offsets [3]int
	// Bounds is the minimum bounding box (length, width, height) that
	// fits the transformed samples plus margins plus a one-voxel border
	// on each side.
	Bounds [3]int
}

// CalculateTransform computes the grid transform for the given samples and
// margins. If reference is non-nil and non-empty, step sizes and coordinate
// extents come from the reference table instead of the samples. An axis
// where all coordinates are equal falls back to a step of resolution
// (or 1 if resolution is not positive), so the step is never zero.
func CalculateTransform(samples *SampleTable, margins [3]int, reference *SampleTable, resolution float64) Transform {
	if resolution <= 0 {
		resolution = 1
	}
	src := samples
	if reference != nil && len(reference.Rows) > 0 {
		src = reference
	}
	var t Transform
	for axis := 0; axis < 3; axis++ {
		values := axisValues(src, axis)
		if len(values) == 0 {
			t.Steps[axis] = resolution
			t.Offsets[axis] = margins[axis] + 1
			t.Bounds[axis] = 2*margins[axis] + 3
			continue
		}
		step := stepSize(values)
		if step <= 0 {
			step = resolution
		}
		min, max := floats.Min(values), floats.Max(values)
		t.Steps[axis] = step
		t.Offsets[axis] = margins[axis] + 1 - int(min/step)
		t.Bounds[axis] = int((max-min)/step) + 2*margins[axis] + 3
	}
	return t
}

// Apply rescales and re-centers every sample onto the integer grid.
// The input table is not modified.
func (t Transform) Apply(samples *SampleTable) *VoxelTable {
	out := &VoxelTable{Rows: make([]Voxel, len(samples.Rows))}
	for i, s := range samples.Rows {
		out.Rows[i] = Voxel{
			ID: s.ID,
			X:  int(s.X/t.Steps[0]) + t.Offsets[0],
			Y:  int(s.Y/t.Steps[1]) + t.Offsets[1],
			Z:  int(s.Z/t.Steps[2]) + t.Offsets[2],
		}
	}
	return out
}

func axisValues(t *SampleTable, axis int) []float64 {
	values := make([]float64, len(t.Rows))
	for i, s := range t.Rows {
		switch axis {
		case 0:
			values[i] = s.X
		case 1:
			values[i] = s.Y
		default:
			values[i] = s.Z
		}
	}
	return values
}

// stepSize returns the smallest positive difference between distinct
// values, interpreted as the sampling resolution along one axis. It
// returns 0 when all values are equal.
func stepSize(values []float64) float64 {
	distinct := append([]float64(nil), values...)
	sort.Float64s(distinct)
	step := 0.
	for i := 1; i < len(distinct); i++ {
		d := distinct[i] - distinct[i-1]
		if d > 0 && (step == 0 || d < step) {
			step = d
		}
	}
	return step
}
