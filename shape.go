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
	"fmt"
	"math"

	"github.com/ctessum/sparse"
)

// A CoefficientCalculator fits an ordered shape-coefficient vector (for
// example spherical harmonics) to a 3D binary occupancy volume up to the
// given maximum degree. Implementations wrap an external
// shape-parameterization library; the fit itself is outside this package.
type CoefficientCalculator interface {
	Coefficients(volume *sparse.DenseArray, lmax int) ([]float64, error)
}

// LocationVoxels flattens the voxels of a location record. If region is
// non-empty, only that region's bucket is included.
func LocationVoxels(loc Location, region string) [][3]int {
	var voxels [][3]int
	for _, l := range loc.Location {
		if region != "" && l.Region != region {
			continue
		}
		voxels = append(voxels, l.Voxels...)
	}
	return voxels
}

// MakeVoxelsArray converts a voxel list into a binary occupancy volume
// centered on the rounded voxel centroid, with a one-voxel border on
// every side. The array is indexed (z, y, x). A scale greater than one
// repeats each voxel into a scale-cubed block.
func MakeVoxelsArray(voxels [][3]int, scale int) *sparse.DenseArray {
	if scale < 1 {
		scale = 1
	}

	var cx, cy, cz float64
	for _, v := range voxels {
		cx += float64(v[0])
		cy += float64(v[1])
		cz += float64(v[2])
	}
	n := float64(len(voxels))
	center := [3]int{
		int(math.Round(cx / n)),
		int(math.Round(cy / n)),
		int(math.Round(cz / n)),
	}

	// Centered coordinates in (z, y, x) order.
	centered := make([][3]int, len(voxels))
	for i, v := range voxels {
		centered[i] = [3]int{v[2] - center[2], v[1] - center[1], v[0] - center[0]}
	}
	var mins, maxs [3]int
	for i, v := range centered {
		for axis := 0; axis < 3; axis++ {
			if i == 0 || v[axis] < mins[axis] {
				mins[axis] = v[axis]
			}
			if i == 0 || v[axis] > maxs[axis] {
				maxs[axis] = v[axis]
			}
		}
	}

	height := maxs[0] - mins[0] + 3
	width := maxs[1] - mins[1] + 3
	length := maxs[2] - mins[2] + 3
	array := sparse.ZerosDense(height*scale, width*scale, length*scale)
	for _, v := range centered {
		z := v[0] - mins[0] + 1
		y := v[1] - mins[1] + 1
		x := v[2] - mins[2] + 1
		for dz := 0; dz < scale; dz++ {
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					array.Set(1, z*scale+dz, y*scale+dy, x*scale+dx)
				}
			}
		}
	}
	return array
}

// CellCoefficients computes the shape-coefficient vector for one location
// record using the given calculator, optionally restricted to one region.
func CellCoefficients(calc CoefficientCalculator, loc Location, region string, lmax, scale int) ([]float64, error) {
	voxels := LocationVoxels(loc, region)
	if len(voxels) == 0 {
		return nil, fmt.Errorf("abminit.CellCoefficients: location %d has no voxels for region %q", loc.ID, region)
	}
	coeffs, err := calc.Coefficients(MakeVoxelsArray(voxels, scale), lmax)
	if err != nil {
		return nil, fmt.Errorf("abminit.CellCoefficients: location %d: %v", loc.ID, err)
	}
	return coeffs, nil
}
