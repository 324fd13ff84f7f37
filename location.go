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
	"math"

	"gonum.org/v1/gonum/stat"
)

// A Location is one cell geometry record in the ARCADE .LOCATIONS format.
type Location struct {
	ID       int              `json:"id"`
	Center   [3]int           `json:"center"`
	Location []LocationRegion `json:"location"`
}

// A LocationRegion is one region bucket of voxel coordinates.
type LocationRegion struct {
	Region string   `json:"region"`
	Voxels [][3]int `json:"voxels"`
}

// ConvertToLocation assembles the geometry record for one renumbered
// cell: the integer centroid of all its voxels, and the voxel list
// partitioned by region (or a single UndefinedRegion bucket when the
// table carries no region column). Voxels keep their table order.
func ConvertToLocation(id int, rows []Voxel, hasRegions bool) Location {
	loc := Location{ID: id, Center: locationCenter(rows)}
	if !hasRegions {
		loc.Location = []LocationRegion{{Region: UndefinedRegion, Voxels: locationVoxels(rows)}}
		return loc
	}
	for _, g := range groupByRegion(rows) {
		loc.Location = append(loc.Location, LocationRegion{
			Region: g.Region,
			Voxels: locationVoxels(g.Rows),
		})
	}
	return loc
}

// locationCenter is the component-wise mean of the voxel coordinates,
// truncated to the nearest integer below (not rounded).
func locationCenter(rows []Voxel) [3]int {
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	zs := make([]float64, len(rows))
	for i, row := range rows {
		xs[i], ys[i], zs[i] = float64(row.X), float64(row.Y), float64(row.Z)
	}
	return [3]int{
		int(math.Floor(stat.Mean(xs, nil))),
		int(math.Floor(stat.Mean(ys, nil))),
		int(math.Floor(stat.Mean(zs, nil))),
	}
}

func locationVoxels(rows []Voxel) [][3]int {
	voxels := make([][3]int, len(rows))
	for i, row := range rows {
		voxels[i] = [3]int{row.X, row.Y, row.Z}
	}
	return voxels
}
