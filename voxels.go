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

// DefaultRegion tags voxels that belong to no explicit sub-cellular
// region after a region merge.
const DefaultRegion = "DEFAULT"

// UndefinedRegion labels the single location bucket emitted for tables
// that carry no region information at all.
const UndefinedRegion = "UNDEFINED"

// A Voxel is one transformed sample on the integer simulation grid.
type Voxel struct {
	ID      int
	X, Y, Z int
	Region  string
}

// A VoxelTable is an ordered collection of transformed samples.
// HasRegions reports whether the table carries a region column.
type VoxelTable struct {
	Rows       []Voxel
	HasRegions bool
}

// RegionVoxels pairs a region name with its transformed sample table.
type RegionVoxels struct {
	Region string
	Table  *VoxelTable
}

// A CellGroup holds all voxels belonging to one cell id, in table order.
type CellGroup struct {
	ID   int
	Rows []Voxel
}

// GroupByCell groups rows by cell id, ordering groups by the first
// appearance of each id in the table. Output cell renumbering follows
// this order, so it defines output cell identity.
func (t *VoxelTable) GroupByCell() []CellGroup {
	index := make(map[int]int)
	var groups []CellGroup
	for _, row := range t.Rows {
		i, ok := index[row.ID]
		if !ok {
			i = len(groups)
			index[row.ID] = i
			groups = append(groups, CellGroup{ID: row.ID})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// A RegionGroup holds the voxels of one cell belonging to one region.
type RegionGroup struct {
	Region string
	Rows   []Voxel
}

// groupByRegion groups rows by region tag in first-encountered order.
func groupByRegion(rows []Voxel) []RegionGroup {
	index := make(map[string]int)
	var groups []RegionGroup
	for _, row := range rows {
		i, ok := index[row.Region]
		if !ok {
			i = len(groups)
			index[row.Region] = i
			groups = append(groups, RegionGroup{Region: row.Region})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// regionNames returns the distinct region tags in the table, in
// first-encountered order.
func (t *VoxelTable) regionNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range t.Rows {
		if !seen[row.Region] {
			seen[row.Region] = true
			names = append(names, row.Region)
		}
	}
	return names
}

// MergeRegionSamples merges region-tagged voxel tables into the
// whole-cell table. Rows are matched on (id, x, y, z); whole-cell rows
// with no matching region sample are tagged DefaultRegion, and region
// rows with no matching whole-cell row are dropped. When a voxel appears
// in more than one region table the first region in order wins. With no
// region tables the input passes through without a region column.
func MergeRegionSamples(samples *VoxelTable, regions []RegionVoxels) *VoxelTable {
	if len(regions) == 0 {
		return samples
	}
	type coord struct{ id, x, y, z int }
	tags := make(map[coord]string)
	for _, r := range regions {
		for _, row := range r.Table.Rows {
			k := coord{row.ID, row.X, row.Y, row.Z}
			if _, ok := tags[k]; !ok {
				tags[k] = r.Region
			}
		}
	}
	out := &VoxelTable{Rows: make([]Voxel, len(samples.Rows)), HasRegions: true}
	for i, row := range samples.Rows {
		if tag, ok := tags[coord{row.ID, row.X, row.Y, row.Z}]; ok {
			row.Region = tag
		} else {
			row.Region = DefaultRegion
		}
		out.Rows[i] = row
	}
	return out
}
