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

// FilterValidSamples drops every cell whose merged region coverage is
// incomplete, that is, cells with fewer than two distinct region tags.
// Such cells would produce malformed records downstream. Tables without
// region information pass through unchanged. The returned slice lists
// the excluded cell ids in first-seen order; exclusion is a filtering
// policy, not an error.
func FilterValidSamples(t *VoxelTable) (*VoxelTable, []int) {
	if !t.HasRegions {
		return t, nil
	}
	regions := make(map[int]map[string]bool)
	var order []int
	for _, row := range t.Rows {
		set, ok := regions[row.ID]
		if !ok {
			set = make(map[string]bool)
			regions[row.ID] = set
			order = append(order, row.ID)
		}
		set[row.Region] = true
	}
	valid := make(map[int]bool)
	var excluded []int
	for _, id := range order {
		if len(regions[id]) > 1 {
			valid[id] = true
		} else {
			excluded = append(excluded, id)
		}
	}
	out := &VoxelTable{HasRegions: true}
	for _, row := range t.Rows {
		if valid[row.ID] {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, excluded
}
