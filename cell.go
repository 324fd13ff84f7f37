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

// A Cell is one cell attribute record in the ARCADE .CELLS format.
type Cell struct {
	ID        int          `json:"id"`
	Parent    int          `json:"parent"`
	Pop       int          `json:"pop"`
	Age       int          `json:"age"`
	Divisions int          `json:"divisions"`
	State     string       `json:"state"`
	Phase     string       `json:"phase"`
	Voxels    int          `json:"voxels"`
	Criticals [2]float64   `json:"criticals"`
	Regions   []CellRegion `json:"regions,omitempty"`
}

// A CellRegion is the per-region sub-record of a Cell.
type CellRegion struct {
	Region    string     `json:"region"`
	Voxels    int        `json:"voxels"`
	Criticals [2]float64 `json:"criticals"`
}

// ConvertToCell assembles the attribute record for one renumbered cell.
// Critical values come from the per-cell reference when it supplies them
// and from z-score rescaling of the samples otherwise. When the table
// carries regions, one sub-record is emitted per region in
// first-encountered order.
func (c *Converter) ConvertToCell(id int, rows []Voxel, hasRegions bool, ref Reference) (Cell, error) {
	volume := len(rows)
	criticalVolume, criticalHeight, err := c.criticals(rows, DefaultRegion, ref)
	if err != nil {
		return Cell{}, err
	}
	state, phase := CellState(float64(volume), criticalVolume, c.Params.Thresholds)

	cell := Cell{
		ID:        id,
		Parent:    0,
		Pop:       1,
		Age:       0,
		Divisions: 0,
		State:     state,
		Phase:     phase,
		Voxels:    volume,
		Criticals: [2]float64{criticalVolume, criticalHeight},
	}

	if hasRegions {
		for _, g := range groupByRegion(rows) {
			cv, ch, err := c.criticals(g.Rows, g.Region, ref)
			if err != nil {
				return Cell{}, err
			}
			cell.Regions = append(cell.Regions, CellRegion{
				Region:    g.Region,
				Voxels:    len(g.Rows),
				Criticals: [2]float64{cv, ch},
			})
		}
	}
	return cell, nil
}

// criticals resolves the critical volume and height for one region group,
// preferring reference-supplied values over sample-derived ones.
func (c *Converter) criticals(rows []Voxel, region string, ref Reference) (float64, float64, error) {
	volumeKey, heightKey := "volume", "height"
	if region != DefaultRegion {
		volumeKey += "." + region
		heightKey += "." + region
	}

	criticalVolume, ok := ref[volumeKey]
	if !ok {
		var err error
		criticalVolume, err = CellCriticalVolume(rows, region, c.Params.Volumes, c.Params.CriticalVolumes)
		if err != nil {
			return 0, 0, err
		}
	}

	criticalHeight, ok := ref[heightKey]
	if !ok {
		var err error
		criticalHeight, err = CellCriticalHeight(rows, region, c.Params.Heights, c.Params.CriticalHeights)
		if err != nil {
			return 0, 0, err
		}
	}
	return criticalVolume, criticalHeight, nil
}
