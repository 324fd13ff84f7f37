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

import "fmt"

// A Converter converts the processed sample tables for one condition into
// the ARCADE cell, location, and setup initialization formats. It holds
// no per-condition state; the same Converter can serve any number of
// conditions.
type Converter struct {
	Params *Params
}

// NewConverter returns a converter with the given parameters, or the
// shipped defaults when params is nil.
func NewConverter(params *Params) *Converter {
	if params == nil {
		params = DefaultParams()
	}
	return &Converter{Params: params}
}

// A Condition is one conversion unit: the sample tables and settings for
// a single condition key.
type Condition struct {
	// Key identifies the condition.
	Key string

	// Samples holds the whole-cell samples.
	Samples *SampleTable

	// Regions holds the raw region-tagged sample tables, in region order.
	Regions []RegionSamples

	// Margins is the margin size in the x, y, and z directions.
	Margins [3]int

	// TransformReference, when non-nil, fixes the grid step sizes and
	// coordinate extents instead of deriving them from the samples.
	TransformReference *SampleTable

	// Reference, when non-nil, supplies per-cell critical values.
	Reference *ReferenceTable
}

// A Result holds the converted artifacts for one condition. All record
// collections are fully built before Convert returns, so a caller never
// writes partial output.
type Result struct {
	Cells     []Cell
	Locations []Location
	Setup     []byte

	// Excluded lists the cell ids dropped for incomplete region
	// coverage, in first-seen order.
	Excluded []int

	// Bounds is the computed bounding box (length, width, height).
	Bounds [3]int
}

// Convert runs the conversion pipeline for one condition: coordinate
// transform, region merge, validity filtering, and record building.
// Output cell ids are renumbered to a dense 1..N sequence in first-seen
// order over the filtered table.
func (c *Converter) Convert(cond *Condition) (*Result, error) {
	transform := CalculateTransform(cond.Samples, cond.Margins, cond.TransformReference, c.Params.Resolution)
	voxels := transform.Apply(cond.Samples)

	regions := make([]RegionVoxels, len(cond.Regions))
	for i, r := range cond.Regions {
		regions[i] = RegionVoxels{Region: r.Region, Table: transform.Apply(r.Table)}
	}
	merged := MergeRegionSamples(voxels, regions)

	filtered, excluded := FilterValidSamples(merged)

	result := &Result{Excluded: excluded, Bounds: transform.Bounds}
	for i, group := range filtered.GroupByCell() {
		ref := cond.Reference.Cell(cond.Key, group.ID)
		cell, err := c.ConvertToCell(i+1, group.Rows, filtered.HasRegions, ref)
		if err != nil {
			return nil, fmt.Errorf("abminit: converting cell %d: %v", group.ID, err)
		}
		result.Cells = append(result.Cells, cell)
		result.Locations = append(result.Locations, ConvertToLocation(i+1, group.Rows, filtered.HasRegions))
	}

	setup, err := c.MakeSetup(filtered, transform.Bounds)
	if err != nil {
		return nil, err
	}
	result.Setup = setup
	return result, nil
}
