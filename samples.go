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

// Package abminit converts discretized 3D cell shape samples into the
// initialization file formats consumed by ARCADE-style agent-based
// simulations: a cell attribute file, a cell location file, and a
// simulation setup descriptor.
package abminit

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
)

// A Sample is one voxel observation belonging to a cell, in raw
// (pre-grid) coordinates.
type Sample struct {
	ID      int
	X, Y, Z float64
}

// A SampleTable is an ordered collection of samples for one simulation
// condition.
type SampleTable struct {
	Rows []Sample
}

// RegionSamples pairs a sub-cellular region name with the raw sample
// table observed for that region.
type RegionSamples struct {
	Region string
	Table  *SampleTable
}

// ReadSamples reads a sample table from CSV data with columns
// id, x, y, and z (in any order; extra columns are ignored).
func ReadSamples(r io.Reader) (*SampleTable, error) {
	header, records, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("abminit.ReadSamples: %v", err)
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range []string{"id", "x", "y", "z"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("abminit.ReadSamples: missing column %s", name)
		}
	}
	t := &SampleTable{Rows: make([]Sample, 0, len(records))}
	for i, rec := range records {
		id, err := cast.ToIntE(rec[cols["id"]])
		if err != nil {
			return nil, fmt.Errorf("abminit.ReadSamples: row %d: %v", i+1, err)
		}
		var coords [3]float64
		for j, name := range []string{"x", "y", "z"} {
			coords[j], err = cast.ToFloat64E(rec[cols[name]])
			if err != nil {
				return nil, fmt.Errorf("abminit.ReadSamples: row %d: %v", i+1, err)
			}
		}
		t.Rows = append(t.Rows, Sample{ID: id, X: coords[0], Y: coords[1], Z: coords[2]})
	}
	return t, nil
}
