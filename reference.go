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
	"io"
	"strings"

	"github.com/spf13/cast"
)

// A Reference holds population-calibrated values for one cell, keyed by
// field name: volume, height, and per-region variants such as
// volume.NUCLEUS. An empty Reference means no values are supplied and
// all criticals derive from the samples.
type Reference map[string]float64

// A ReferenceTable holds references for all cells, keyed by condition
// key and cell id.
type ReferenceTable struct {
	cells map[string]map[int]Reference
}

// ReadReference reads a reference table from CSV data. The id column
// identifies the cell and the key column, if present, names the
// condition. Every other column with a numeric value becomes a reference
// field, keeping the column name as-is (for example volume.NUCLEUS).
func ReadReference(r io.Reader) (*ReferenceTable, error) {
	header, records, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("abminit.ReadReference: %v", err)
	}
	keyCol, idCol := -1, -1
	fields := make(map[int]string)
	for i, name := range header {
		name = strings.TrimSpace(name)
		switch strings.ToLower(name) {
		case "key":
			keyCol = i
		case "id":
			idCol = i
		default:
			fields[i] = name
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("abminit.ReadReference: missing column id")
	}
	t := &ReferenceTable{cells: make(map[string]map[int]Reference)}
	for i, rec := range records {
		id, err := cast.ToIntE(rec[idCol])
		if err != nil {
			return nil, fmt.Errorf("abminit.ReadReference: row %d: %v", i+1, err)
		}
		key := ""
		if keyCol >= 0 {
			key = rec[keyCol]
		}
		ref := make(Reference)
		for col, name := range fields {
			// Blank or non-numeric entries mean the value is not
			// supplied for this cell.
			if v, err := cast.ToFloat64E(rec[col]); err == nil {
				ref[name] = v
			}
		}
		if t.cells[key] == nil {
			t.cells[key] = make(map[int]Reference)
		}
		t.cells[key][id] = ref
	}
	return t, nil
}

// Cell returns the reference for the given condition key and cell id, or
// an empty Reference when none exists. A nil table is valid and holds no
// references.
func (t *ReferenceTable) Cell(key string, id int) Reference {
	if t == nil {
		return Reference{}
	}
	if cells, ok := t.cells[key]; ok {
		if ref, ok := cells[id]; ok {
			return ref
		}
	}
	return Reference{}
}

// ScaleResolution converts reference values from physical units to grid
// units: volume fields divide by resolution cubed and height fields by
// resolution.
func (t *ReferenceTable) ScaleResolution(resolution float64) {
	if t == nil || resolution <= 0 || resolution == 1 {
		return
	}
	cubed := resolution * resolution * resolution
	for _, cells := range t.cells {
		for _, ref := range cells {
			for field, v := range ref {
				switch {
				case strings.Contains(field, "volume"):
					ref[field] = v / cubed
				case strings.Contains(field, "height"):
					ref[field] = v / resolution
				}
			}
		}
	}
}
