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
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// readCSV reads an entire CSV table, returning the header row and the
// data records.
func readCSV(r io.Reader) ([]string, [][]string, error) {
	c := csv.NewReader(r)
	c.TrimLeadingSpace = true
	records, err := c.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("input table is empty")
	}
	return records[0], records[1:], nil
}

// WriteCells serializes cell attribute records in the ARCADE
// .CELLS.json format.
func WriteCells(w io.Writer, cells []Cell) error {
	if cells == nil {
		cells = []Cell{}
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(cells); err != nil {
		return fmt.Errorf("abminit.WriteCells: %v", err)
	}
	return nil
}

// WriteLocations serializes cell geometry records in the ARCADE
// .LOCATIONS.json format.
func WriteLocations(w io.Writer, locations []Location) error {
	if locations == nil {
		locations = []Location{}
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(locations); err != nil {
		return fmt.Errorf("abminit.WriteLocations: %v", err)
	}
	return nil
}
