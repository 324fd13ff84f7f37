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
	"reflect"
	"testing"
)

func testCellConverter() *Converter {
	return &Converter{Params: &Params{
		Volumes: StatMap{
			DefaultRegion: {Mean: 10, Std: 2},
			"NUCLEUS":     {Mean: 4, Std: 1},
		},
		CriticalVolumes: StatMap{
			DefaultRegion: {Mean: 1000, Std: 100},
			"NUCLEUS":     {Mean: 400, Std: 50},
		},
		Heights: StatMap{
			DefaultRegion: {Mean: 4, Std: 2},
			"NUCLEUS":     {Mean: 2, Std: 1},
		},
		CriticalHeights: StatMap{
			DefaultRegion: {Mean: 9, Std: 2},
			"NUCLEUS":     {Mean: 6.5, Std: 1.5},
		},
		Thresholds: DefaultThresholds(),
		Resolution: 1,
	}}
}

func TestConvertToCell(t *testing.T) {
	c := testCellConverter()
	rows := []Voxel{
		{ID: 42, X: 0, Y: 0, Z: 1},
		{ID: 42, X: 1, Y: 0, Z: 2},
		{ID: 42, X: 0, Y: 1, Z: 3},
		{ID: 42, X: 1, Y: 1, Z: 4},
		{ID: 42, X: 0, Y: 2, Z: 5},
		{ID: 42, X: 1, Y: 2, Z: 6},
		{ID: 42, X: 0, Y: 3, Z: 7},
		{ID: 42, X: 1, Y: 3, Z: 7},
	}
	cell, err := c.ConvertToCell(3, rows, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	// critical volume: ((8-10)/2)*100 + 1000 = 900
	// critical height: ((6-4)/2)*2 + 9 = 11
	want := Cell{
		ID:        3,
		Parent:    0,
		Pop:       1,
		Age:       0,
		Divisions: 0,
		State:     "APOPTOTIC",
		Phase:     "APOPTOTIC_LATE",
		Voxels:    8,
		Criticals: [2]float64{900, 11},
	}
	if !reflect.DeepEqual(cell, want) {
		t.Errorf("cell: got %+v, want %+v", cell, want)
	}
}

func TestConvertToCellWithReference(t *testing.T) {
	c := testCellConverter()
	rows := []Voxel{
		{ID: 42, X: 0, Y: 0, Z: 1},
		{ID: 42, X: 1, Y: 0, Z: 2},
	}
	ref := Reference{"volume": 1250, "height": 8.5}
	cell, err := c.ConvertToCell(1, rows, false, ref)
	if err != nil {
		t.Fatal(err)
	}
	// reference values substitute the estimated criticals directly
	if want := [2]float64{1250, 8.5}; cell.Criticals != want {
		t.Errorf("criticals: got %v, want %v", cell.Criticals, want)
	}
	// state classification still uses the reference critical volume
	if cell.Phase != "APOPTOTIC_LATE" {
		t.Errorf("phase: got %s, want APOPTOTIC_LATE", cell.Phase)
	}
}

func TestConvertToCellRegions(t *testing.T) {
	c := testCellConverter()
	rows := []Voxel{
		{ID: 7, X: 0, Y: 0, Z: 1, Region: "DEFAULT"},
		{ID: 7, X: 1, Y: 0, Z: 2, Region: "NUCLEUS"},
		{ID: 7, X: 0, Y: 1, Z: 3, Region: "DEFAULT"},
		{ID: 7, X: 1, Y: 1, Z: 3, Region: "NUCLEUS"},
	}
	cell, err := c.ConvertToCell(1, rows, true, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cell.Regions) != 2 {
		t.Fatalf("regions: got %d, want 2", len(cell.Regions))
	}
	if cell.Regions[0].Region != "DEFAULT" || cell.Regions[1].Region != "NUCLEUS" {
		t.Errorf("region order: got [%s %s], want [DEFAULT NUCLEUS]",
			cell.Regions[0].Region, cell.Regions[1].Region)
	}
	// whole-cell record counts all voxels, sub-records their own
	if cell.Voxels != 4 || cell.Regions[0].Voxels != 2 || cell.Regions[1].Voxels != 2 {
		t.Errorf("voxel counts: got %d/%d/%d, want 4/2/2",
			cell.Voxels, cell.Regions[0].Voxels, cell.Regions[1].Voxels)
	}
	// NUCLEUS critical volume: ((2-4)/1)*50 + 400 = 300
	if got := cell.Regions[1].Criticals[0]; got != 300 {
		t.Errorf("nucleus critical volume: got %v, want 300", got)
	}
	// NUCLEUS critical height: ((1-2)/1)*1.5 + 6.5 = 5
	if got := cell.Regions[1].Criticals[1]; got != 5 {
		t.Errorf("nucleus critical height: got %v, want 5", got)
	}
}

func TestConvertToCellRegionReference(t *testing.T) {
	c := testCellConverter()
	rows := []Voxel{
		{ID: 7, X: 0, Y: 0, Z: 1, Region: "DEFAULT"},
		{ID: 7, X: 1, Y: 0, Z: 2, Region: "NUCLEUS"},
	}
	ref := Reference{"volume.NUCLEUS": 450}
	cell, err := c.ConvertToCell(1, rows, true, ref)
	if err != nil {
		t.Fatal(err)
	}
	if got := cell.Regions[1].Criticals[0]; got != 450 {
		t.Errorf("nucleus critical volume: got %v, want 450", got)
	}
	// height has no reference entry so it falls back to the estimator:
	// ((0-2)/1)*1.5 + 6.5 = 3.5
	if got := cell.Regions[1].Criticals[1]; got != 3.5 {
		t.Errorf("nucleus critical height: got %v, want 3.5", got)
	}
}
