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

func TestConvertToLocation(t *testing.T) {
	rows := []Voxel{
		{ID: 9, X: 2, Y: 5, Z: 7},
		{ID: 9, X: 3, Y: 6, Z: 8},
		{ID: 9, X: 4, Y: 7, Z: 9},
		{ID: 9, X: 3, Y: 6, Z: 10},
	}
	loc := ConvertToLocation(2, rows, false)
	if loc.ID != 2 {
		t.Errorf("id: got %d, want 2", loc.ID)
	}
	// means (3, 6, 8.5) truncate to (3, 6, 8)
	if want := [3]int{3, 6, 8}; loc.Center != want {
		t.Errorf("center: got %v, want %v", loc.Center, want)
	}
	if len(loc.Location) != 1 || loc.Location[0].Region != UndefinedRegion {
		t.Fatalf("expected a single %s bucket, got %v", UndefinedRegion, loc.Location)
	}
	wantVoxels := [][3]int{{2, 5, 7}, {3, 6, 8}, {4, 7, 9}, {3, 6, 10}}
	if !reflect.DeepEqual(loc.Location[0].Voxels, wantVoxels) {
		t.Errorf("voxels: got %v, want %v", loc.Location[0].Voxels, wantVoxels)
	}
}

func TestConvertToLocationRegions(t *testing.T) {
	rows := []Voxel{
		{ID: 9, X: 0, Y: 0, Z: 0, Region: "DEFAULT"},
		{ID: 9, X: 1, Y: 0, Z: 0, Region: "NUCLEUS"},
		{ID: 9, X: 2, Y: 0, Z: 0, Region: "DEFAULT"},
		{ID: 9, X: 3, Y: 0, Z: 0, Region: "NUCLEUS"},
	}
	loc := ConvertToLocation(1, rows, true)
	if len(loc.Location) != 2 {
		t.Fatalf("buckets: got %d, want 2", len(loc.Location))
	}
	if loc.Location[0].Region != "DEFAULT" || loc.Location[1].Region != "NUCLEUS" {
		t.Errorf("bucket order: got [%s %s], want [DEFAULT NUCLEUS]",
			loc.Location[0].Region, loc.Location[1].Region)
	}
	if want := [][3]int{{1, 0, 0}, {3, 0, 0}}; !reflect.DeepEqual(loc.Location[1].Voxels, want) {
		t.Errorf("nucleus voxels: got %v, want %v", loc.Location[1].Voxels, want)
	}
	// center is computed over all voxels regardless of region
	if want := [3]int{1, 0, 0}; loc.Center != want {
		t.Errorf("center: got %v, want %v", loc.Center, want)
	}
}
