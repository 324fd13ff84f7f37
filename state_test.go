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

import "testing"

func TestCellStateDefaultThresholds(t *testing.T) {
	const critical = 1000.0
	cases := []struct {
		volume    float64
		wantState string
		wantPhase string
	}{
		{0, "APOPTOTIC", "APOPTOTIC_LATE"},
		{249, "APOPTOTIC", "APOPTOTIC_LATE"},
		{250, "APOPTOTIC", "APOPTOTIC_EARLY"},
		{899, "APOPTOTIC", "APOPTOTIC_EARLY"},
		{900, "PROLIFERATIVE", "PROLIFERATIVE_G1"},
		{1123, "PROLIFERATIVE", "PROLIFERATIVE_G1"},
		{1124, "PROLIFERATIVE", "PROLIFERATIVE_S"},
		{1725, "PROLIFERATIVE", "PROLIFERATIVE_S"},
		{1726, "PROLIFERATIVE", "PROLIFERATIVE_G2"},
		{1968, "PROLIFERATIVE", "PROLIFERATIVE_G2"},
		{1969, "PROLIFERATIVE", "PROLIFERATIVE_G2"},
		{2000, "PROLIFERATIVE", "PROLIFERATIVE_G2"},
	}
	thresholds := DefaultThresholds()
	for _, c := range cases {
		state, phase := CellState(c.volume, critical, thresholds)
		if state != c.wantState || phase != c.wantPhase {
			t.Errorf("CellState(%v, %v): got (%s, %s), want (%s, %s)",
				c.volume, critical, state, phase, c.wantState, c.wantPhase)
		}
	}
}

func TestCellStateCustomThresholds(t *testing.T) {
	thresholds := []StateThreshold{
		{Name: "STATE_1", Fraction: 0.5},
		{Name: "STATE_2", Fraction: 1.3},
	}
	const critical = 1000.0
	cases := []struct {
		volume float64
		want   string
	}{
		{0, "STATE_1"},
		{499, "STATE_1"},
		{500, "STATE_2"},
		{1299, "STATE_2"},
		{1300, "STATE_2"},
		{2000, "STATE_2"},
	}
	for _, c := range cases {
		_, phase := CellState(c.volume, critical, thresholds)
		if phase != c.want {
			t.Errorf("CellState(%v, %v): got %s, want %s", c.volume, critical, phase, c.want)
		}
	}
}

// Phase assignment must be monotone in volume: a larger volume never maps
// to an earlier threshold.
func TestCellStateMonotone(t *testing.T) {
	thresholds := DefaultThresholds()
	index := func(phase string) int {
		for i, th := range thresholds {
			if th.Name == phase {
				return i
			}
		}
		t.Fatalf("unknown phase %s", phase)
		return -1
	}
	const critical = 517.0
	prev := -1
	for volume := 0.0; volume <= 1200; volume += 7 {
		_, phase := CellState(volume, critical, thresholds)
		if i := index(phase); i < prev {
			t.Errorf("phase index decreased at volume %v: %d < %d", volume, i, prev)
		} else {
			prev = i
		}
	}
}
