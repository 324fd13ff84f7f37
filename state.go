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

import "strings"

// A StateThreshold maps a cell state label to the fraction of critical
// volume at which the next state begins.
type StateThreshold struct {
	Name     string
	Fraction float64
}

// DefaultThresholds returns the shipped cell state threshold fractions,
// in increasing order.
func DefaultThresholds() []StateThreshold {
	return []StateThreshold{
		{Name: "APOPTOTIC_LATE", Fraction: 0.25},
		{Name: "APOPTOTIC_EARLY", Fraction: 0.90},
		{Name: "PROLIFERATIVE_G1", Fraction: 1.124},
		{Name: "PROLIFERATIVE_S", Fraction: 1.726},
		{Name: "PROLIFERATIVE_G2", Fraction: 1.969},
	}
}

// CellState classifies a cell into a discrete (state, phase) pair from
// its volume relative to its critical volume. Each threshold fraction is
// scaled by criticalVolume; the selected label is the first threshold
// whose scaled value strictly exceeds the volume, so a volume exactly at
// a breakpoint takes the higher label. Volumes at or above every
// threshold take the last label, and volumes below every threshold take
// the first. The phase is the full label and the state is the label text
// before the first underscore.
func CellState(volume, criticalVolume float64, thresholds []StateThreshold) (state, phase string) {
	index := len(thresholds) - 1
	for i, t := range thresholds {
		if t.Fraction*criticalVolume > volume {
			index = i
			break
		}
	}
	phase = thresholds[index].Name
	state = phase
	if i := strings.Index(phase, "_"); i >= 0 {
		state = phase[:i]
	}
	return state, phase
}
