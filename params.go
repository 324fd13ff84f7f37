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

// Params configures the converter. Statistic maps must contain an entry
// for every region referenced by the input tables; a missing entry
// surfaces as a MissingStatisticError. Start from DefaultParams rather
// than the zero value.
type Params struct {
	// Volumes and Heights hold the observed population statistics per
	// region. CriticalVolumes and CriticalHeights hold the corresponding
	// critical statistics used by the simulation's cell cycle model.
	Volumes         StatMap
	Heights         StatMap
	CriticalVolumes StatMap
	CriticalHeights StatMap

	// Thresholds holds the ordered cell state threshold fractions.
	Thresholds []StateThreshold

	// PottsTerms lists the Hamiltonian terms enabled in the setup
	// descriptor.
	PottsTerms []string

	// Resolution is the sampling resolution in physical units per voxel.
	// It floors the grid step on degenerate axes and rescales the
	// statistic maps via ScaleResolution.
	Resolution float64
}

// DefaultParams returns the shipped population constants: whole-cell and
// nucleus statistics calibrated from reference imaging data.
func DefaultParams() *Params {
	return &Params{
		Volumes: StatMap{
			DefaultRegion: {Mean: 1865.0, Std: 517.0},
			"NUCLEUS":     {Mean: 543.0, Std: 157.0},
		},
		Heights: StatMap{
			DefaultRegion: {Mean: 9.75, Std: 2.4},
			"NUCLEUS":     {Mean: 6.86, Std: 1.7},
		},
		CriticalVolumes: StatMap{
			DefaultRegion: {Mean: 1300.0, Std: 200.0},
			"NUCLEUS":     {Mean: 400.0, Std: 50.0},
		},
		CriticalHeights: StatMap{
			DefaultRegion: {Mean: 9.0, Std: 2.0},
			"NUCLEUS":     {Mean: 6.5, Std: 1.5},
		},
		Thresholds: DefaultThresholds(),
		PottsTerms: []string{"volume", "adhesion"},
		Resolution: 1,
	}
}

// ScaleResolution converts the statistic maps from physical units to grid
// units: volume statistics divide by Resolution cubed and height
// statistics by Resolution.
func (p *Params) ScaleResolution() {
	res := p.Resolution
	if res <= 0 || res == 1 {
		return
	}
	cubed := res * res * res
	scale := func(m StatMap, f float64) {
		for region, s := range m {
			m[region] = Stat{Mean: s.Mean / f, Std: s.Std / f}
		}
	}
	scale(p.Volumes, cubed)
	scale(p.CriticalVolumes, cubed)
	scale(p.Heights, res)
	scale(p.CriticalHeights, res)
}
