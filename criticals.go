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

// A Stat holds the mean and standard deviation of one population
// measurement.
type Stat struct {
	Mean, Std float64
}

// A StatMap holds population statistics keyed by region name.
type StatMap map[string]Stat

// A MissingStatisticError reports a region with no entry in a population
// or critical statistic mapping. It indicates a configuration bug and is
// never recovered from.
type MissingStatisticError struct {
	Region   string
	Quantity string
}

func (e *MissingStatisticError) Error() string {
	return fmt.Sprintf("abminit: no %s statistics for region %s", e.Quantity, e.Region)
}

// CellCriticalVolume projects the voxel count of one cell (or one region
// group) onto the population-calibrated critical volume. The projection
// is a linear rescaling: the measurement's z-score within the observed
// population is transplanted onto the critical distribution, assuming the
// ratio of critical to population spread is stable across replicate
// experiments.
func CellCriticalVolume(rows []Voxel, region string, volumes, criticalVolumes StatMap) (float64, error) {
	pop, ok := volumes[region]
	if !ok {
		return 0, &MissingStatisticError{Region: region, Quantity: "volume"}
	}
	crit, ok := criticalVolumes[region]
	if !ok {
		return 0, &MissingStatisticError{Region: region, Quantity: "critical volume"}
	}
	raw := float64(len(rows))
	return (raw-pop.Mean)/pop.Std*crit.Std + crit.Mean, nil
}

// CellCriticalHeight does the same as CellCriticalVolume for height,
// measured as the z extent of the samples.
func CellCriticalHeight(rows []Voxel, region string, heights, criticalHeights StatMap) (float64, error) {
	pop, ok := heights[region]
	if !ok {
		return 0, &MissingStatisticError{Region: region, Quantity: "height"}
	}
	crit, ok := criticalHeights[region]
	if !ok {
		return 0, &MissingStatisticError{Region: region, Quantity: "critical height"}
	}
	raw := float64(zExtent(rows))
	return (raw-pop.Mean)/pop.Std*crit.Std + crit.Mean, nil
}

func zExtent(rows []Voxel) int {
	if len(rows) == 0 {
		return 0
	}
	min, max := rows[0].Z, rows[0].Z
	for _, row := range rows[1:] {
		if row.Z < min {
			min = row.Z
		}
		if row.Z > max {
			max = row.Z
		}
	}
	return max - min
}
