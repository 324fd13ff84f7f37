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
	"encoding/xml"
	"fmt"
)

// setup mirrors the ARCADE setup XML structure: a root set element with
// one series carrying the grid dimensions and timing constants, the
// enabled Hamiltonian terms, and a single population block.
type setup struct {
	XMLName xml.Name    `xml:"set"`
	Series  setupSeries `xml:"series"`
}

type setupSeries struct {
	Name     string      `xml:"name,attr"`
	Interval int         `xml:"interval,attr"`
	Start    int         `xml:"start,attr"`
	End      int         `xml:"end,attr"`
	Dt       int         `xml:"dt,attr"`
	Ticks    int         `xml:"ticks,attr"`
	Ds       int         `xml:"ds,attr"`
	Height   int         `xml:"height,attr"`
	Length   int         `xml:"length,attr"`
	Width    int         `xml:"width,attr"`
	Potts    setupPotts  `xml:"potts"`
	Agents   setupAgents `xml:"agents"`
}

type setupPotts struct {
	Terms []setupTerm `xml:"potts.term"`
}

type setupTerm struct {
	ID string `xml:"id,attr"`
}

type setupAgents struct {
	Populations setupPopulations `xml:"populations"`
}

type setupPopulations struct {
	Population setupPopulation `xml:"population"`
}

type setupPopulation struct {
	ID      string        `xml:"id,attr"`
	Init    int           `xml:"init,attr"`
	Regions []setupRegion `xml:"population.region,omitempty"`
}

type setupRegion struct {
	ID string `xml:"id,attr"`
	// Fraction is a placeholder for manual editing, not a computed value.
	Fraction string `xml:"fraction,attr"`
}

// MakeSetup emits the simulation setup descriptor for a fully transformed
// and filtered sample table: the bounding box from the coordinate
// transform, fixed timing constants, the enabled terms, and one
// population block whose init count is the number of distinct cell ids.
// If the table carries regions, one sub-element is added per distinct
// region in first-encountered order.
func (c *Converter) MakeSetup(t *VoxelTable, bounds [3]int) ([]byte, error) {
	s := setup{
		Series: setupSeries{
			Name:     "ARCADE",
			Interval: 1,
			Start:    0,
			End:      0,
			Dt:       1,
			Ticks:    24,
			Ds:       1,
			Height:   bounds[2],
			Length:   bounds[0],
			Width:    bounds[1],
		},
	}
	for _, term := range c.Params.PottsTerms {
		s.Series.Potts.Terms = append(s.Series.Potts.Terms, setupTerm{ID: term})
	}
	population := setupPopulation{ID: "X", Init: len(t.GroupByCell())}
	if t.HasRegions {
		for _, region := range t.regionNames() {
			population.Regions = append(population.Regions, setupRegion{ID: region, Fraction: "0.5"})
		}
	}
	s.Series.Agents.Populations.Population = population

	b, err := xml.MarshalIndent(s, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("abminit.MakeSetup: %v", err)
	}
	return b, nil
}
