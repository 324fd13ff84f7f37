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

package abminitutil

import (
	"fmt"
	"path"
)

// SamplesKey returns the storage key for a condition's processed sample
// table, optionally for one region.
func SamplesKey(name, key, region string) string {
	file := fmt.Sprintf("%s_%s.PROCESSED.csv", name, key)
	if region != "" {
		file = fmt.Sprintf("%s_%s.PROCESSED.%s.csv", name, key, region)
	}
	return path.Join(name, "samples", "samples.PROCESSED", file)
}

// InitsKey returns the storage key for a converted initialization file
// with the given extension (xml, CELLS.json, or LOCATIONS.json). The
// margins become part of the file name so that conversions of the same
// condition with different margins do not collide.
func InitsKey(name, key string, margins [3]int, extension string) string {
	file := fmt.Sprintf("%s_%s_X%03d_Y%03d_Z%03d.%s",
		name, key, margins[0], margins[1], margins[2], extension)
	return path.Join(name, "inits", "inits.ARCADE", file)
}
