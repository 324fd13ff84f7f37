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

// Command abminit converts processed cell shape samples into the ARCADE
// simulation initialization formats.
package main

import (
	"fmt"
	"os"

	"github.com/cellmodel/abminit/abminitutil"
)

func main() {
	if err := abminitutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
