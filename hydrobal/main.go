/*
 * Copyright (c) 2023. Anton Starikov -- All Rights Reserved
 *
 * This file is part of HYDROBAL project.
 *
 * HYDROBAL is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"os"

	"github.com/antst/hydrobal/internal"
	"github.com/antst/hydrobal/internal/logger"
)

// Build version, overridden with flag during build.
var version = "devel"

func main() {
	os.Exit(run())
}

// run returns the exit code after the deferred cleanup has happened.
func run() int {
	defer logger.Close()
	logger.L().Infof("Hydraulic balance calculator, version: %+v", version)

	c, err := internal.NewBalanceController()
	if err != nil {
		logger.L().Error(err)
		return 1
	}
	if err := c.Run(); err != nil {
		logger.L().Error(err)
		return 1
	}
	return 0
}
