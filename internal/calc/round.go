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

// Package calc is the steady-state hydraulic balance calculation: room heat
// load, radiator output at operating temperatures, flow, pipe pressure loss,
// required Kv and valve preset selection, and the whole-building pass that
// ties them together. Everything here is a pure function of its inputs.
package calc

import "math"

// roundHalfUp rounds .5 towards +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func roundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return roundHalfUp(x*p) / p
}
