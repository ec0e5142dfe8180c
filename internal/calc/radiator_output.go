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

package calc

import "math"

const (
	// DefaultExponent is the radiator characteristic of panel radiators.
	DefaultExponent = 1.3
	ratingDeltaT    = 50.0
)

// ActualOutput de-rates a ΔT50 rating to the given supply, return and room
// temperatures using DefaultExponent.
func ActualOutput(ratedOutput, supplyTemp, returnTemp, roomTemp float64) float64 {
	return ActualOutputWithExponent(ratedOutput, supplyTemp, returnTemp, roomTemp, DefaultExponent)
}

// ActualOutputWithExponent returns rated·(ΔT/50)^n in whole watts, where ΔT is
// the mean water temperature minus the room temperature. ΔT <= 0 gives 0.
func ActualOutputWithExponent(ratedOutput, supplyTemp, returnTemp, roomTemp, exponent float64) float64 {
	deltaT := (supplyTemp+returnTemp)/2 - roomTemp
	if deltaT <= 0 {
		return 0
	}
	return roundHalfUp(ratedOutput * math.Pow(deltaT/ratingDeltaT, exponent))
}
