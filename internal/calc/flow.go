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

// Volumetric heat capacity of water, Wh/(L·K).
const waterHeatCapacity = 1.163

// FlowRate returns the water flow in L/h needed to deliver heatingPower W at
// the given supply/return spread. A spread <= 0 gives 0.
func FlowRate(heatingPower, supplyTemp, returnTemp float64) float64 {
	spread := supplyTemp - returnTemp
	if spread <= 0 {
		return 0
	}
	return heatingPower / (waterHeatCapacity * spread)
}
