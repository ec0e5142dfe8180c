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

// DefaultFittingsFactor is the flat surcharge for elbows, tees and valves.
const DefaultFittingsFactor = 1.3

// PressureLoss is specificLoss (Pa/m) × pipeLength (m) × DefaultFittingsFactor, in Pa.
func PressureLoss(specificLoss, pipeLength float64) float64 {
	return PressureLossWithFactor(specificLoss, pipeLength, DefaultFittingsFactor)
}

func PressureLossWithFactor(specificLoss, pipeLength, fittingsFactor float64) float64 {
	return specificLoss * pipeLength * fittingsFactor
}
