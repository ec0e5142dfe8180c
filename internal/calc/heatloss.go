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

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/antst/hydrobal/internal/model"
)

// Volumetric heat capacity of air, Wh/(m³·K).
const airHeatCapacity = 0.34

// RoomHeatLoad is the design heat load of a room in whole watts.
type RoomHeatLoad struct {
	TransmissionLoss float64 `yaml:"transmission_loss" csv:"transmission_loss"`
	VentilationLoss  float64 `yaml:"ventilation_loss" csv:"ventilation_loss"`
	Total            float64 `yaml:"total" csv:"total"`
}

// ComponentTransmissionLoss returns the heat flow in W through one building
// component and its windows:
//
//	U·A_net·ΔT + Σ U_w·A_w·ΔT,  A_net = max(0, A - Σ A_w)
//
// ΔT is taken against the adjacent temperature when set, otherwise against
// outdoorTemp. Heat gains (ΔT <= 0) are reported as 0.
func ComponentTransmissionLoss(c model.BuildingComponent, indoorTemp, outdoorTemp float64) float64 {
	deltaT := indoorTemp - outdoorTemp
	if c.AdjacentTemp != nil {
		deltaT = indoorTemp - *c.AdjacentTemp
	}
	if deltaT <= 0 {
		return 0
	}

	areas := make([]float64, len(c.Windows))
	for i, w := range c.Windows {
		areas[i] = w.Area
	}
	netArea := math.Max(0, c.Area-floats.Sum(areas))

	loss := c.UValue * netArea * deltaT
	for _, w := range c.Windows {
		loss += w.UValue * w.Area * deltaT
	}
	return loss
}

// RoomTransmissionLoss sums the component losses of a room at its desired
// temperature and rounds the sum to whole watts.
func RoomTransmissionLoss(room model.Room, outdoorTemp float64) float64 {
	total := 0.0
	for _, c := range room.Components {
		total += ComponentTransmissionLoss(c, room.DesiredTemp, outdoorTemp)
	}
	return roundHalfUp(total)
}

// VentilationLoss is 0.34·V·n·ΔT rounded to whole watts, 0 when ΔT <= 0.
func VentilationLoss(room model.Room, outdoorTemp float64) float64 {
	deltaT := room.DesiredTemp - outdoorTemp
	if deltaT <= 0 {
		return 0
	}
	return roundHalfUp(airHeatCapacity * room.Volume() * room.AirChangeRate * deltaT)
}

// RoomHeatingLoad adds the already rounded transmission and ventilation losses.
func RoomHeatingLoad(room model.Room, outdoorTemp float64) RoomHeatLoad {
	t := RoomTransmissionLoss(room, outdoorTemp)
	v := VentilationLoss(room, outdoorTemp)
	return RoomHeatLoad{
		TransmissionLoss: t,
		VentilationLoss:  v,
		Total:            t + v,
	}
}
