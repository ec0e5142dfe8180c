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

package reference

import "github.com/antst/hydrobal/internal/model"

const (
	fallbackRoomTemp      = 20.0
	fallbackAirChangeRate = 0.5
)

type roomDefaults struct {
	temp          float64 // °C
	airChangeRate float64 // 1/h
}

var roomUsage = map[model.RoomUsageType]roomDefaults{
	model.LivingRoom: {20, 0.5},
	model.Bedroom:    {18, 0.5},
	model.Kitchen:    {20, 1.0},
	model.Bathroom:   {24, 1.5},
	model.Hallway:    {18, 0.5},
	model.Office:     {20, 0.5},
	model.Storage:    {15, 0.3},
	model.WC:         {20, 1.0},
}

func DefaultRoomTemperature(usage model.RoomUsageType) float64 {
	if d, ok := roomUsage[usage]; ok {
		return d.temp
	}
	return fallbackRoomTemp
}

func DefaultAirChangeRate(usage model.RoomUsageType) float64 {
	if d, ok := roomUsage[usage]; ok {
		return d.airChangeRate
	}
	return fallbackAirChangeRate
}
