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

import (
	"math"

	"github.com/antst/hydrobal/internal/model"
)

// W per metre of panel length at ΔT50, typical EN 442 values.
var radiatorOutputs = map[model.RadiatorType]map[int]float64{
	model.Type10: {300: 263, 400: 351, 500: 439, 600: 527, 700: 614, 900: 790},
	model.Type11: {300: 422, 400: 563, 500: 703, 600: 844, 700: 985, 900: 1266},
	model.Type20: {300: 416, 400: 555, 500: 694, 600: 832, 700: 971, 900: 1248},
	model.Type21: {300: 565, 400: 753, 500: 941, 600: 1129, 700: 1318, 900: 1694},
	model.Type22: {300: 702, 400: 936, 500: 1170, 600: 1404, 700: 1638, 900: 2106},
	model.Type33: {300: 981, 400: 1308, 500: 1635, 600: 1962, 700: 2289, 900: 2943},
}

var radiatorTypeNames = map[model.RadiatorType]string{
	model.Type10: "Type 10 (1 panel, 0 convectors)",
	model.Type11: "Type 11 (1 panel, 1 convector)",
	model.Type20: "Type 20 (2 panels, 0 convectors)",
	model.Type21: "Type 21 (2 panels, 1 convector)",
	model.Type22: "Type 22 (2 panels, 2 convectors)",
	model.Type33: "Type 33 (3 panels, 3 convectors)",
}

// OutputPerMeter returns the ΔT50 output in W/m for a type and height in mm.
func OutputPerMeter(t model.RadiatorType, heightMM float64) (float64, bool) {
	if heightMM != math.Trunc(heightMM) {
		return 0, false
	}
	byHeight, ok := radiatorOutputs[t]
	if !ok {
		return 0, false
	}
	w, ok := byHeight[int(heightMM)]
	return w, ok
}

// RatedOutput is the ΔT50 output in W of a panel of the given length in mm,
// rounded to whole watts. Unknown type/height combinations are not guessed.
func RatedOutput(t model.RadiatorType, heightMM, lengthMM float64) (float64, bool) {
	perMeter, ok := OutputPerMeter(t, heightMM)
	if !ok {
		return 0, false
	}
	return math.Floor(perMeter*(lengthMM/1000) + 0.5), true
}

func RadiatorTypeName(t model.RadiatorType) string {
	if n, ok := radiatorTypeNames[t]; ok {
		return n
	}
	return "Type " + string(t)
}
