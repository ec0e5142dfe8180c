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

	"github.com/antst/hydrobal/internal/reference"
)

const pascalPerBar = 100000.0

// SizeLookup finds the preset table of a valve type and DN.
type SizeLookup interface {
	Size(valveTypeID string, dn int) (reference.ValveSize, bool)
}

// RequiredKv returns the Kv in m³/h that passes flow (L/h) at pressureLoss (Pa):
//
//	Kv = (Q/1000) / √(Δp/100000)
//
// A pressure loss <= 0 gives 0.
func RequiredKv(flow, pressureLoss float64) float64 {
	if pressureLoss <= 0 {
		return 0
	}
	return (flow / 1000) / math.Sqrt(pressureLoss/pascalPerBar)
}

// FindPreset picks the smallest-Kv preset with Kv >= requiredKv for the valve
// type and DN. The comparison is inclusive. If the valve, the DN or a large
// enough preset is missing, ok is false; the largest setting is never
// substituted.
func FindPreset(valves SizeLookup, valveTypeID string, dn int, requiredKv float64) (reference.ValvePreset, bool) {
	size, ok := valves.Size(valveTypeID, dn)
	if !ok {
		return reference.ValvePreset{}, false
	}

	found := -1
	for i, p := range size.Presets {
		if p.Kv >= requiredKv && (found < 0 || p.Kv < size.Presets[found].Kv) {
			found = i
		}
	}
	if found < 0 {
		return reference.ValvePreset{}, false
	}
	return size.Presets[found], true
}
