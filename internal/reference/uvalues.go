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

const fallbackUValue = 1.0

type uValueKey struct {
	age       model.BuildingAgeClass
	component model.ComponentType
}

// W/(m²·K)
var uValues = map[uValueKey]float64{
	{model.AgeBefore1978, model.ExteriorWall}: 1.4,
	{model.AgeBefore1978, model.Roof}:         0.9,
	{model.AgeBefore1978, model.Floor}:        1.0,
	{model.AgeBefore1978, model.Window}:       2.8,
	{model.AgeBefore1978, model.InteriorWall}: 1.2,
	{model.AgeBefore1978, model.Ceiling}:      1.0,

	{model.Age1979to1983, model.ExteriorWall}: 0.8,
	{model.Age1979to1983, model.Roof}:         0.5,
	{model.Age1979to1983, model.Floor}:        0.7,
	{model.Age1979to1983, model.Window}:       2.7,
	{model.Age1979to1983, model.InteriorWall}: 1.0,
	{model.Age1979to1983, model.Ceiling}:      0.7,

	{model.Age1984to1994, model.ExteriorWall}: 0.6,
	{model.Age1984to1994, model.Roof}:         0.4,
	{model.Age1984to1994, model.Floor}:        0.5,
	{model.Age1984to1994, model.Window}:       1.8,
	{model.Age1984to1994, model.InteriorWall}: 0.8,
	{model.Age1984to1994, model.Ceiling}:      0.5,

	{model.Age1995to2001, model.ExteriorWall}: 0.4,
	{model.Age1995to2001, model.Roof}:         0.3,
	{model.Age1995to2001, model.Floor}:        0.4,
	{model.Age1995to2001, model.Window}:       1.5,
	{model.Age1995to2001, model.InteriorWall}: 0.6,
	{model.Age1995to2001, model.Ceiling}:      0.4,

	{model.Age2002to2009, model.ExteriorWall}: 0.3,
	{model.Age2002to2009, model.Roof}:         0.25,
	{model.Age2002to2009, model.Floor}:        0.35,
	{model.Age2002to2009, model.Window}:       1.3,
	{model.Age2002to2009, model.InteriorWall}: 0.5,
	{model.Age2002to2009, model.Ceiling}:      0.35,

	{model.Age2010to2015, model.ExteriorWall}: 0.24,
	{model.Age2010to2015, model.Roof}:         0.2,
	{model.Age2010to2015, model.Floor}:        0.3,
	{model.Age2010to2015, model.Window}:       1.1,
	{model.Age2010to2015, model.InteriorWall}: 0.4,
	{model.Age2010to2015, model.Ceiling}:      0.3,

	{model.AgeAfter2016, model.ExteriorWall}: 0.2,
	{model.AgeAfter2016, model.Roof}:         0.15,
	{model.AgeAfter2016, model.Floor}:        0.25,
	{model.AgeAfter2016, model.Window}:       0.95,
	{model.AgeAfter2016, model.InteriorWall}: 0.35,
	{model.AgeAfter2016, model.Ceiling}:      0.25,
}

func LookupUValue(age model.BuildingAgeClass, component model.ComponentType) (float64, bool) {
	u, ok := uValues[uValueKey{age, component}]
	return u, ok
}

// DefaultUValue is LookupUValue with the generic 1.0 W/(m²·K) for unknown keys.
func DefaultUValue(age model.BuildingAgeClass, component model.ComponentType) float64 {
	if u, ok := LookupUValue(age, component); ok {
		return u
	}
	return fallbackUValue
}
