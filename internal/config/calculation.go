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

package config

import (
	"fmt"

	"github.com/antst/hydrobal/internal/calc"
)

// CalculationConfig overrides the model constants.
type CalculationConfig struct {
	RadiatorExponent *float64 `yaml:"radiator_exponent"`
	FittingsFactor   *float64 `yaml:"fittings_factor"`
}

func NewCalculationConfig() *CalculationConfig {
	cfg := &CalculationConfig{}
	cfg.FillDefaults()
	return cfg
}

func (c *CalculationConfig) FillDefaults() {
	if c.RadiatorExponent == nil {
		c.RadiatorExponent = GetPTR(calc.DefaultExponent)
	}
	if c.FittingsFactor == nil {
		c.FittingsFactor = GetPTR(calc.DefaultFittingsFactor)
	}
}

func (c *CalculationConfig) Validate() error {
	if *c.RadiatorExponent <= 0 {
		return fmt.Errorf("radiator_exponent must be positive, got %v", *c.RadiatorExponent)
	}
	if *c.FittingsFactor < 1 {
		return fmt.Errorf("fittings_factor below 1 would reduce the pipe loss, got %v", *c.FittingsFactor)
	}
	return nil
}

func (c *CalculationConfig) Options() calc.Options {
	return calc.Options{Exponent: *c.RadiatorExponent, FittingsFactor: *c.FittingsFactor}
}
