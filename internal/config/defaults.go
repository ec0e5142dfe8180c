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

	"github.com/antst/hydrobal/internal/model"
)

const (
	defaultSupplyTemp           = 70.0
	defaultReturnTemp           = 55.0
	defaultValveType            = "danfoss_ra_n"
	defaultValveDN              = 15
	defaultSpecificPressureLoss = 120.0
)

// ProjectDefaults are the system settings a new project starts with.
type ProjectDefaults struct {
	SupplyTemp           *float64 `yaml:"supply_temp"`
	ReturnTemp           *float64 `yaml:"return_temp"`
	ValveType            string   `yaml:"valve_type"`
	ValveDN              *int     `yaml:"valve_dn"`
	SpecificPressureLoss *float64 `yaml:"specific_pressure_loss"`
}

func NewProjectDefaults() *ProjectDefaults {
	cfg := &ProjectDefaults{}
	cfg.FillDefaults()
	return cfg
}

func (d *ProjectDefaults) FillDefaults() {
	if d.SupplyTemp == nil {
		d.SupplyTemp = GetPTR(defaultSupplyTemp)
	}
	if d.ReturnTemp == nil {
		d.ReturnTemp = GetPTR(defaultReturnTemp)
	}
	if d.ValveType == "" {
		d.ValveType = defaultValveType
	}
	if d.ValveDN == nil {
		d.ValveDN = GetPTR(defaultValveDN)
	}
	if d.SpecificPressureLoss == nil {
		d.SpecificPressureLoss = GetPTR(defaultSpecificPressureLoss)
	}
}

func (d *ProjectDefaults) Validate() error {
	if *d.ReturnTemp >= *d.SupplyTemp {
		return fmt.Errorf("return_temp %v must be below supply_temp %v", *d.ReturnTemp, *d.SupplyTemp)
	}
	return nil
}

// Settings returns the default system settings of a project.
func (d *ProjectDefaults) Settings(projectID int64) model.SystemSettings {
	return model.SystemSettings{
		ProjectID:            projectID,
		SupplyTemp:           *d.SupplyTemp,
		ReturnTemp:           *d.ReturnTemp,
		ValveType:            d.ValveType,
		ValveDN:              *d.ValveDN,
		SpecificPressureLoss: *d.SpecificPressureLoss,
	}
}
