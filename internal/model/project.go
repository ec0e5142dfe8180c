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

// Package model holds the records the balance calculation reads. They are
// created and edited by the store and handed to the calculation as snapshots.
package model

import "time"

type BuildingType string

const (
	Apartment    BuildingType = "apartment"
	Detached     BuildingType = "detached"
	SemiDetached BuildingType = "semi_detached"
	Terraced     BuildingType = "terraced"
)

type BuildingAgeClass string

const (
	AgeBefore1978 BuildingAgeClass = "before_1978"
	Age1979to1983 BuildingAgeClass = "1979_1983"
	Age1984to1994 BuildingAgeClass = "1984_1994"
	Age1995to2001 BuildingAgeClass = "1995_2001"
	Age2002to2009 BuildingAgeClass = "2002_2009"
	Age2010to2015 BuildingAgeClass = "2010_2015"
	AgeAfter2016  BuildingAgeClass = "after_2016"
)

type RoomUsageType string

const (
	LivingRoom RoomUsageType = "living_room"
	Bedroom    RoomUsageType = "bedroom"
	Kitchen    RoomUsageType = "kitchen"
	Bathroom   RoomUsageType = "bathroom"
	Hallway    RoomUsageType = "hallway"
	Office     RoomUsageType = "office"
	Storage    RoomUsageType = "storage"
	WC         RoomUsageType = "wc"
)

type FloorPosition string

const (
	Basement FloorPosition = "basement"
	Ground   FloorPosition = "ground"
	Upper    FloorPosition = "upper"
	Top      FloorPosition = "top"
)

// Project is the root of a building's records.
type Project struct {
	ID                int64            `db:"id" json:"id" yaml:"id"`
	Name              string           `db:"name" json:"name" yaml:"name"`
	BuildingType      BuildingType     `db:"building_type" json:"buildingType" yaml:"building_type"`
	BuildingAgeClass  BuildingAgeClass `db:"building_age_class" json:"buildingAgeClass" yaml:"building_age_class"`
	ClimateZoneID     string           `db:"climate_zone_id" json:"climateZoneId" yaml:"climate_zone_id"`
	DesignOutdoorTemp float64          `db:"design_outdoor_temp" json:"designOutdoorTemp" yaml:"design_outdoor_temp"`
	CreatedAt         time.Time        `db:"created_at" json:"createdAt" yaml:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updatedAt" yaml:"updated_at"`
}

// SystemSettings are the per-project operating parameters of the heating system.
type SystemSettings struct {
	ID                   int64   `db:"id" json:"id" yaml:"id"`
	ProjectID            int64   `db:"project_id" json:"projectId" yaml:"project_id"`
	SupplyTemp           float64 `db:"supply_temp" json:"supplyTemp" yaml:"supply_temp"`
	ReturnTemp           float64 `db:"return_temp" json:"returnTemp" yaml:"return_temp"`
	ValveType            string  `db:"valve_type" json:"valveType" yaml:"valve_type"`
	ValveDN              int     `db:"valve_dn" json:"valveDn" yaml:"valve_dn"`
	SpecificPressureLoss float64 `db:"specific_pressure_loss" json:"specificPressureLoss" yaml:"specific_pressure_loss"`
}


// Snapshot is everything the balance needs for one project.
type Snapshot struct {
	Project   Project
	Settings  SystemSettings
	Rooms     []Room
	Radiators []Radiator
	Links     []CircuitRadiator
}
