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

package model

type ComponentType string

const (
	ExteriorWall ComponentType = "exterior_wall"
	InteriorWall ComponentType = "interior_wall"
	Roof         ComponentType = "roof"
	Floor        ComponentType = "floor"
	Ceiling      ComponentType = "ceiling"
	// Window is only a key into the U-value table, windows are not components.
	Window ComponentType = "window"
)

// WindowComponent is an opening in a building component, areas in m², U in W/(m²·K).
type WindowComponent struct {
	ID        string   `json:"id" yaml:"id"`
	Area      float64  `json:"area" yaml:"area"`
	UValue    float64  `json:"uValue" yaml:"u_value"`
	DimWidth  *float64 `json:"dimWidth,omitempty" yaml:"dim_width,omitempty"`
	DimHeight *float64 `json:"dimHeight,omitempty" yaml:"dim_height,omitempty"`
}

// BuildingComponent is a surface bounding a room. Area is gross, windows included.
// A nil AdjacentTemp means the outdoor design temperature applies.
type BuildingComponent struct {
	ID           string            `json:"id" yaml:"id"`
	Name         string            `json:"name,omitempty" yaml:"name,omitempty"`
	Type         ComponentType     `json:"type" yaml:"type"`
	Area         float64           `json:"area" yaml:"area"`
	UValue       float64           `json:"uValue" yaml:"u_value"`
	AdjacentTemp *float64          `json:"adjacentTemp" yaml:"adjacent_temp"`
	Windows      []WindowComponent `json:"windows" yaml:"windows"`
	DimWidth     *float64          `json:"dimWidth,omitempty" yaml:"dim_width,omitempty"`
	DimHeight    *float64          `json:"dimHeight,omitempty" yaml:"dim_height,omitempty"`
}

// Room is a heated space. Dimensions in m, temperature in °C, air change in 1/h.
type Room struct {
	ID            int64               `db:"id" json:"id" yaml:"id"`
	ProjectID     int64               `db:"project_id" json:"projectId" yaml:"project_id"`
	Name          string              `db:"name" json:"name" yaml:"name"`
	UsageType     RoomUsageType       `db:"usage_type" json:"usageType" yaml:"usage_type"`
	Length        float64             `db:"length" json:"length" yaml:"length"`
	Width         float64             `db:"width" json:"width" yaml:"width"`
	Height        float64             `db:"height" json:"height" yaml:"height"`
	FloorPosition FloorPosition       `db:"floor_position" json:"floorPosition" yaml:"floor_position"`
	DesiredTemp   float64             `db:"desired_temp" json:"desiredTemp" yaml:"desired_temp"`
	AirChangeRate float64             `db:"air_change_rate" json:"airChangeRate" yaml:"air_change_rate"`
	Components    []BuildingComponent `db:"-" json:"buildingComponents" yaml:"building_components"`
}

func (r Room) Volume() float64 {
	return r.Length * r.Width * r.Height
}
