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

// RadiatorType is the panel configuration code: panels then convector layers.
type RadiatorType string

const (
	Type10 RadiatorType = "10"
	Type11 RadiatorType = "11"
	Type20 RadiatorType = "20"
	Type21 RadiatorType = "21"
	Type22 RadiatorType = "22"
	Type33 RadiatorType = "33"
)

// Radiator belongs to one room. Height and Length are in mm, RatedOutput is W at ΔT50.
// ValveType and ValveDN override the system defaults when set.
type Radiator struct {
	ID          int64        `db:"id" json:"id" yaml:"id"`
	ProjectID   int64        `db:"project_id" json:"projectId" yaml:"project_id"`
	RoomID      int64        `db:"room_id" json:"roomId" yaml:"room_id"`
	Type        RadiatorType `db:"type" json:"type" yaml:"type"`
	Height      float64      `db:"height" json:"height" yaml:"height"`
	Length      float64      `db:"length" json:"length" yaml:"length"`
	RatedOutput float64      `db:"rated_output" json:"ratedOutputDeltaT50" yaml:"rated_output"`
	ValveType   *string      `db:"valve_type" json:"valveType,omitempty" yaml:"valve_type,omitempty"`
	ValveDN     *int         `db:"valve_dn" json:"valveDn,omitempty" yaml:"valve_dn,omitempty"`
}

// Circuit is a named pipe run grouping radiators.
type Circuit struct {
	ID        int64  `db:"id" json:"id" yaml:"id"`
	ProjectID int64  `db:"project_id" json:"projectId" yaml:"project_id"`
	Name      string `db:"name" json:"name" yaml:"name"`
}

// CircuitRadiator assigns a radiator to a circuit. PipeLength is the one-way
// supply run in m; PipeLengthReturn defaults to PipeLength when nil.
type CircuitRadiator struct {
	ID               int64    `db:"id" json:"id" yaml:"id"`
	CircuitID        int64    `db:"circuit_id" json:"circuitId" yaml:"circuit_id"`
	RadiatorID       int64    `db:"radiator_id" json:"radiatorId" yaml:"radiator_id"`
	PipeLength       float64  `db:"pipe_length" json:"estimatedPipeLength" yaml:"pipe_length"`
	PipeLengthReturn *float64 `db:"pipe_length_return" json:"pipeLengthReturn,omitempty" yaml:"pipe_length_return,omitempty"`
	SortOrder        int      `db:"sort_order" json:"sortOrder" yaml:"sort_order"`
}
