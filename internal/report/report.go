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

// Package report renders balance results as YAML documents or CSV tables.
package report

import (
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/antst/hydrobal/internal/calc"
	"github.com/antst/hydrobal/internal/model"
	"github.com/antst/hydrobal/internal/reference"
)

type Status string

const (
	Undersupplied Status = "undersupplied"
	Adequate      Status = "adequate"
	Oversupplied  Status = "oversupplied"
)

const (
	lowCoverage  = 90.0
	highCoverage = 110.0
)

// CoverageStatus classifies a coverage percentage, 90 and 110 are adequate.
func CoverageStatus(percent float64) Status {
	switch {
	case percent < lowCoverage:
		return Undersupplied
	case percent > highCoverage:
		return Oversupplied
	}
	return Adequate
}

type Room struct {
	calc.RoomResult `yaml:",inline"`
	Status          Status `yaml:"status"`
}

// Document is the YAML report of one project.
type Document struct {
	Project          model.Project        `yaml:"project"`
	Settings         model.SystemSettings `yaml:"system_settings"`
	GeneratedAt      time.Time            `yaml:"generated_at"`
	TotalHeatingLoad float64              `yaml:"total_heating_load"`
	TotalFlowRate    float64              `yaml:"total_flow_rate"`
	Critical         *calc.RadiatorResult `yaml:"critical_radiator,omitempty"`
	Rooms            []Room               `yaml:"rooms"`
}

func NewDocument(snap model.Snapshot, result calc.SystemResult, generatedAt time.Time) Document {
	doc := Document{
		Project:          snap.Project,
		Settings:         snap.Settings,
		GeneratedAt:      generatedAt,
		TotalHeatingLoad: result.TotalHeatingLoad,
		TotalFlowRate:    result.TotalFlowRate,
		Critical:         result.Critical,
		Rooms:            make([]Room, 0, len(result.Rooms)),
	}
	for _, r := range result.Rooms {
		doc.Rooms = append(doc.Rooms, Room{RoomResult: r, Status: CoverageStatus(r.CoveragePercent)})
	}
	return doc
}

func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode yaml report")
	}
	return errors.Wrap(enc.Close(), "encode yaml report")
}

// Row is one radiator line of the CSV report.
type Row struct {
	Room            string  `csv:"room"`
	RadiatorID      int64   `csv:"radiator_id"`
	RadiatorType    string  `csv:"radiator_type"`
	RadiatorLabel   string  `csv:"radiator_label"`
	HeatingLoad     float64 `csv:"heating_load"`
	RatedOutput     float64 `csv:"rated_output"`
	ActualOutput    float64 `csv:"actual_output"`
	CoveragePercent float64 `csv:"coverage_percent"`
	Status          Status  `csv:"status"`
	FlowRate        float64 `csv:"flow_rate"`
	PressureLoss    float64 `csv:"pressure_loss"`
	KvValue         float64 `csv:"kv_value"`
	Preset          string  `csv:"preset"`
	ValveType       string  `csv:"valve_type"`
	ValveDN         int     `csv:"valve_dn"`
	Critical        bool    `csv:"critical"`
}

// Rows flattens the result to one row per radiator, in room order.
func Rows(result calc.SystemResult) []Row {
	var rows []Row
	for _, r := range result.Radiators() {
		preset := "-"
		if r.Preset != nil {
			preset = r.Preset.Setting
		}
		rows = append(rows, Row{
			Room:            r.RoomName,
			RadiatorID:      r.RadiatorID,
			RadiatorType:    string(r.RadiatorType),
			RadiatorLabel:   reference.RadiatorTypeName(r.RadiatorType),
			HeatingLoad:     r.HeatingLoad,
			RatedOutput:     r.RatedOutput,
			ActualOutput:    r.ActualOutput,
			CoveragePercent: r.CoveragePercent,
			Status:          CoverageStatus(r.CoveragePercent),
			FlowRate:        r.FlowRate,
			PressureLoss:    r.PressureLoss,
			KvValue:         r.KvValue,
			Preset:          preset,
			ValveType:       r.EffectiveValveType,
			ValveDN:         r.EffectiveValveDN,
			Critical:        result.Critical != nil && result.Critical.RadiatorID == r.RadiatorID,
		})
	}
	return rows
}

func WriteCSV(w io.Writer, result calc.SystemResult) error {
	rows := Rows(result)
	if rows == nil {
		rows = []Row{}
	}
	return errors.Wrap(gocsv.Marshal(rows, w), "encode csv report")
}
