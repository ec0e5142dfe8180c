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
	"gonum.org/v1/gonum/floats"

	"github.com/antst/hydrobal/internal/model"
	"github.com/antst/hydrobal/internal/reference"
)

const (
	// DefaultPipeLength is the one-way supply run assumed for radiators
	// without a circuit assignment, m.
	DefaultPipeLength = 10.0
	// DefaultValveDN applies when neither the radiator nor the system names a DN.
	DefaultValveDN = 15
)

// Options tunes the model constants. Zero fields take the defaults.
type Options struct {
	Exponent       float64
	FittingsFactor float64
}

func DefaultOptions() Options {
	return Options{Exponent: DefaultExponent, FittingsFactor: DefaultFittingsFactor}
}

func (o Options) withDefaults() Options {
	if o.Exponent <= 0 {
		o.Exponent = DefaultExponent
	}
	if o.FittingsFactor <= 0 {
		o.FittingsFactor = DefaultFittingsFactor
	}
	return o
}

// RadiatorResult is the operating point and valve setting of one radiator.
// FlowRate, PressureLoss and KvValue are rounded for display (0.1 L/h, 1 Pa,
// 0.001 m³/h); Preset is nil when the valve table has no matching setting.
type RadiatorResult struct {
	RadiatorID         int64                  `yaml:"radiator_id"`
	RoomID             int64                  `yaml:"room_id"`
	RoomName           string                 `yaml:"room_name"`
	RadiatorType       model.RadiatorType     `yaml:"radiator_type"`
	HeatingLoad        float64                `yaml:"heating_load"`
	RatedOutput        float64                `yaml:"rated_output"`
	ActualOutput       float64                `yaml:"actual_output"`
	CoveragePercent    float64                `yaml:"coverage_percent"`
	FlowRate           float64                `yaml:"flow_rate"`
	PipeLength         float64                `yaml:"pipe_length"`
	PressureLoss       float64                `yaml:"pressure_loss"`
	KvValue            float64                `yaml:"kv_value"`
	Preset             *reference.ValvePreset `yaml:"preset,omitempty"`
	EffectiveValveType string                 `yaml:"effective_valve_type"`
	EffectiveValveDN   int                    `yaml:"effective_valve_dn"`
}

// RoomResult aggregates a room. EqualShareFallback is set when the room has
// radiators but no rated output to split the load by, in which case every
// radiator was assigned the full room load.
type RoomResult struct {
	RoomID              int64            `yaml:"room_id"`
	RoomName            string           `yaml:"room_name"`
	HeatingLoad         RoomHeatLoad     `yaml:"heating_load"`
	Radiators           []RadiatorResult `yaml:"radiators"`
	TotalRadiatorOutput float64          `yaml:"total_radiator_output"`
	CoveragePercent     float64          `yaml:"coverage_percent"`
	EqualShareFallback  bool             `yaml:"equal_share_fallback,omitempty"`
}

type SystemResult struct {
	Rooms            []RoomResult    `yaml:"rooms"`
	TotalHeatingLoad float64         `yaml:"total_heating_load"`
	TotalFlowRate    float64         `yaml:"total_flow_rate"`
	Critical         *RadiatorResult `yaml:"critical_radiator,omitempty"`
}

// Radiators flattens the per-room results in room then radiator order.
func (s SystemResult) Radiators() []RadiatorResult {
	var out []RadiatorResult
	for _, r := range s.Rooms {
		out = append(out, r.Radiators...)
	}
	return out
}

// Balancer runs the whole-building pass against a valve catalog.
type Balancer struct {
	opts   Options
	valves SizeLookup
}

func NewBalancer(valves SizeLookup, opts Options) *Balancer {
	return &Balancer{opts: opts.withDefaults(), valves: valves}
}

func (b *Balancer) Options() Options {
	return b.opts
}

// BalanceSnapshot is Balance over a loaded project.
func (b *Balancer) BalanceSnapshot(s model.Snapshot) SystemResult {
	return b.Balance(s.Rooms, s.Radiators, s.Links, s.Settings, s.Project.DesignOutdoorTemp)
}

// Balance computes every room and radiator of a building. Rooms and radiators
// are processed in the given order, which also decides ties for the critical
// radiator. A missing preset or a zero load never stops the pass.
func (b *Balancer) Balance(
	rooms []model.Room, radiators []model.Radiator, links []model.CircuitRadiator,
	settings model.SystemSettings, designOutdoorTemp float64,
) SystemResult {
	linkByRadiator := make(map[int64]model.CircuitRadiator, len(links))
	for _, l := range links {
		if _, ok := linkByRadiator[l.RadiatorID]; !ok {
			linkByRadiator[l.RadiatorID] = l
		}
	}

	res := SystemResult{Rooms: make([]RoomResult, 0, len(rooms))}
	var flows []float64

	for _, room := range rooms {
		load := RoomHeatingLoad(room, designOutdoorTemp)
		res.TotalHeatingLoad += load.Total

		var roomRads []model.Radiator
		totalRated := 0.0
		for _, rad := range radiators {
			if rad.RoomID == room.ID {
				roomRads = append(roomRads, rad)
				totalRated += rad.RatedOutput
			}
		}

		rr := RoomResult{
			RoomID:             room.ID,
			RoomName:           room.Name,
			HeatingLoad:        load,
			Radiators:          make([]RadiatorResult, 0, len(roomRads)),
			EqualShareFallback: len(roomRads) > 0 && totalRated <= 0,
		}

		for _, rad := range roomRads {
			proportion := 1.0
			if totalRated > 0 {
				proportion = rad.RatedOutput / totalRated
			}
			r, flow := b.radiator(room, rad, load.Total*proportion, settings, linkByRadiator)
			flows = append(flows, flow)
			rr.Radiators = append(rr.Radiators, r)
			rr.TotalRadiatorOutput += r.ActualOutput
		}
		rr.CoveragePercent = percent(rr.TotalRadiatorOutput, load.Total)
		res.Rooms = append(res.Rooms, rr)
	}

	res.TotalFlowRate = roundTo(floats.Sum(flows), 1)
	res.Critical = criticalRadiator(res.Radiators())
	return res
}

// radiator returns the result for one radiator and its unrounded flow.
func (b *Balancer) radiator(
	room model.Room, rad model.Radiator, share float64, settings model.SystemSettings,
	links map[int64]model.CircuitRadiator,
) (RadiatorResult, float64) {
	load := roundHalfUp(share)
	actual := ActualOutputWithExponent(rad.RatedOutput, settings.SupplyTemp, settings.ReturnTemp, room.DesiredTemp, b.opts.Exponent)
	flow := FlowRate(load, settings.SupplyTemp, settings.ReturnTemp)

	length := pipeLength(rad.ID, links)
	dp := PressureLossWithFactor(settings.SpecificPressureLoss, length, b.opts.FittingsFactor)
	kv := RequiredKv(flow, dp)

	valveType, dn := effectiveValve(rad, settings)
	r := RadiatorResult{
		RadiatorID:         rad.ID,
		RoomID:             room.ID,
		RoomName:           room.Name,
		RadiatorType:       rad.Type,
		HeatingLoad:        load,
		RatedOutput:        rad.RatedOutput,
		ActualOutput:       actual,
		CoveragePercent:    percent(actual, load),
		FlowRate:           roundTo(flow, 1),
		PipeLength:         length,
		PressureLoss:       roundHalfUp(dp),
		KvValue:            roundTo(kv, 3),
		EffectiveValveType: valveType,
		EffectiveValveDN:   dn,
	}
	if b.valves != nil {
		if p, ok := FindPreset(b.valves, valveType, dn, kv); ok {
			r.Preset = &p
		}
	}
	return r, flow
}

// pipeLength is supply plus return run, with the return equal to the supply
// run unless given and 10 m supply for unassigned radiators.
func pipeLength(radiatorID int64, links map[int64]model.CircuitRadiator) float64 {
	supply := DefaultPipeLength
	ret := supply
	if l, ok := links[radiatorID]; ok {
		supply = l.PipeLength
		ret = supply
		if l.PipeLengthReturn != nil {
			ret = *l.PipeLengthReturn
		}
	}
	return supply + ret
}

func effectiveValve(rad model.Radiator, settings model.SystemSettings) (string, int) {
	valveType := settings.ValveType
	if rad.ValveType != nil && *rad.ValveType != "" {
		valveType = *rad.ValveType
	}
	dn := DefaultValveDN
	switch {
	case rad.ValveDN != nil && *rad.ValveDN > 0:
		dn = *rad.ValveDN
	case settings.ValveDN > 0:
		dn = settings.ValveDN
	}
	return valveType, dn
}

// percent is round(part/whole·100), 0 when there is nothing to cover.
func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return roundHalfUp(part / whole * 100)
}

// criticalRadiator is the first radiator with the strictly greatest pressure loss.
func criticalRadiator(results []RadiatorResult) *RadiatorResult {
	var critical *RadiatorResult
	for i := range results {
		if critical == nil || results[i].PressureLoss > critical.PressureLoss {
			critical = &results[i]
		}
	}
	return critical
}
