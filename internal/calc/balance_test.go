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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antst/hydrobal/internal/model"
	"github.com/antst/hydrobal/internal/reference"
)

func defaultSettings() model.SystemSettings {
	return model.SystemSettings{
		SupplyTemp:           70,
		ReturnTemp:           55,
		ValveType:            "danfoss_ra_n",
		ValveDN:              15,
		SpecificPressureLoss: 120,
	}
}

func newBalancer() *Balancer {
	return NewBalancer(reference.DefaultCatalog(), Options{})
}

// room with an 835 W design load at -13 °C
func loadedRoom(id int64) model.Room {
	room := livingRoom(exteriorWall(model.WindowComponent{ID: "w1", Area: 2, UValue: 2.8}))
	room.ID = id
	return room
}

func TestBalanceSingleRadiator(t *testing.T) {
	rooms := []model.Room{loadedRoom(1)}
	rads := []model.Radiator{{ID: 10, RoomID: 1, Type: model.Type22, RatedOutput: 1000}}

	res := newBalancer().Balance(rooms, rads, nil, defaultSettings(), -13)

	require.Len(t, res.Rooms, 1)
	room := res.Rooms[0]
	assert.Equal(t, 835.0, room.HeatingLoad.Total)
	assert.False(t, room.EqualShareFallback)
	require.Len(t, room.Radiators, 1)

	r := room.Radiators[0]
	assert.Equal(t, 835.0, r.HeatingLoad)
	assert.Equal(t, 810.0, r.ActualOutput)
	assert.Equal(t, 97.0, r.CoveragePercent)
	assert.Equal(t, 47.9, r.FlowRate)
	assert.Equal(t, 20.0, r.PipeLength)
	assert.Equal(t, 3120.0, r.PressureLoss)
	assert.Equal(t, 0.271, r.KvValue)
	require.NotNil(t, r.Preset)
	assert.Equal(t, "5", r.Preset.Setting)
	assert.Equal(t, "danfoss_ra_n", r.EffectiveValveType)
	assert.Equal(t, 15, r.EffectiveValveDN)

	assert.Equal(t, 810.0, room.TotalRadiatorOutput)
	assert.Equal(t, 97.0, room.CoveragePercent)
	assert.Equal(t, 835.0, res.TotalHeatingLoad)
	assert.Equal(t, 47.9, res.TotalFlowRate)
	require.NotNil(t, res.Critical)
	assert.Equal(t, int64(10), res.Critical.RadiatorID)
}

func TestBalanceProportionalShare(t *testing.T) {
	rooms := []model.Room{loadedRoom(1)}
	rads := []model.Radiator{
		{ID: 10, RoomID: 1, RatedOutput: 600},
		{ID: 11, RoomID: 1, RatedOutput: 400},
	}

	res := newBalancer().Balance(rooms, rads, nil, defaultSettings(), -13)

	require.Len(t, res.Rooms[0].Radiators, 2)
	assert.Equal(t, 501.0, res.Rooms[0].Radiators[0].HeatingLoad)
	assert.Equal(t, 334.0, res.Rooms[0].Radiators[1].HeatingLoad)
}

// Rooms whose radiators have no rated output give every radiator the whole
// room load instead of dividing by zero.
func TestBalanceEqualShareFallback(t *testing.T) {
	rooms := []model.Room{loadedRoom(1)}
	rads := []model.Radiator{
		{ID: 10, RoomID: 1, RatedOutput: 0},
		{ID: 11, RoomID: 1, RatedOutput: 0},
	}

	res := newBalancer().Balance(rooms, rads, nil, defaultSettings(), -13)

	room := res.Rooms[0]
	assert.True(t, room.EqualShareFallback)
	require.Len(t, room.Radiators, 2)
	for _, r := range room.Radiators {
		assert.Equal(t, 835.0, r.HeatingLoad)
		assert.Equal(t, 0.0, r.ActualOutput)
		assert.Equal(t, 0.0, r.CoveragePercent)
		assert.Equal(t, 47.9, r.FlowRate)
	}
	assert.Equal(t, 0.0, room.CoveragePercent)
	assert.Equal(t, 95.7, res.TotalFlowRate)
}

func TestBalanceRoomWithoutRadiators(t *testing.T) {
	res := newBalancer().Balance([]model.Room{loadedRoom(1)}, nil, nil, defaultSettings(), -13)

	room := res.Rooms[0]
	assert.False(t, room.EqualShareFallback)
	assert.Empty(t, room.Radiators)
	assert.Equal(t, 0.0, room.CoveragePercent)
	assert.Equal(t, 835.0, res.TotalHeatingLoad)
	assert.Equal(t, 0.0, res.TotalFlowRate)
	assert.Nil(t, res.Critical)
}

func TestBalanceZeroLoadRoom(t *testing.T) {
	room := loadedRoom(1)
	rads := []model.Radiator{{ID: 10, RoomID: 1, RatedOutput: 1000}}

	// outdoor as warm as the room
	res := newBalancer().Balance([]model.Room{room}, rads, nil, defaultSettings(), 20)

	r := res.Rooms[0].Radiators[0]
	assert.Equal(t, 0.0, r.HeatingLoad)
	assert.Equal(t, 0.0, r.CoveragePercent)
	assert.Equal(t, 0.0, r.FlowRate)
	assert.Equal(t, 0.0, r.KvValue)
	require.NotNil(t, r.Preset)
	assert.Equal(t, "1", r.Preset.Setting)
	assert.Equal(t, 0.0, res.Rooms[0].CoveragePercent)
}

func TestBalancePipeLengths(t *testing.T) {
	rooms := []model.Room{loadedRoom(1)}
	rads := []model.Radiator{
		{ID: 10, RoomID: 1, RatedOutput: 500},
		{ID: 11, RoomID: 1, RatedOutput: 500},
		{ID: 12, RoomID: 1, RatedOutput: 500},
	}
	links := []model.CircuitRadiator{
		{CircuitID: 1, RadiatorID: 10, PipeLength: 7},
		{CircuitID: 1, RadiatorID: 11, PipeLength: 5, PipeLengthReturn: ptr(8.0)},
	}

	res := newBalancer().Balance(rooms, rads, links, defaultSettings(), -13)

	got := res.Rooms[0].Radiators
	require.Len(t, got, 3)
	assert.Equal(t, 14.0, got[0].PipeLength)
	assert.Equal(t, 13.0, got[1].PipeLength)
	assert.Equal(t, 20.0, got[2].PipeLength)
	assert.Equal(t, 2028.0, got[1].PressureLoss)
}

func TestBalanceValveOverride(t *testing.T) {
	rooms := []model.Room{loadedRoom(1)}
	rads := []model.Radiator{
		{ID: 10, RoomID: 1, RatedOutput: 500, ValveType: ptr("heimeier_v_exact"), ValveDN: ptr(10)},
		{ID: 11, RoomID: 1, RatedOutput: 500},
	}
	settings := defaultSettings()
	settings.ValveDN = 0

	res := newBalancer().Balance(rooms, rads, nil, settings, -13)

	got := res.Rooms[0].Radiators
	assert.Equal(t, "heimeier_v_exact", got[0].EffectiveValveType)
	assert.Equal(t, 10, got[0].EffectiveValveDN)
	assert.Equal(t, "danfoss_ra_n", got[1].EffectiveValveType)
	assert.Equal(t, DefaultValveDN, got[1].EffectiveValveDN)
}

func TestBalanceContinuesAfterPresetMiss(t *testing.T) {
	rooms := []model.Room{loadedRoom(1), loadedRoom(2)}
	rads := []model.Radiator{
		{ID: 10, RoomID: 1, RatedOutput: 1000, ValveType: ptr("no_such_valve")},
		{ID: 20, RoomID: 2, RatedOutput: 1000},
	}

	res := newBalancer().Balance(rooms, rads, nil, defaultSettings(), -13)

	require.Len(t, res.Rooms, 2)
	assert.Nil(t, res.Rooms[0].Radiators[0].Preset)
	assert.Equal(t, 0.271, res.Rooms[0].Radiators[0].KvValue)
	require.NotNil(t, res.Rooms[1].Radiators[0].Preset)
	assert.Equal(t, "5", res.Rooms[1].Radiators[0].Preset.Setting)
}

func TestBalanceCriticalRadiator(t *testing.T) {
	rooms := []model.Room{loadedRoom(1), loadedRoom(2)}
	rads := []model.Radiator{
		{ID: 10, RoomID: 1, RatedOutput: 1000},
		{ID: 20, RoomID: 2, RatedOutput: 600},
		{ID: 21, RoomID: 2, RatedOutput: 400},
	}
	links := []model.CircuitRadiator{
		{RadiatorID: 10, PipeLength: 12},
		{RadiatorID: 20, PipeLength: 15},
		{RadiatorID: 21, PipeLength: 15},
	}

	res := newBalancer().Balance(rooms, rads, links, defaultSettings(), -13)

	// 20 and 21 tie on 30 m of pipe, the first one found wins
	require.NotNil(t, res.Critical)
	assert.Equal(t, int64(20), res.Critical.RadiatorID)
	assert.Equal(t, 4680.0, res.Critical.PressureLoss)
}

func TestBalanceTotalFlowRoundedOnce(t *testing.T) {
	// each room loses 0.34·1·0.1·30 = 1.02 W, i.e. 1 W and 0.0573 L/h per radiator
	var rooms []model.Room
	var rads []model.Radiator
	for i := int64(1); i <= 3; i++ {
		rooms = append(rooms, model.Room{ID: i, Length: 1, Width: 1, Height: 1, AirChangeRate: 0.1, DesiredTemp: 20})
		rads = append(rads, model.Radiator{ID: 10 * i, RoomID: i, RatedOutput: 100})
	}

	res := newBalancer().Balance(rooms, rads, nil, defaultSettings(), -10)

	roundedSum := 0.0
	for _, r := range res.Radiators() {
		assert.Equal(t, 1.0, r.HeatingLoad)
		assert.Equal(t, 0.1, r.FlowRate)
		roundedSum += r.FlowRate
	}
	assert.Equal(t, 0.2, res.TotalFlowRate)
	assert.InDelta(t, 0.3, roundedSum, 1e-9)
}

func TestBalanceOptions(t *testing.T) {
	rooms := []model.Room{loadedRoom(1)}
	rads := []model.Radiator{{ID: 10, RoomID: 1, RatedOutput: 1000}}

	b := NewBalancer(reference.DefaultCatalog(), Options{Exponent: 1.0, FittingsFactor: 1.0})
	res := b.Balance(rooms, rads, nil, defaultSettings(), -13)

	r := res.Rooms[0].Radiators[0]
	// (42.5/50)^1
	assert.Equal(t, 850.0, r.ActualOutput)
	assert.Equal(t, 2400.0, r.PressureLoss)
	assert.Equal(t, DefaultOptions(), newBalancer().Options())
}

func TestBalanceSnapshot(t *testing.T) {
	s := model.Snapshot{
		Project:   model.Project{DesignOutdoorTemp: -13},
		Settings:  defaultSettings(),
		Rooms:     []model.Room{loadedRoom(1)},
		Radiators: []model.Radiator{{ID: 10, RoomID: 1, RatedOutput: 1000}},
	}
	assert.Equal(t, 835.0, newBalancer().BalanceSnapshot(s).TotalHeatingLoad)
}
