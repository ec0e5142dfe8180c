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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antst/hydrobal/internal/model"
	"github.com/antst/hydrobal/internal/reference"
)

const propertyRounds = 500

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randomComponent(rng *rand.Rand) model.BuildingComponent {
	types := []model.ComponentType{model.ExteriorWall, model.InteriorWall, model.Roof, model.Floor, model.Ceiling}
	c := model.BuildingComponent{
		Type:   types[rng.Intn(len(types))],
		Area:   uniform(rng, 0, 30),
		UValue: uniform(rng, 0.1, 3),
	}
	if rng.Intn(3) == 0 {
		c.AdjacentTemp = ptr(uniform(rng, -5, 25))
	}
	for n := rng.Intn(4); n > 0; n-- {
		c.Windows = append(c.Windows, model.WindowComponent{Area: uniform(rng, 0, 8), UValue: uniform(rng, 0.7, 3)})
	}
	return c
}

func randomBuilding(rng *rand.Rand) ([]model.Room, []model.Radiator, []model.CircuitRadiator) {
	var rooms []model.Room
	var rads []model.Radiator
	var links []model.CircuitRadiator
	radID := int64(1)
	roomCount := int64(1 + rng.Intn(8))
	for roomID := int64(1); roomID <= roomCount; roomID++ {
		room := model.Room{
			ID:            roomID,
			Length:        uniform(rng, 1, 8),
			Width:         uniform(rng, 1, 6),
			Height:        uniform(rng, 2.2, 3.2),
			DesiredTemp:   uniform(rng, 15, 24),
			AirChangeRate: uniform(rng, 0.3, 1.5),
		}
		for n := rng.Intn(5); n > 0; n-- {
			room.Components = append(room.Components, randomComponent(rng))
		}
		rooms = append(rooms, room)

		for n := rng.Intn(4); n > 0; n-- {
			rads = append(rads, model.Radiator{ID: radID, RoomID: roomID, RatedOutput: math.Round(uniform(rng, 0, 2500))})
			if rng.Intn(2) == 0 {
				links = append(links, model.CircuitRadiator{RadiatorID: radID, PipeLength: uniform(rng, 1, 25)})
			}
			radID++
		}
	}
	return rooms, rads, links
}

func TestPropertyNoHeatGain(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < propertyRounds; i++ {
		indoor := uniform(rng, -20, 30)
		outdoor := indoor + uniform(rng, 0, 20)

		c := randomComponent(rng)
		c.AdjacentTemp = nil
		assert.Equal(t, 0.0, ComponentTransmissionLoss(c, indoor, outdoor))

		room := model.Room{Length: 4, Width: 4, Height: 2.5, AirChangeRate: 0.5, DesiredTemp: indoor}
		assert.Equal(t, 0.0, VentilationLoss(room, outdoor))

		supply := uniform(rng, 20, 80)
		assert.Equal(t, 0.0, FlowRate(uniform(rng, 0, 3000), supply, supply+uniform(rng, 0, 10)))

		roomTemp := uniform(rng, 15, 25)
		mean := roomTemp - uniform(rng, 0, 10)
		assert.Equal(t, 0.0, ActualOutput(uniform(rng, 0, 3000), mean+5, mean-5, roomTemp))
	}
}

func TestPropertyWithoutWindows(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < propertyRounds; i++ {
		c := randomComponent(rng)
		c.Windows = nil
		c.AdjacentTemp = nil
		indoor, outdoor := uniform(rng, 15, 25), uniform(rng, -20, 10)

		assert.Equal(t, c.UValue*c.Area*(indoor-outdoor), ComponentTransmissionLoss(c, indoor, outdoor))
	}
}

func TestPropertyNetAreaNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < propertyRounds; i++ {
		c := randomComponent(rng)
		c.AdjacentTemp = nil
		c.Area = uniform(rng, 0, 2)
		c.Windows = append(c.Windows, model.WindowComponent{Area: 2 + uniform(rng, 0, 5), UValue: 1.5})
		indoor, outdoor := 20.0, -10.0

		glass := 0.0
		for _, w := range c.Windows {
			glass += w.UValue * w.Area * (indoor - outdoor)
		}
		assert.InDelta(t, glass, ComponentTransmissionLoss(c, indoor, outdoor), 1e-9)
	}
}

func TestPropertyHeatingLoadTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < propertyRounds; i++ {
		rooms, _, _ := randomBuilding(rng)
		outdoor := uniform(rng, -20, 15)
		for _, room := range rooms {
			load := RoomHeatingLoad(room, outdoor)
			assert.Equal(t, load.TransmissionLoss+load.VentilationLoss, load.Total)
			assert.GreaterOrEqual(t, load.Total, 0.0)
		}
	}
}

func TestPropertyRatingPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	points := [][3]float64{{90, 30, 10}, {75, 65, 20}, {80, 60, 20}, {100, 40, 20}}
	for i := 0; i < propertyRounds; i++ {
		rated := float64(rng.Intn(5000))
		p := points[rng.Intn(len(points))]
		exponent := uniform(rng, 1.0, 1.6)

		assert.Equal(t, rated, ActualOutputWithExponent(rated, p[0], p[1], p[2], exponent))
	}
}

func TestPropertyLinearity(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < propertyRounds; i++ {
		k := uniform(rng, 0.1, 10)

		power := uniform(rng, 1, 3000)
		supply := uniform(rng, 40, 80)
		ret := supply - uniform(rng, 1, 20)
		assert.InEpsilon(t, k*FlowRate(power, supply, ret), FlowRate(k*power, supply, ret), 1e-12)

		rate, length := uniform(rng, 50, 300), uniform(rng, 1, 60)
		assert.InEpsilon(t, k*PressureLoss(rate, length), PressureLoss(rate, k*length), 1e-12)
	}
}

func TestPropertyPresetIsSmallestSufficient(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	catalog := reference.DefaultCatalog()
	for i := 0; i < propertyRounds; i++ {
		types := catalog.Types()
		vt := types[rng.Intn(len(types))]
		size := vt.Sizes[rng.Intn(len(vt.Sizes))]
		required := uniform(rng, 0, 3)

		p, ok := FindPreset(catalog, vt.ID, size.DN, required)
		sufficient := 0
		for _, candidate := range size.Presets {
			if candidate.Kv >= required {
				sufficient++
				if ok {
					assert.GreaterOrEqual(t, candidate.Kv, p.Kv)
				}
			}
		}
		if !ok {
			assert.Zero(t, sufficient)
			continue
		}
		assert.GreaterOrEqual(t, p.Kv, required)
	}
}

func TestPropertyTotalFlowRate(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	b := newBalancer()
	settings := defaultSettings()
	for i := 0; i < propertyRounds/5; i++ {
		rooms, rads, links := randomBuilding(rng)
		outdoor := uniform(rng, -20, 5)

		res := b.Balance(rooms, rads, links, settings, outdoor)

		raw := 0.0
		count := 0
		for _, room := range res.Rooms {
			for _, r := range room.Radiators {
				raw += FlowRate(r.HeatingLoad, settings.SupplyTemp, settings.ReturnTemp)
				count++
			}
		}
		require.Equal(t, len(rads), count)
		assert.InDelta(t, math.Floor(raw*10+0.5)/10, res.TotalFlowRate, 1e-9)

		if res.Critical != nil {
			for _, r := range res.Radiators() {
				assert.LessOrEqual(t, r.PressureLoss, res.Critical.PressureLoss)
			}
		}
	}
}

func FuzzComponentTransmissionLoss(f *testing.F) {
	f.Add(10.0, 1.4, 2.0, 2.8, 20.0, -13.0)
	f.Add(1.0, 0.2, 5.0, 1.1, 18.0, -16.0)
	f.Fuzz(func(t *testing.T, area, u, windowArea, windowU, indoor, outdoor float64) {
		for _, v := range []float64{area, u, windowArea, windowU, indoor, outdoor} {
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1e6 {
				t.Skip()
			}
		}
		if area < 0 || u < 0 || windowArea < 0 || windowU < 0 {
			t.Skip()
		}
		c := model.BuildingComponent{
			Area:    area,
			UValue:  u,
			Windows: []model.WindowComponent{{Area: windowArea, UValue: windowU}},
		}
		loss := ComponentTransmissionLoss(c, indoor, outdoor)
		if loss < 0 {
			t.Fatalf("negative loss %v", loss)
		}
		if indoor <= outdoor && loss != 0 {
			t.Fatalf("loss %v without temperature difference", loss)
		}
	})
}
