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

	"github.com/antst/hydrobal/internal/reference"
)

type sizeTable map[string]reference.ValveSize

func (s sizeTable) Size(id string, dn int) (reference.ValveSize, bool) {
	size, ok := s[id]
	return size, ok && size.DN == dn
}

func TestRequiredKv(t *testing.T) {
	// 0.05732 / √0.0156
	assert.InDelta(t, 0.459, RequiredKv(57.32, 1560), 0.001)
	assert.Equal(t, 0.0, RequiredKv(100, 0))
	assert.Equal(t, 0.0, RequiredKv(100, -5))
}

func TestFindPresetRoundsUp(t *testing.T) {
	p, ok := FindPreset(reference.DefaultCatalog(), "danfoss_ra_n", 15, 0.30)
	require.True(t, ok)
	assert.Equal(t, "5", p.Setting)
	assert.Equal(t, 0.36, p.Kv)
}

func TestFindPresetInclusiveBoundary(t *testing.T) {
	catalog := reference.DefaultCatalog()

	p, ok := FindPreset(catalog, "danfoss_ra_n", 15, 0.36)
	require.True(t, ok)
	assert.Equal(t, "5", p.Setting)

	p, ok = FindPreset(catalog, "danfoss_ra_n", 15, 0.3601)
	require.True(t, ok)
	assert.Equal(t, "6", p.Setting)
}

func TestFindPresetSmallestSetting(t *testing.T) {
	p, ok := FindPreset(reference.DefaultCatalog(), "oventrop_av6", 20, 0)
	require.True(t, ok)
	assert.Equal(t, "1", p.Setting)
}

func TestFindPresetMisses(t *testing.T) {
	catalog := reference.DefaultCatalog()

	_, ok := FindPreset(catalog, "unknown", 15, 0.5)
	assert.False(t, ok)

	_, ok = FindPreset(catalog, "danfoss_ra_n", 25, 0.5)
	assert.False(t, ok)

	// beyond setting N, no extrapolation and no silent fallback to the maximum
	_, ok = FindPreset(catalog, "danfoss_ra_n", 15, 0.74)
	assert.False(t, ok)
}

func TestFindPresetUnorderedTable(t *testing.T) {
	table := sizeTable{"x": {DN: 15, Presets: []reference.ValvePreset{
		{Setting: "c", Kv: 0.9},
		{Setting: "a", Kv: 0.2},
		{Setting: "b", Kv: 0.5},
	}}}

	p, ok := FindPreset(table, "x", 15, 0.3)
	require.True(t, ok)
	assert.Equal(t, "b", p.Setting)
}
