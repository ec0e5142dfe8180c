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

package reference

import "sort"

// ValvePreset is one setting of a presettable thermostatic valve, Kv in m³/h.
type ValvePreset struct {
	Setting string  `yaml:"setting" csv:"setting"`
	Kv      float64 `yaml:"kv" csv:"kv"`
}

// ValveSize holds the presets of one DN, ordered by ascending Kv.
type ValveSize struct {
	DN      int           `yaml:"dn"`
	Presets []ValvePreset `yaml:"presets"`
}

type ValveType struct {
	ID           string      `yaml:"id"`
	Name         string      `yaml:"name"`
	Manufacturer string      `yaml:"manufacturer"`
	Sizes        []ValveSize `yaml:"sizes"`
}

// Catalog maps valve type ids to their preset tables. It is filled at startup
// and read-only afterwards.
type Catalog struct {
	types map[string]*ValveType
	order []string
}

func NewCatalog(types ...ValveType) *Catalog {
	c := &Catalog{types: make(map[string]*ValveType, len(types))}
	for _, vt := range types {
		c.Add(vt)
	}
	return c
}

// DefaultCatalog returns a fresh catalog with the built-in manufacturers.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinValves()...)
}

// Add inserts a valve type. Sizes of an already known type are replaced per DN.
func (c *Catalog) Add(vt ValveType) {
	existing, ok := c.types[vt.ID]
	if !ok {
		cp := ValveType{ID: vt.ID, Name: vt.Name, Manufacturer: vt.Manufacturer}
		existing = &cp
		c.types[vt.ID] = existing
		c.order = append(c.order, vt.ID)
	}
	if vt.Name != "" {
		existing.Name = vt.Name
	}
	if vt.Manufacturer != "" {
		existing.Manufacturer = vt.Manufacturer
	}

	for _, size := range vt.Sizes {
		presets := make([]ValvePreset, len(size.Presets))
		copy(presets, size.Presets)
		sort.SliceStable(presets, func(i, j int) bool { return presets[i].Kv < presets[j].Kv })
		size.Presets = presets

		replaced := false
		for i := range existing.Sizes {
			if existing.Sizes[i].DN == size.DN {
				existing.Sizes[i] = size
				replaced = true
				break
			}
		}
		if !replaced {
			existing.Sizes = append(existing.Sizes, size)
		}
	}
	sort.Slice(existing.Sizes, func(i, j int) bool { return existing.Sizes[i].DN < existing.Sizes[j].DN })
}

func (c *Catalog) Find(id string) (ValveType, bool) {
	vt, ok := c.types[id]
	if !ok {
		return ValveType{}, false
	}
	return *vt, true
}

// Size returns the preset table of a valve type for a DN.
func (c *Catalog) Size(id string, dn int) (ValveSize, bool) {
	vt, ok := c.types[id]
	if !ok {
		return ValveSize{}, false
	}
	for _, s := range vt.Sizes {
		if s.DN == dn {
			return s, true
		}
	}
	return ValveSize{}, false
}

// Types lists valve types in insertion order.
func (c *Catalog) Types() []ValveType {
	out := make([]ValveType, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.types[id])
	}
	return out
}

func presets(kv ...float64) []ValvePreset {
	settings := []string{"1", "2", "3", "4", "5", "6", "7"}
	out := make([]ValvePreset, len(kv))
	for i, v := range kv {
		s := "N"
		if i < len(settings) {
			s = settings[i]
		}
		out[i] = ValvePreset{Setting: s, Kv: v}
	}
	return out
}

func builtinValves() []ValveType {
	return []ValveType{
		{
			ID: "danfoss_ra_n", Name: "RA-N", Manufacturer: "Danfoss",
			Sizes: []ValveSize{
				{DN: 10, Presets: presets(0.04, 0.10, 0.18, 0.31, 0.50, 0.73, 0.90, 1.00)},
				{DN: 15, Presets: presets(0.04, 0.08, 0.15, 0.25, 0.36, 0.49, 0.64, 0.73)},
				{DN: 20, Presets: presets(0.10, 0.23, 0.42, 0.65, 1.05, 1.50, 2.10, 2.60)},
			},
		},
		{
			ID: "heimeier_v_exact", Name: "V-exact II", Manufacturer: "Heimeier",
			Sizes: []ValveSize{
				{DN: 10, Presets: presets(0.03, 0.09, 0.16, 0.27, 0.42, 0.62, 0.86)},
				{DN: 15, Presets: presets(0.04, 0.10, 0.20, 0.34, 0.54, 0.80, 1.14)},
				{DN: 20, Presets: presets(0.10, 0.24, 0.44, 0.72, 1.10, 1.58, 2.20)},
			},
		},
		{
			ID: "oventrop_av6", Name: "AV-6", Manufacturer: "Oventrop",
			Sizes: []ValveSize{
				{DN: 10, Presets: presets(0.04, 0.10, 0.19, 0.32, 0.52, 0.75)},
				{DN: 15, Presets: presets(0.06, 0.14, 0.27, 0.45, 0.72, 1.05)},
				{DN: 20, Presets: presets(0.10, 0.25, 0.48, 0.80, 1.20, 1.80)},
			},
		},
	}
}
