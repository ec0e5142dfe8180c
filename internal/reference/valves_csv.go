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

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// ValveRow is one line of a valve table file:
//
//	valve_id,name,manufacturer,dn,setting,kv
type ValveRow struct {
	ValveID      string  `csv:"valve_id"`
	Name         string  `csv:"name"`
	Manufacturer string  `csv:"manufacturer"`
	DN           int     `csv:"dn"`
	Setting      string  `csv:"setting"`
	Kv           float64 `csv:"kv"`
}

// LoadCSV merges valve rows into the catalog. All rows of one valve/DN pair
// replace the built-in presets of that pair.
func (c *Catalog) LoadCSV(r io.Reader) (int, error) {
	var rows []*ValveRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, errors.Wrap(err, "failed to parse valve table")
	}

	type key struct {
		id string
		dn int
	}
	grouped := make(map[key][]ValvePreset)
	var types []ValveType
	seen := make(map[string]int)
	var sizeOrder []key

	for i, row := range rows {
		if row.ValveID == "" {
			return 0, errors.Errorf("valve table row %d: empty valve_id", i+1)
		}
		if row.DN <= 0 || row.Kv <= 0 {
			return 0, errors.Errorf("valve table row %d: dn and kv must be positive", i+1)
		}
		if _, ok := seen[row.ValveID]; !ok {
			seen[row.ValveID] = len(types)
			types = append(types, ValveType{ID: row.ValveID, Name: row.Name, Manufacturer: row.Manufacturer})
		}
		k := key{row.ValveID, row.DN}
		if _, ok := grouped[k]; !ok {
			sizeOrder = append(sizeOrder, k)
		}
		grouped[k] = append(grouped[k], ValvePreset{Setting: row.Setting, Kv: row.Kv})
	}

	for _, k := range sizeOrder {
		vt := &types[seen[k.id]]
		vt.Sizes = append(vt.Sizes, ValveSize{DN: k.dn, Presets: grouped[k]})
	}
	for _, vt := range types {
		c.Add(vt)
	}
	return len(rows), nil
}

func (c *Catalog) LoadCSVFile(fileName string) (int, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open valve table %s", fileName)
	}
	defer f.Close()
	n, err := c.LoadCSV(f)
	return n, errors.WithMessage(err, fileName)
}
