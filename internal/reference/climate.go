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

// Package reference holds the static engineering tables: design outdoor
// temperatures, default U-values, room defaults, radiator outputs and valve
// Kv presets. Lookups report a miss with ok == false.
package reference

import "sort"

type ClimateZone struct {
	ID                string  `yaml:"id"`
	City              string  `yaml:"city"`
	State             string  `yaml:"state"`
	DesignOutdoorTemp float64 `yaml:"design_outdoor_temp"`
}

var climateZones = map[string]ClimateZone{
	"aachen":         {"aachen", "Aachen", "NRW", -10.0},
	"augsburg":       {"augsburg", "Augsburg", "Bayern", -14.0},
	"berlin":         {"berlin", "Berlin", "Berlin", -13.0},
	"bielefeld":      {"bielefeld", "Bielefeld", "NRW", -12.0},
	"bonn":           {"bonn", "Bonn", "NRW", -10.0},
	"braunschweig":   {"braunschweig", "Braunschweig", "Niedersachsen", -14.0},
	"bremen":         {"bremen", "Bremen", "Bremen", -12.0},
	"chemnitz":       {"chemnitz", "Chemnitz", "Sachsen", -15.0},
	"darmstadt":      {"darmstadt", "Darmstadt", "Hessen", -11.0},
	"dortmund":       {"dortmund", "Dortmund", "NRW", -12.0},
	"dresden":        {"dresden", "Dresden", "Sachsen", -15.0},
	"duesseldorf":    {"duesseldorf", "Düsseldorf", "NRW", -10.0},
	"erfurt":         {"erfurt", "Erfurt", "Thüringen", -14.0},
	"essen":          {"essen", "Essen", "NRW", -10.0},
	"frankfurt":      {"frankfurt", "Frankfurt am Main", "Hessen", -12.0},
	"freiburg":       {"freiburg", "Freiburg", "Baden-Württemberg", -12.0},
	"goettingen":     {"goettingen", "Göttingen", "Niedersachsen", -14.0},
	"halle":          {"halle", "Halle (Saale)", "Sachsen-Anhalt", -14.0},
	"hamburg":        {"hamburg", "Hamburg", "Hamburg", -12.0},
	"hannover":       {"hannover", "Hannover", "Niedersachsen", -12.0},
	"heidelberg":     {"heidelberg", "Heidelberg", "Baden-Württemberg", -11.0},
	"kaiserslautern": {"kaiserslautern", "Kaiserslautern", "Rheinland-Pfalz", -13.0},
	"karlsruhe":      {"karlsruhe", "Karlsruhe", "Baden-Württemberg", -12.0},
	"kassel":         {"kassel", "Kassel", "Hessen", -13.0},
	"kiel":           {"kiel", "Kiel", "Schleswig-Holstein", -12.0},
	"koeln":          {"koeln", "Köln", "NRW", -10.0},
	"leipzig":        {"leipzig", "Leipzig", "Sachsen", -14.0},
	"luebeck":        {"luebeck", "Lübeck", "Schleswig-Holstein", -12.0},
	"magdeburg":      {"magdeburg", "Magdeburg", "Sachsen-Anhalt", -14.0},
	"mainz":          {"mainz", "Mainz", "Rheinland-Pfalz", -11.0},
	"mannheim":       {"mannheim", "Mannheim", "Baden-Württemberg", -11.0},
	"muenchen":       {"muenchen", "München", "Bayern", -14.0},
	"muenster":       {"muenster", "Münster", "NRW", -12.0},
	"nuernberg":      {"nuernberg", "Nürnberg", "Bayern", -14.0},
	"oldenburg":      {"oldenburg", "Oldenburg", "Niedersachsen", -12.0},
	"osnabrueck":     {"osnabrueck", "Osnabrück", "Niedersachsen", -12.0},
	"potsdam":        {"potsdam", "Potsdam", "Brandenburg", -13.0},
	"regensburg":     {"regensburg", "Regensburg", "Bayern", -16.0},
	"rostock":        {"rostock", "Rostock", "Mecklenburg-Vorpommern", -12.0},
	"saarbruecken":   {"saarbruecken", "Saarbrücken", "Saarland", -12.0},
	"schwerin":       {"schwerin", "Schwerin", "Mecklenburg-Vorpommern", -12.0},
	"stuttgart":      {"stuttgart", "Stuttgart", "Baden-Württemberg", -12.0},
	"trier":          {"trier", "Trier", "Rheinland-Pfalz", -12.0},
	"ulm":            {"ulm", "Ulm", "Baden-Württemberg", -14.0},
	"wiesbaden":      {"wiesbaden", "Wiesbaden", "Hessen", -11.0},
	"wuerzburg":      {"wuerzburg", "Würzburg", "Bayern", -13.0},
}

func FindClimateZone(id string) (ClimateZone, bool) {
	z, ok := climateZones[id]
	return z, ok
}

// ClimateZones returns all zones ordered by id.
func ClimateZones() []ClimateZone {
	zones := make([]ClimateZone, 0, len(climateZones))
	for _, z := range climateZones {
		zones = append(zones, z)
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].ID < zones[j].ID })
	return zones
}
