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

package internal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antst/hydrobal/internal/config"
	"github.com/antst/hydrobal/internal/db"
	"github.com/antst/hydrobal/internal/model"
)

func newTestController(t *testing.T, args ...string) *BalanceController {
	t.Helper()
	dir := t.TempDir()
	base := []string{"hydrobal",
		"-c", filepath.Join(dir, "missing.yaml"),
		"-d", filepath.Join(dir, "hydrobal.db"),
	}
	cfg, err := config.Parse(append(base, args...))
	require.NoError(t, err)

	c, err := newBalanceController(cfg)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	c.stdout = &bytes.Buffer{}
	return c
}

func createProject(t *testing.T, c *BalanceController) model.Project {
	t.Helper()
	ctx := context.Background()

	p, err := c.store.CreateProject(ctx, model.Project{Name: "Musterhaus", ClimateZoneID: "berlin"})
	require.NoError(t, err)
	room, err := c.store.CreateRoom(ctx, model.Room{
		ProjectID: p.ID, Name: "Living room", UsageType: model.LivingRoom, Length: 5, Width: 4, Height: 2.5,
		Components: []model.BuildingComponent{{
			Type: model.ExteriorWall, Area: 10, UValue: 1.4,
			Windows: []model.WindowComponent{{Area: 2, UValue: 2.8}},
		}},
	})
	require.NoError(t, err)
	_, err = c.store.CreateRadiator(ctx, model.Radiator{RoomID: room.ID, Type: model.Type22, RatedOutput: 1000})
	require.NoError(t, err)
	return p
}

func TestCalculateCSVReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")
	c := newTestController(t, "-f", "csv", "-o", out)
	p := createProject(t, c)
	c.cfg.Command.ProjectID = p.ID

	require.NoError(t, c.run(context.Background()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Living room,"))
	assert.True(t, strings.HasSuffix(lines[1], ",835,1000,810,97,adequate,47.9,3120,0.271,5,danfoss_ra_n,15,true"), lines[1])

	stale, err := c.store.ResultsStale(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, stale)
}

func TestCalculateYAMLReportToStdout(t *testing.T) {
	c := newTestController(t)
	p := createProject(t, c)
	c.cfg.Command.ProjectID = p.ID

	require.NoError(t, c.run(context.Background()))

	out := c.stdout.(*bytes.Buffer).String()
	assert.Contains(t, out, "name: Musterhaus")
	assert.Contains(t, out, "total_heating_load: 835")
	assert.Contains(t, out, "status: adequate")
}

func TestCalculateUnknownProject(t *testing.T) {
	c := newTestController(t)
	c.cfg.Command.ProjectID = 42
	assert.ErrorIs(t, c.run(context.Background()), db.ErrNotFound)
}

func TestRunClosesStoreOnError(t *testing.T) {
	c := newTestController(t)
	c.cfg.Command.ProjectID = 42

	err := c.Run()
	assert.ErrorIs(t, err, db.ErrNotFound)

	_, err = c.store.ListProjects(context.Background())
	assert.Error(t, err, "store closed by Run")
}

func TestListProjects(t *testing.T) {
	c := newTestController(t)
	p := createProject(t, c)

	require.NoError(t, c.run(context.Background()))
	out := c.stdout.(*bytes.Buffer).String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Musterhaus")
	assert.Contains(t, out, "stale")

	_, _, err := c.Calculate(context.Background(), p.ID)
	require.NoError(t, err)
	c.stdout = &bytes.Buffer{}
	c.cfg.Command.List = true
	require.NoError(t, c.run(context.Background()))
	assert.Contains(t, c.stdout.(*bytes.Buffer).String(), "current")
}

func TestExportImportFiles(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "dump.json")

	src := newTestController(t, "--export", dump)
	createProject(t, src)
	require.NoError(t, src.run(context.Background()))

	dst := newTestController(t, "--import", dump)
	require.NoError(t, dst.run(context.Background()))

	projects, err := dst.store.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Musterhaus", projects[0].Name)
}

func TestValveTablesFromConfig(t *testing.T) {
	dir := t.TempDir()
	table := filepath.Join(dir, "valves.csv")
	require.NoError(t, os.WriteFile(table, []byte("valve_id,name,manufacturer,dn,setting,kv\n"+
		"acme_v1,Acme V1,Acme,15,A,0.2\n"+
		"acme_v1,Acme V1,Acme,15,B,0.5\n"), 0o600))
	cfgFile := filepath.Join(dir, "hydrobal.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("valve_tables:\n  - "+table+"\ndefaults:\n  valve_type: acme_v1\n"), 0o600))

	cfg, err := config.Parse([]string{"hydrobal", "-c", cfgFile, "-d", filepath.Join(dir, "hydrobal.db")})
	require.NoError(t, err)
	c, err := newBalanceController(cfg)
	require.NoError(t, err)
	defer c.Close()

	size, ok := c.catalog.Size("acme_v1", 15)
	require.True(t, ok)
	assert.Len(t, size.Presets, 2)

	p := createProject(t, c)
	_, result, err := c.Calculate(context.Background(), p.ID)
	require.NoError(t, err)
	r := result.Radiators()[0]
	assert.Equal(t, "acme_v1", r.EffectiveValveType)
	require.NotNil(t, r.Preset)
	assert.Equal(t, "B", r.Preset.Setting)
}

func TestMissingValveTable(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Parse([]string{"hydrobal", "-c", filepath.Join(dir, "missing.yaml"), "-d", filepath.Join(dir, "x.db")})
	require.NoError(t, err)
	cfg.ValveTables = []string{filepath.Join(dir, "nope.csv")}
	_, err = newBalanceController(cfg)
	assert.Error(t, err)
}
