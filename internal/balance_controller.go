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
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/antst/hydrobal/internal/calc"
	"github.com/antst/hydrobal/internal/config"
	"github.com/antst/hydrobal/internal/db"
	"github.com/antst/hydrobal/internal/logger"
	"github.com/antst/hydrobal/internal/model"
	"github.com/antst/hydrobal/internal/reference"
	"github.com/antst/hydrobal/internal/report"
)

type BalanceController struct {
	cfg      *config.Config
	store    *db.Store
	catalog  *reference.Catalog
	balancer *calc.Balancer
	log      *zap.SugaredLogger
	stdout   io.Writer
	now      func() time.Time
}

// NewBalanceController reads the configuration, loads the valve tables and
// opens the store.
func NewBalanceController() (*BalanceController, error) {
	return newBalanceController(config.Get())
}

func newBalanceController(cfg *config.Config) (*BalanceController, error) {
	c := &BalanceController{
		cfg:     cfg,
		catalog: reference.DefaultCatalog(),
		log:     logger.Named("balance"),
		stdout:  os.Stdout,
		now:     time.Now,
	}

	for _, table := range cfg.ValveTables {
		n, err := c.catalog.LoadCSVFile(table)
		if err != nil {
			return nil, errors.Wrapf(err, "valve table %s", table)
		}
		c.log.Infof("Loaded %d valve presets from `%v`", n, table)
	}
	for _, vt := range c.catalog.Types() {
		c.log.Debugf("Valve `%v`: %v %v, %d sizes", vt.ID, vt.Manufacturer, vt.Name, len(vt.Sizes))
	}
	c.balancer = calc.NewBalancer(c.catalog, cfg.Calculation.Options())

	store, err := db.Open(cfg.DBFile, cfg.Defaults.Settings(0))
	if err != nil {
		return nil, err
	}
	c.store = store
	return c, nil
}

func (c *BalanceController) Close() {
	if err := c.store.Close(); err != nil {
		c.log.Errorf("Failed to close DB: %v", err)
	}
}

// Run executes the command line request and closes the store.
func (c *BalanceController) Run() error {
	defer c.Close()
	return c.run(context.Background())
}

func (c *BalanceController) run(ctx context.Context) error {
	cmd := c.cfg.Command
	if cmd.Help {
		return nil
	}

	if cmd.ImportFile != "" {
		if err := c.importFile(ctx, cmd.ImportFile); err != nil {
			return err
		}
	}
	if cmd.ProjectID != 0 {
		if err := c.writeReport(ctx, cmd.ProjectID); err != nil {
			return err
		}
	}
	if cmd.ExportFile != "" {
		if err := c.exportFile(ctx, cmd.ExportFile); err != nil {
			return err
		}
	}
	if cmd.List || (cmd.ProjectID == 0 && cmd.ImportFile == "" && cmd.ExportFile == "") {
		return c.listProjects(ctx)
	}
	return nil
}

// Calculate balances the project and stores the result.
func (c *BalanceController) Calculate(ctx context.Context, projectID int64) (model.Snapshot, calc.SystemResult, error) {
	snap, err := c.store.Snapshot(ctx, projectID)
	if err != nil {
		return model.Snapshot{}, calc.SystemResult{}, err
	}
	log := c.log.With("project", projectID)
	log.Debugf("Balancing %d rooms, %d radiators", len(snap.Rooms), len(snap.Radiators))
	if _, ok := c.catalog.Find(snap.Settings.ValveType); !ok {
		log.Warnf("Valve `%v` of the system settings is not in the catalog", snap.Settings.ValveType)
	}

	result := c.balancer.BalanceSnapshot(snap)
	c.logResult(log, result)

	if err := c.store.SaveResults(ctx, projectID, result); err != nil {
		return model.Snapshot{}, calc.SystemResult{}, err
	}
	return snap, result, nil
}

func (c *BalanceController) logResult(log *zap.SugaredLogger, result calc.SystemResult) {
	for _, room := range result.Rooms {
		log.Debugf("Room `%v`: load %.0f W, output %.0f W, coverage %.0f%%",
			room.RoomName, room.HeatingLoad.Total, room.TotalRadiatorOutput, room.CoveragePercent)
		if room.EqualShareFallback {
			log.Warnf("Room `%v`: radiators have no rated output, each one gets the full load", room.RoomName)
		}
		for _, r := range room.Radiators {
			if r.Preset == nil {
				log.Warnf("Radiator %d in `%v`: no preset of %v DN%d reaches Kv %.3f",
					r.RadiatorID, r.RoomName, r.EffectiveValveType, r.EffectiveValveDN, r.KvValue)
			}
		}
	}
	if result.Critical != nil {
		log.Infof("Critical radiator %d in `%v`: %.0f Pa", result.Critical.RadiatorID,
			result.Critical.RoomName, result.Critical.PressureLoss)
	}
	log.Infof("Heating load %.0f W, flow %.1f L/h", result.TotalHeatingLoad, result.TotalFlowRate)
}

func (c *BalanceController) writeReport(ctx context.Context, projectID int64) error {
	snap, result, err := c.Calculate(ctx, projectID)
	if err != nil {
		return err
	}

	out, err := c.openOutput(c.cfg.Report.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch c.cfg.Report.Format {
	case config.FormatCSV:
		err = report.WriteCSV(out, result)
	default:
		err = report.WriteYAML(out, report.NewDocument(snap, result, c.now().UTC()))
	}
	if err != nil {
		return err
	}
	return out.Close()
}

func (c *BalanceController) listProjects(ctx context.Context) error {
	projects, err := c.store.ListProjects(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLIMATE ZONE\tDESIGN TEMP\tRESULT")
	for _, p := range projects {
		stale, err := c.store.ResultsStale(ctx, p.ID)
		if err != nil {
			return err
		}
		state := "current"
		if stale {
			state = "stale"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%s\n", p.ID, p.Name, p.ClimateZoneID, p.DesignOutdoorTemp, state)
	}
	return w.Flush()
}

func (c *BalanceController) exportFile(ctx context.Context, name string) error {
	out, err := c.openOutput(name)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := c.store.Export(ctx, out); err != nil {
		return err
	}
	c.log.Infof("Exported data to `%v`", name)
	return out.Close()
}

func (c *BalanceController) importFile(ctx context.Context, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open import file")
	}
	defer f.Close()
	if err := c.store.Import(ctx, f); err != nil {
		return err
	}
	c.log.Infof("Imported data from `%v`", name)
	return nil
}
