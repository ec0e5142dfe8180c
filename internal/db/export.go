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

package db

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/antst/hydrobal/internal/model"
)

const ExportVersion = 1

// Export is the whole dataset as one JSON document.
type Export struct {
	Version          int                     `json:"version"`
	ExportedAt       time.Time               `json:"exportedAt"`
	Projects         []model.Project         `json:"projects"`
	Rooms            []model.Room            `json:"rooms"`
	Radiators        []model.Radiator        `json:"radiators"`
	Circuits         []model.Circuit         `json:"circuits"`
	CircuitRadiators []model.CircuitRadiator `json:"circuitRadiators"`
	SystemSettings   []model.SystemSettings  `json:"systemSettings"`
}

func (s *Store) Export(ctx context.Context, w io.Writer) error {
	data := Export{Version: ExportVersion, ExportedAt: s.now()}
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		var rows []roomRow
		for _, q := range []struct {
			dest  interface{}
			query string
		}{
			{&data.Projects, `SELECT * FROM project ORDER BY id`},
			{&rows, `SELECT * FROM room ORDER BY id`},
			{&data.Radiators, `SELECT * FROM radiator ORDER BY id`},
			{&data.Circuits, `SELECT * FROM circuit ORDER BY id`},
			{&data.CircuitRadiators, `SELECT * FROM circuit_radiator ORDER BY id`},
			{&data.SystemSettings, `SELECT * FROM system_settings ORDER BY id`},
		} {
			if err := tx.SelectContext(ctx, q.dest, q.query); err != nil {
				return errors.Wrap(err, "export")
			}
		}
		var err error
		data.Rooms, err = rooms(rows)
		return err
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(data), "encode export")
}

// Import replaces all stored data with an export. Cached results are dropped.
func (s *Store) Import(ctx context.Context, r io.Reader) error {
	var data Export
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return errors.Wrap(err, "decode export")
	}
	if data.Version != ExportVersion {
		return errors.Wrapf(ErrUnsupportedVersion, "version %d", data.Version)
	}

	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, table := range []string{
			"calculation_result", "circuit_radiator", "circuit", "system_settings", "radiator", "room", "project",
		} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return errors.Wrapf(err, "clear %s", table)
			}
		}

		for _, p := range data.Projects {
			if _, err := tx.NamedExecContext(ctx, `INSERT INTO project (id, name, building_type, building_age_class,
                     climate_zone_id, design_outdoor_temp, created_at, updated_at)
VALUES (:id, :name, :building_type, :building_age_class, :climate_zone_id, :design_outdoor_temp,
        :created_at, :updated_at)`, p); err != nil {
				return errors.Wrapf(err, "import project %d", p.ID)
			}
		}
		for _, r := range data.Rooms {
			row, err := newRoomRow(r)
			if err != nil {
				return err
			}
			if _, err := tx.NamedExecContext(ctx,
				`INSERT INTO room (id, `+roomColumns+`) VALUES (:id, `+roomValues+`)`, row); err != nil {
				return errors.Wrapf(err, "import room %d", r.ID)
			}
		}
		for _, r := range data.Radiators {
			if _, err := tx.NamedExecContext(ctx, `INSERT INTO radiator (id, project_id, room_id, type, height, length,
                      rated_output, valve_type, valve_dn)
VALUES (:id, :project_id, :room_id, :type, :height, :length, :rated_output, :valve_type, :valve_dn)`, r); err != nil {
				return errors.Wrapf(err, "import radiator %d", r.ID)
			}
		}
		for _, c := range data.Circuits {
			if _, err := tx.NamedExecContext(ctx,
				`INSERT INTO circuit (id, project_id, name) VALUES (:id, :project_id, :name)`, c); err != nil {
				return errors.Wrapf(err, "import circuit %d", c.ID)
			}
		}
		for _, l := range data.CircuitRadiators {
			if _, err := tx.NamedExecContext(ctx, `INSERT INTO circuit_radiator (id, circuit_id, radiator_id, pipe_length,
                              pipe_length_return, sort_order)
VALUES (:id, :circuit_id, :radiator_id, :pipe_length, :pipe_length_return, :sort_order)`, l); err != nil {
				return errors.Wrapf(err, "import circuit radiator %d", l.ID)
			}
		}
		for _, st := range data.SystemSettings {
			if _, err := tx.NamedExecContext(ctx, `INSERT INTO system_settings (id, project_id, supply_temp, return_temp,
                             valve_type, valve_dn, specific_pressure_loss)
VALUES (:id, :project_id, :supply_temp, :return_temp, :valve_type, :valve_dn, :specific_pressure_loss)`, st); err != nil {
				return errors.Wrapf(err, "import system settings %d", st.ID)
			}
		}
		return nil
	})
}
