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

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/antst/hydrobal/internal/model"
	"github.com/antst/hydrobal/internal/reference"
)

const (
	insertProject = `INSERT INTO project (name, building_type, building_age_class, climate_zone_id,
                     design_outdoor_temp, created_at, updated_at)
VALUES (:name, :building_type, :building_age_class, :climate_zone_id,
        :design_outdoor_temp, :created_at, :updated_at)`
	insertSettings = `INSERT INTO system_settings (project_id, supply_temp, return_temp, valve_type, valve_dn,
                             specific_pressure_loss)
VALUES (:project_id, :supply_temp, :return_temp, :valve_type, :valve_dn, :specific_pressure_loss)`
)

// CreateProject stores p with the default system settings. A zero design
// outdoor temperature is taken from the climate zone when the zone is known.
func (s *Store) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	if p.DesignOutdoorTemp == 0 {
		if zone, ok := reference.FindClimateZone(p.ClimateZoneID); ok {
			p.DesignOutdoorTemp = zone.DesignOutdoorTemp
		}
	}
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		r, err := tx.NamedExecContext(ctx, insertProject, p)
		if err != nil {
			return errors.Wrap(err, "insert project")
		}
		if p.ID, err = getNewInsertedID(r); err != nil {
			return err
		}
		settings := s.defaults
		settings.ProjectID = p.ID
		if _, err := tx.NamedExecContext(ctx, insertSettings, settings); err != nil {
			return errors.Wrap(err, "insert system settings")
		}
		return nil
	})
	if err != nil {
		return model.Project{}, err
	}
	return p, nil
}

func (s *Store) GetProject(ctx context.Context, id int64) (p model.Project, err error) {
	if err = s.db.GetContext(ctx, &p, `SELECT * FROM project WHERE id = ?`, id); err != nil {
		err = notFound(err, "project", id)
	}
	return
}

func (s *Store) ListProjects(ctx context.Context) (projects []model.Project, err error) {
	err = s.db.SelectContext(ctx, &projects, `SELECT * FROM project ORDER BY id`)
	return projects, errors.Wrap(err, "list projects")
}

func (s *Store) UpdateProject(ctx context.Context, p model.Project) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		r, err := tx.NamedExecContext(ctx, `UPDATE project
SET name = :name, building_type = :building_type, building_age_class = :building_age_class,
    climate_zone_id = :climate_zone_id, design_outdoor_temp = :design_outdoor_temp
WHERE id = :id`, p)
		if err != nil {
			return errors.Wrap(err, "update project")
		}
		if err := expectOne(r, "project", p.ID); err != nil {
			return err
		}
		return s.touch(ctx, tx, p.ID)
	})
}

// DeleteProject removes the project and everything below it.
func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, q := range []string{
			`DELETE FROM calculation_result WHERE project_id = ?`,
			`DELETE FROM system_settings WHERE project_id = ?`,
			`DELETE FROM circuit_radiator WHERE circuit_id IN (SELECT id FROM circuit WHERE project_id = ?)`,
			`DELETE FROM circuit WHERE project_id = ?`,
			`DELETE FROM radiator WHERE project_id = ?`,
			`DELETE FROM room WHERE project_id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, q, id); err != nil {
				return errors.Wrapf(err, "delete project %d", id)
			}
		}
		r, err := tx.ExecContext(ctx, `DELETE FROM project WHERE id = ?`, id)
		if err != nil {
			return errors.Wrapf(err, "delete project %d", id)
		}
		return expectOne(r, "project", id)
	})
}

func (s *Store) GetSettings(ctx context.Context, projectID int64) (settings model.SystemSettings, err error) {
	err = s.db.GetContext(ctx, &settings, `SELECT * FROM system_settings WHERE project_id = ?`, projectID)
	if err != nil {
		err = notFound(err, "system settings of project", projectID)
	}
	return
}

func (s *Store) UpdateSettings(ctx context.Context, settings model.SystemSettings) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		r, err := tx.NamedExecContext(ctx, `UPDATE system_settings
SET supply_temp = :supply_temp, return_temp = :return_temp, valve_type = :valve_type,
    valve_dn = :valve_dn, specific_pressure_loss = :specific_pressure_loss
WHERE project_id = :project_id`, settings)
		if err != nil {
			return errors.Wrap(err, "update system settings")
		}
		if err := expectOne(r, "system settings of project", settings.ProjectID); err != nil {
			return err
		}
		return s.touch(ctx, tx, settings.ProjectID)
	})
}
