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
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/antst/hydrobal/internal/calc"
	"github.com/antst/hydrobal/internal/model"
)

type resultRow struct {
	ProjectID  int64     `db:"project_id"`
	ComputedAt time.Time `db:"computed_at"`
	Stale      bool      `db:"stale"`
	Result     string    `db:"result"`
}

// SaveResults replaces the cached result of the project and marks it fresh.
func (s *Store) SaveResults(ctx context.Context, projectID int64, result calc.SystemResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "encode result")
	}
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := projectExists(ctx, tx, projectID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO calculation_result (project_id, computed_at, stale, result)
VALUES (?, ?, FALSE, ?)
ON CONFLICT (project_id) DO UPDATE SET computed_at = excluded.computed_at,
                                       stale       = FALSE,
                                       result      = excluded.result`,
			projectID, s.now(), string(data))
		return errors.Wrap(err, "save result")
	})
}

// LoadResults returns the cached result and whether it is stale.
func (s *Store) LoadResults(ctx context.Context, projectID int64) (calc.SystemResult, bool, error) {
	var row resultRow
	if err := s.db.GetContext(ctx, &row, `SELECT * FROM calculation_result WHERE project_id = ?`, projectID); err != nil {
		return calc.SystemResult{}, true, notFound(err, "result of project", projectID)
	}
	var result calc.SystemResult
	if err := yaml.Unmarshal([]byte(row.Result), &result); err != nil {
		return calc.SystemResult{}, true, errors.Wrapf(err, "decode result of project %d", projectID)
	}
	return result, row.Stale, nil
}

// ResultsStale reports whether the project has no result or one older than
// its last modification.
func (s *Store) ResultsStale(ctx context.Context, projectID int64) (bool, error) {
	var stale bool
	err := s.db.GetContext(ctx, &stale, `SELECT stale FROM calculation_result WHERE project_id = ?`, projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return true, errors.Wrap(err, "read result state")
	}
	return stale, nil
}

// Snapshot loads everything the balance reads for one project.
func (s *Store) Snapshot(ctx context.Context, projectID int64) (snap model.Snapshot, err error) {
	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &snap.Project, `SELECT * FROM project WHERE id = ?`, projectID); err != nil {
			return notFound(err, "project", projectID)
		}
		if err := tx.GetContext(ctx, &snap.Settings, `SELECT * FROM system_settings WHERE project_id = ?`, projectID); err != nil {
			return notFound(err, "system settings of project", projectID)
		}
		if snap.Rooms, err = listRooms(ctx, tx, projectID); err != nil {
			return err
		}
		if snap.Radiators, err = listRadiators(ctx, tx, projectID); err != nil {
			return err
		}
		snap.Links, err = listProjectLinks(ctx, tx, projectID)
		return err
	})
	return snap, err
}
