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

// CreateRadiator stores r in its room's project. A zero rated output is
// looked up in the radiator table when type and height are listed there.
func (s *Store) CreateRadiator(ctx context.Context, r model.Radiator) (model.Radiator, error) {
	if r.RatedOutput == 0 {
		if rated, ok := reference.RatedOutput(r.Type, r.Height, r.Length); ok {
			r.RatedOutput = rated
		}
	}
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		projectID, err := ownerOf(ctx, tx, "room", r.RoomID)
		if err != nil {
			return err
		}
		r.ProjectID = projectID
		res, err := tx.NamedExecContext(ctx, `INSERT INTO radiator (project_id, room_id, type, height, length,
                      rated_output, valve_type, valve_dn)
VALUES (:project_id, :room_id, :type, :height, :length, :rated_output, :valve_type, :valve_dn)`, r)
		if err != nil {
			return errors.Wrap(err, "insert radiator")
		}
		if r.ID, err = getNewInsertedID(res); err != nil {
			return err
		}
		return s.touch(ctx, tx, projectID)
	})
	if err != nil {
		return model.Radiator{}, err
	}
	return r, nil
}

func (s *Store) GetRadiator(ctx context.Context, id int64) (r model.Radiator, err error) {
	if err = s.db.GetContext(ctx, &r, `SELECT * FROM radiator WHERE id = ?`, id); err != nil {
		err = notFound(err, "radiator", id)
	}
	return
}

func (s *Store) ListRadiators(ctx context.Context, projectID int64) ([]model.Radiator, error) {
	return listRadiators(ctx, s.db, projectID)
}

func listRadiators(ctx context.Context, q sqlx.QueryerContext, projectID int64) (radiators []model.Radiator, err error) {
	err = sqlx.SelectContext(ctx, q, &radiators, `SELECT * FROM radiator WHERE project_id = ? ORDER BY id`, projectID)
	return radiators, errors.Wrap(err, "list radiators")
}

func (s *Store) ListRoomRadiators(ctx context.Context, roomID int64) (radiators []model.Radiator, err error) {
	err = s.db.SelectContext(ctx, &radiators, `SELECT * FROM radiator WHERE room_id = ? ORDER BY id`, roomID)
	return radiators, errors.Wrap(err, "list room radiators")
}

// UpdateRadiator replaces the radiator record. Moving it to a room of
// another project is refused.
func (s *Store) UpdateRadiator(ctx context.Context, r model.Radiator) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		projectID, err := ownerOf(ctx, tx, "radiator", r.ID)
		if err != nil {
			return err
		}
		roomProjectID, err := ownerOf(ctx, tx, "room", r.RoomID)
		if err != nil {
			return err
		}
		if roomProjectID != projectID {
			return errors.Errorf("room %d is not in project %d of radiator %d", r.RoomID, projectID, r.ID)
		}
		r.ProjectID = projectID
		if _, err := tx.NamedExecContext(ctx, `UPDATE radiator
SET room_id = :room_id, type = :type, height = :height, length = :length, rated_output = :rated_output,
    valve_type = :valve_type, valve_dn = :valve_dn
WHERE id = :id`, r); err != nil {
			return errors.Wrap(err, "update radiator")
		}
		return s.touch(ctx, tx, projectID)
	})
}

// DeleteRadiator removes the radiator and its circuit assignment.
func (s *Store) DeleteRadiator(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		projectID, err := ownerOf(ctx, tx, "radiator", id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM circuit_radiator WHERE radiator_id = ?`, id); err != nil {
			return errors.Wrapf(err, "delete radiator %d", id)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM radiator WHERE id = ?`, id); err != nil {
			return errors.Wrapf(err, "delete radiator %d", id)
		}
		return s.touch(ctx, tx, projectID)
	})
}
