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
)

func (s *Store) CreateCircuit(ctx context.Context, c model.Circuit) (model.Circuit, error) {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := projectExists(ctx, tx, c.ProjectID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `INSERT INTO circuit (project_id, name) VALUES (?, ?)`, c.ProjectID, c.Name)
		if err != nil {
			return errors.Wrap(err, "insert circuit")
		}
		c.ID, err = getNewInsertedID(res)
		return err
	})
	if err != nil {
		return model.Circuit{}, err
	}
	return c, nil
}

func (s *Store) ListCircuits(ctx context.Context, projectID int64) (circuits []model.Circuit, err error) {
	err = s.db.SelectContext(ctx, &circuits, `SELECT * FROM circuit WHERE project_id = ? ORDER BY id`, projectID)
	return circuits, errors.Wrap(err, "list circuits")
}

func (s *Store) RenameCircuit(ctx context.Context, id int64, name string) error {
	r, err := s.db.ExecContext(ctx, `UPDATE circuit SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return errors.Wrap(err, "rename circuit")
	}
	return expectOne(r, "circuit", id)
}

// DeleteCircuit removes the circuit and its radiator assignments.
func (s *Store) DeleteCircuit(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		projectID, err := ownerOf(ctx, tx, "circuit", id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM circuit_radiator WHERE circuit_id = ?`, id); err != nil {
			return errors.Wrapf(err, "delete circuit %d", id)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM circuit WHERE id = ?`, id); err != nil {
			return errors.Wrapf(err, "delete circuit %d", id)
		}
		return s.touch(ctx, tx, projectID)
	})
}

// AssignRadiator puts a radiator on a circuit of the same project. A radiator
// sits on one circuit at most, an earlier assignment is replaced.
func (s *Store) AssignRadiator(ctx context.Context, link model.CircuitRadiator) (model.CircuitRadiator, error) {
	if link.PipeLength < 0 || (link.PipeLengthReturn != nil && *link.PipeLengthReturn < 0) {
		return model.CircuitRadiator{}, errors.Errorf("negative pipe length for radiator %d", link.RadiatorID)
	}
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		circuitProject, err := ownerOf(ctx, tx, "circuit", link.CircuitID)
		if err != nil {
			return err
		}
		radiatorProject, err := ownerOf(ctx, tx, "radiator", link.RadiatorID)
		if err != nil {
			return err
		}
		if circuitProject != radiatorProject {
			return errors.Errorf("radiator %d and circuit %d belong to different projects", link.RadiatorID, link.CircuitID)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM circuit_radiator WHERE radiator_id = ?`, link.RadiatorID); err != nil {
			return errors.Wrap(err, "replace circuit assignment")
		}
		res, err := tx.NamedExecContext(ctx, `INSERT INTO circuit_radiator (circuit_id, radiator_id, pipe_length,
                              pipe_length_return, sort_order)
VALUES (:circuit_id, :radiator_id, :pipe_length, :pipe_length_return, :sort_order)`, link)
		if err != nil {
			return errors.Wrap(err, "insert circuit assignment")
		}
		if link.ID, err = getNewInsertedID(res); err != nil {
			return err
		}
		return s.touch(ctx, tx, circuitProject)
	})
	if err != nil {
		return model.CircuitRadiator{}, err
	}
	return link, nil
}

func (s *Store) UnassignRadiator(ctx context.Context, radiatorID int64) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		projectID, err := ownerOf(ctx, tx, "radiator", radiatorID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM circuit_radiator WHERE radiator_id = ?`, radiatorID); err != nil {
			return errors.Wrap(err, "delete circuit assignment")
		}
		return s.touch(ctx, tx, projectID)
	})
}

func (s *Store) ListCircuitLinks(ctx context.Context, circuitID int64) (links []model.CircuitRadiator, err error) {
	err = s.db.SelectContext(ctx, &links,
		`SELECT * FROM circuit_radiator WHERE circuit_id = ? ORDER BY sort_order, id`, circuitID)
	return links, errors.Wrap(err, "list circuit radiators")
}

func (s *Store) ListProjectLinks(ctx context.Context, projectID int64) ([]model.CircuitRadiator, error) {
	return listProjectLinks(ctx, s.db, projectID)
}

func listProjectLinks(ctx context.Context, q sqlx.QueryerContext, projectID int64) (links []model.CircuitRadiator, err error) {
	err = sqlx.SelectContext(ctx, q, &links, `SELECT cr.*
FROM circuit_radiator cr
         JOIN circuit c ON c.id = cr.circuit_id
WHERE c.project_id = ?
ORDER BY cr.circuit_id, cr.sort_order, cr.id`, projectID)
	return links, errors.Wrap(err, "list project circuit radiators")
}
