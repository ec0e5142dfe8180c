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

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/antst/hydrobal/internal/model"
	"github.com/antst/hydrobal/internal/reference"
)

const (
	roomColumns = `project_id, name, usage_type, length, width, height, floor_position,
                  desired_temp, air_change_rate, components`
	roomValues = `:project_id, :name, :usage_type, :length, :width, :height, :floor_position,
        :desired_temp, :air_change_rate, :components`
)

// roomRow keeps the building components of a room as JSON text.
type roomRow struct {
	model.Room
	ComponentsJSON string `db:"components"`
}

func newRoomRow(r model.Room) (roomRow, error) {
	components := r.Components
	if components == nil {
		components = []model.BuildingComponent{}
	}
	data, err := json.Marshal(components)
	if err != nil {
		return roomRow{}, errors.Wrapf(err, "encode components of room %q", r.Name)
	}
	return roomRow{Room: r, ComponentsJSON: string(data)}, nil
}

func (row roomRow) room() (model.Room, error) {
	r := row.Room
	if err := json.Unmarshal([]byte(row.ComponentsJSON), &r.Components); err != nil {
		return model.Room{}, errors.Wrapf(err, "decode components of room %d", r.ID)
	}
	return r, nil
}

func rooms(rows []roomRow) ([]model.Room, error) {
	res := make([]model.Room, 0, len(rows))
	for _, row := range rows {
		r, err := row.room()
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

// prepareComponents copies the components of a room, gives new components
// and windows a uuid and fills zero U-values from the building age class.
func prepareComponents(in []model.BuildingComponent, age model.BuildingAgeClass) []model.BuildingComponent {
	if in == nil {
		return nil
	}
	out := make([]model.BuildingComponent, len(in))
	for i, c := range in {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.UValue == 0 {
			c.UValue = reference.DefaultUValue(age, c.Type)
		}
		c.Windows = append([]model.WindowComponent(nil), c.Windows...)
		for j := range c.Windows {
			w := &c.Windows[j]
			if w.ID == "" {
				w.ID = uuid.NewString()
			}
			if w.UValue == 0 {
				w.UValue = reference.DefaultUValue(age, model.Window)
			}
		}
		out[i] = c
	}
	return out
}

// CreateRoom stores r. Zero desired temperature and air change rate are
// seeded from the usage type, zero U-values from the project's age class.
func (s *Store) CreateRoom(ctx context.Context, r model.Room) (model.Room, error) {
	if r.DesiredTemp == 0 {
		r.DesiredTemp = reference.DefaultRoomTemperature(r.UsageType)
	}
	if r.AirChangeRate == 0 {
		r.AirChangeRate = reference.DefaultAirChangeRate(r.UsageType)
	}
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		age, err := projectAgeClass(ctx, tx, r.ProjectID)
		if err != nil {
			return err
		}
		r.Components = prepareComponents(r.Components, age)
		row, err := newRoomRow(r)
		if err != nil {
			return err
		}
		res, err := tx.NamedExecContext(ctx, `INSERT INTO room (`+roomColumns+`) VALUES (`+roomValues+`)`, row)
		if err != nil {
			return errors.Wrap(err, "insert room")
		}
		if r.ID, err = getNewInsertedID(res); err != nil {
			return err
		}
		return s.touch(ctx, tx, r.ProjectID)
	})
	if err != nil {
		return model.Room{}, err
	}
	return r, nil
}

func (s *Store) GetRoom(ctx context.Context, id int64) (model.Room, error) {
	var row roomRow
	if err := s.db.GetContext(ctx, &row, `SELECT * FROM room WHERE id = ?`, id); err != nil {
		return model.Room{}, notFound(err, "room", id)
	}
	return row.room()
}

func (s *Store) ListRooms(ctx context.Context, projectID int64) ([]model.Room, error) {
	return listRooms(ctx, s.db, projectID)
}

func listRooms(ctx context.Context, q sqlx.QueryerContext, projectID int64) ([]model.Room, error) {
	var rows []roomRow
	if err := sqlx.SelectContext(ctx, q, &rows, `SELECT * FROM room WHERE project_id = ? ORDER BY id`, projectID); err != nil {
		return nil, errors.Wrap(err, "list rooms")
	}
	return rooms(rows)
}

// UpdateRoom replaces the room record including its components. New
// components get ids and U-values like in CreateRoom.
func (s *Store) UpdateRoom(ctx context.Context, r model.Room) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		projectID, err := ownerOf(ctx, tx, "room", r.ID)
		if err != nil {
			return err
		}
		age, err := projectAgeClass(ctx, tx, projectID)
		if err != nil {
			return err
		}
		r.ProjectID = projectID
		r.Components = prepareComponents(r.Components, age)
		row, err := newRoomRow(r)
		if err != nil {
			return err
		}
		if _, err := tx.NamedExecContext(ctx, `UPDATE room
SET name = :name, usage_type = :usage_type, length = :length, width = :width, height = :height,
    floor_position = :floor_position, desired_temp = :desired_temp, air_change_rate = :air_change_rate,
    components = :components
WHERE id = :id`, row); err != nil {
			return errors.Wrap(err, "update room")
		}
		return s.touch(ctx, tx, projectID)
	})
}

// DeleteRoom removes the room, its radiators and their circuit assignments.
func (s *Store) DeleteRoom(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		projectID, err := ownerOf(ctx, tx, "room", id)
		if err != nil {
			return err
		}
		for _, q := range []string{
			`DELETE FROM circuit_radiator WHERE radiator_id IN (SELECT id FROM radiator WHERE room_id = ?)`,
			`DELETE FROM radiator WHERE room_id = ?`,
			`DELETE FROM room WHERE id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, q, id); err != nil {
				return errors.Wrapf(err, "delete room %d", id)
			}
		}
		return s.touch(ctx, tx, projectID)
	})
}

func projectExists(ctx context.Context, q sqlx.QueryerContext, id int64) error {
	var found int64
	if err := sqlx.GetContext(ctx, q, &found, `SELECT id FROM project WHERE id = ?`, id); err != nil {
		return notFound(err, "project", id)
	}
	return nil
}

func projectAgeClass(ctx context.Context, q sqlx.QueryerContext, id int64) (model.BuildingAgeClass, error) {
	var age model.BuildingAgeClass
	if err := sqlx.GetContext(ctx, q, &age, `SELECT building_age_class FROM project WHERE id = ?`, id); err != nil {
		return "", notFound(err, "project", id)
	}
	return age, nil
}

// ownerOf returns the project id of a row in room, radiator or circuit.
func ownerOf(ctx context.Context, q sqlx.QueryerContext, table string, id int64) (int64, error) {
	var projectID int64
	if err := sqlx.GetContext(ctx, q, &projectID, `SELECT project_id FROM `+table+` WHERE id = ?`, id); err != nil {
		return 0, notFound(err, table, id)
	}
	return projectID, nil
}
