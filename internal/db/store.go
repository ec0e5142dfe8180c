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

// Package db is the sqlite record store of projects, rooms, radiators and
// circuits, plus the cached balance result of each project.
package db

import (
	"context"
	"database/sql"
	_ "embed"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/antst/hydrobal/internal/model"
)

//go:embed schema.sql
var schema string

var (
	ErrNotFound           = errors.New("not found")
	ErrUnsupportedVersion = errors.New("unsupported export version")
)

type Store struct {
	db       *sqlx.DB
	defaults model.SystemSettings
	now      func() time.Time
}

// Open opens or creates the database file and its tables. New projects get
// a copy of defaults as their system settings.
func Open(dbFile string, defaults model.SystemSettings) (*Store, error) {
	db, err := sqlx.Open("sqlite3", dbFile)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", dbFile)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "ping %s", dbFile)
	}

	// one connection: sqlite has a single writer and :memory: is per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create tables")
	}

	return &Store{
		db:       db,
		defaults: defaults,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return errors.Wrap(tx.Commit(), "commit")
}

// touch marks the project as modified and its cached result as stale.
func (s *Store) touch(ctx context.Context, e sqlx.ExecerContext, projectID int64) error {
	if _, err := e.ExecContext(ctx, `UPDATE project SET updated_at = ? WHERE id = ?`, s.now(), projectID); err != nil {
		return errors.Wrap(err, "touch project")
	}
	if _, err := e.ExecContext(ctx, `UPDATE calculation_result SET stale = TRUE WHERE project_id = ?`, projectID); err != nil {
		return errors.Wrap(err, "mark results stale")
	}
	return nil
}

func notFound(err error, what string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrapf(ErrNotFound, "%s %d", what, id)
	}
	return errors.Wrapf(err, "%s %d", what, id)
}

func expectOne(r sql.Result, what string, id int64) error {
	n, err := r.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "%s %d", what, id)
	}
	return nil
}

func getNewInsertedID(r sql.Result) (int64, error) {
	id, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("was not inserted")
	}
	return id, nil
}
