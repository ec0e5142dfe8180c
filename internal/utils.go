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
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/antst/hydrobal/internal/config"
)

// onceCloser lets the deferred Close follow an explicit one.
type onceCloser struct {
	io.Writer
	once  sync.Once
	close func() error
	err   error
}

func (o *onceCloser) Close() error {
	o.once.Do(func() {
		if o.close != nil {
			o.err = o.close()
		}
	})
	return o.err
}

// openOutput opens a report or export file, config.StdOut is the controller's stdout.
func (c *BalanceController) openOutput(name string) (io.WriteCloser, error) {
	if name == config.StdOut {
		return &onceCloser{Writer: c.stdout}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", name)
	}
	return &onceCloser{Writer: f, close: f.Close}, nil
}
