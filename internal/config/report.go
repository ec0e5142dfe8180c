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

package config

import "fmt"

const (
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	// StdOut as report output writes to standard output.
	StdOut = "-"
)

type ReportConfig struct {
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

func NewReportConfig() *ReportConfig {
	cfg := &ReportConfig{}
	cfg.FillDefaults()
	return cfg
}

func (r *ReportConfig) FillDefaults() {
	if r.Format == "" {
		r.Format = FormatYAML
	}
	if r.Output == "" {
		r.Output = StdOut
	}
}

func (r *ReportConfig) Validate() error {
	switch r.Format {
	case FormatYAML, FormatCSV:
		return nil
	}
	return fmt.Errorf("unknown report format `%v`", r.Format)
}
