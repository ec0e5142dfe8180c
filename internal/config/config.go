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

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/antst/hydrobal/internal/logger"

	"github.com/pborman/getopt/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultDBFile     = "~/.hydrobal.db"
	defaultConfigFile = "hydrobal.yaml"
)

// Command is what the command line asked for, it is never read from the file.
type Command struct {
	ProjectID  int64
	List       bool
	Help       bool
	ExportFile string
	ImportFile string
}

type Config struct {
	LogLevel    zapcore.Level      `yaml:"log_level"`
	DBFile      string             `yaml:"db_file"`
	Calculation *CalculationConfig `yaml:"calculation"`
	Defaults    *ProjectDefaults   `yaml:"defaults"`
	ValveTables []string           `yaml:"valve_tables,omitempty"`
	Report      *ReportConfig      `yaml:"report"`
	Command     Command            `yaml:"-"`
}

func defConfig() *Config {
	return &Config{
		LogLevel:    zapcore.InfoLevel,
		DBFile:      defaultDBFile,
		Calculation: NewCalculationConfig(),
		Defaults:    NewProjectDefaults(),
		Report:      NewReportConfig(),
	}
}

func prettyPrint(cfg *Config) {
	d, err := yaml.Marshal(cfg)
	if err != nil {
		logger.L().Error("Failed to marshal config for pretty print", err)
		return
	}
	logger.L().Debugf("--- Config ---\n%s\n\n", string(d))
}

func (cfg *Config) FillDefaults() {
	if cfg.Calculation == nil {
		cfg.Calculation = NewCalculationConfig()
	}
	cfg.Calculation.FillDefaults()
	if cfg.Defaults == nil {
		cfg.Defaults = NewProjectDefaults()
	}
	cfg.Defaults.FillDefaults()
	if cfg.Report == nil {
		cfg.Report = NewReportConfig()
	}
	cfg.Report.FillDefaults()
	if cfg.DBFile == "" {
		cfg.DBFile = defaultDBFile
	}
}

// Get reads the process command line and config file. Errors are fatal.
func Get() *Config {
	cfg, err := Parse(os.Args)
	if err != nil {
		logger.L().Fatalf("GetConfig: %v", err)
	}
	logger.SetLogLevel(cfg.LogLevel)
	prettyPrint(cfg)
	return cfg
}

// Parse builds the configuration from args (program name first): defaults,
// then the config file, then command line overrides.
func Parse(args []string) (*Config, error) {
	cfg := defConfig()

	set := getopt.New()
	if len(args) > 0 {
		set.SetProgram(filepath.Base(args[0]))
	}
	logLevel := set.StringLong("log-level", 'l', "", "log levels: debug, info, warn, error, dpanic, panic, fatal")
	configFile := set.StringLong("config", 'c', defaultConfigFile, "config file pathname")
	dbFile := set.StringLong("db", 'd', "", "DB file pathname")
	project := set.StringLong("project", 'p', "", "calculate the project with this id")
	format := set.StringLong("format", 'f', "", "report format: yaml, csv")
	output := set.StringLong("output", 'o', "", "report file, - for stdout")
	exportFile := set.StringLong("export", 0, "", "export all data to a JSON file")
	importFile := set.StringLong("import", 0, "", "replace all data with a JSON export")
	list := set.BoolLong("list", 0, "list projects")
	help := set.BoolLong("help", 'h', "display help")

	if err := set.Getopt(args, nil); err != nil {
		return nil, fmt.Errorf("command line: %w", err)
	}
	if *help {
		set.PrintUsage(os.Stderr)
		cfg.Command.Help = true
		return cfg, nil
	}

	if err := readFile(cfg, *configFile); err != nil {
		return nil, err
	}
	logger.L().Infof("Using config file `%v`", *configFile)

	if *dbFile != "" {
		cfg.DBFile = *dbFile
	}
	if *format != "" {
		cfg.Report.Format = *format
	}
	if *output != "" {
		cfg.Report.Output = *output
	}
	cfg.FillDefaults()

	if *logLevel != "" {
		if err := cfg.LogLevel.Set(*logLevel); err != nil {
			logger.L().Errorf("Wrong log level `%v`: %v", *logLevel, err)
		}
	}

	dbPath, err := ExpandPath(cfg.DBFile)
	if err != nil {
		return nil, err
	}
	cfg.DBFile = dbPath
	logger.L().Infof("Using DB file `%v`", cfg.DBFile)

	if *project != "" {
		id, err := strconv.ParseInt(*project, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("wrong project id `%v`", *project)
		}
		cfg.Command.ProjectID = id
	}
	cfg.Command.List = *list
	cfg.Command.ExportFile = *exportFile
	cfg.Command.ImportFile = *importFile

	return cfg, cfg.Validate()
}

func (cfg *Config) Validate() error {
	if err := cfg.Calculation.Validate(); err != nil {
		return err
	}
	if err := cfg.Defaults.Validate(); err != nil {
		return err
	}
	return cfg.Report.Validate()
}

// ExpandPath resolves a leading ~ to the home directory.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand `%v`: %w", p, err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

func readFile(cfg *Config, configFileName string) error {
	if !fileExists(configFileName) {
		return nil
	}

	f, err := os.Open(configFileName)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	return nil
}
