// Copyright 2025 The Outage Bounds Authors
// This file is part of Outage Bounds for Dependent Fading Channels
//
// Outage Bounds is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Outage Bounds is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Outage Bounds. If not, see <http://www.gnu.org/licenses/>.

// Package config merges command line flags, environment variables and an
// optional YAML file into the Config used by the command line tool.
package config

import (
	"math"
	"os"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/channel"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/logger"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/solver"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/utils"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for values outside of their domain.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config summarizes the input of a command.
type Config struct {
	AppName     string `yaml:"-"`
	CommandName string `yaml:"-"`
	ConfigFile  string `yaml:"-"`

	Channels int       `yaml:"channels"` // number of dependent channels
	Cmin     *float64  `yaml:"cmin"`     // precomputed threshold, nil if it has to be solved for
	LogLevel string    `yaml:"log"`
	Model    string    `yaml:"model"`
	Outages  []float64 `yaml:"outage"`
	Output   string    `yaml:"output"` // file the result table is appended to
	Point    float64   `yaml:"point"`
	Quiet    bool      `yaml:"quiet"`
	Snr      float64   `yaml:"snr"`    // linear scale
	SnrDb    *float64  `yaml:"snr-db"` // overrides Snr if present

	Solver SolverConfig `yaml:"solver"`
}

// SolverConfig configures the root finder of the threshold equation.
type SolverConfig struct {
	XTol          float64 `yaml:"xtol"`
	RTol          float64 `yaml:"rtol"`
	MaxIterations int     `yaml:"max-iterations"`
	Residual      float64 `yaml:"residual"`
}

// Settings converts the configuration into solver settings.
func (c SolverConfig) Settings() solver.Settings {
	return solver.Settings{
		XTol:          c.XTol,
		RTol:          c.RTol,
		MaxIterations: c.MaxIterations,
		Residual:      c.Residual,
	}
}

// NewConfig creates and validates the configuration of a command. Defaults
// are overridden by the YAML file given with --config, which in turn is
// overridden by flags set on the command line or through the environment.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)

	if cfg.ConfigFile != "" {
		fileCfg, err := loadConfigFile(cfg.ConfigFile, cfg)
		if err != nil {
			return nil, err
		}
		applySetFlags(ctx, fileCfg, cfg)
		cfg = fileCfg
	}

	if cfg.SnrDb != nil {
		cfg.Snr = utils.DbToLinear(*cfg.SnrDb)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile reads a YAML file on top of a copy of base.
func loadConfigFile(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config file %s", path)
	}

	cfg := *base
	cfg.Outages = slices.Clone(base.Outages)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config file %s", path)
	}
	return &cfg, nil
}

// flagFields copies the field controlled by a flag from src to dst.
var flagFields = map[string]func(dst, src *Config){
	ChannelsFlag.Name:        func(dst, src *Config) { dst.Channels = src.Channels },
	CminFlag.Name:            func(dst, src *Config) { dst.Cmin = src.Cmin },
	logger.LogLevelFlag.Name: func(dst, src *Config) { dst.LogLevel = src.LogLevel },
	ModelFlag.Name:           func(dst, src *Config) { dst.Model = src.Model },
	OutageFlag.Name:          func(dst, src *Config) { dst.Outages = src.Outages },
	OutputFlag.Name:          func(dst, src *Config) { dst.Output = src.Output },
	PointFlag.Name:           func(dst, src *Config) { dst.Point = src.Point },
	QuietFlag.Name:           func(dst, src *Config) { dst.Quiet = src.Quiet },
	SnrFlag.Name:             func(dst, src *Config) { dst.Snr = src.Snr },
	SnrDbFlag.Name:           func(dst, src *Config) { dst.SnrDb = src.SnrDb },
	XTolFlag.Name:            func(dst, src *Config) { dst.Solver.XTol = src.Solver.XTol },
	RTolFlag.Name:            func(dst, src *Config) { dst.Solver.RTol = src.Solver.RTol },
	MaxIterationsFlag.Name:   func(dst, src *Config) { dst.Solver.MaxIterations = src.Solver.MaxIterations },
	ResidualFlag.Name:        func(dst, src *Config) { dst.Solver.Residual = src.Solver.Residual },
}

func applySetFlags(ctx *cli.Context, dst, src *Config) {
	for name, copyField := range flagFields {
		if ctx.IsSet(name) {
			copyField(dst, src)
		}
	}
	// a linear SNR given explicitly wins over a dB value from the file
	if ctx.IsSet(SnrFlag.Name) && !ctx.IsSet(SnrDbFlag.Name) {
		dst.SnrDb = nil
	}
}

// Validate checks that all values are within their domain.
func (cfg *Config) Validate() error {
	if _, err := channel.Lookup(cfg.Model); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if cfg.Channels < 2 {
		return errors.Wrapf(ErrInvalidConfig, "number of channels must be at least 2, got %d", cfg.Channels)
	}
	if len(cfg.Outages) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no outage probability given")
	}
	for _, eps := range cfg.Outages {
		if !(eps >= 0 && eps < 1) {
			return errors.Wrapf(ErrInvalidConfig, "outage probability must be in [0, 1), got %v", eps)
		}
	}
	if !(cfg.Snr >= 0) || math.IsInf(cfg.Snr, 1) {
		return errors.Wrapf(ErrInvalidConfig, "snr must be non-negative and finite, got %v", cfg.Snr)
	}
	if !(cfg.Solver.XTol > 0) {
		return errors.Wrapf(ErrInvalidConfig, "xtol must be positive, got %v", cfg.Solver.XTol)
	}
	if !(cfg.Solver.RTol > 0) {
		return errors.Wrapf(ErrInvalidConfig, "rtol must be positive, got %v", cfg.Solver.RTol)
	}
	if cfg.Solver.MaxIterations < 1 {
		return errors.Wrapf(ErrInvalidConfig, "max-iterations must be positive, got %d", cfg.Solver.MaxIterations)
	}
	if !(cfg.Solver.Residual >= 0) {
		return errors.Wrapf(ErrInvalidConfig, "residual must not be negative, got %v", cfg.Solver.Residual)
	}
	return nil
}
