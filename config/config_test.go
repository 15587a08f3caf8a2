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

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klb2/reliability-bounds-dependent-fading-channels/channel"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/logger"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/solver"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// commandFlags returns fresh copies of all flags since urfave/cli records
// environment lookups on the flag values themselves.
func commandFlags() []cli.Flag {
	model, channels, outage := ModelFlag, ChannelsFlag, OutageFlag
	snr, snrDb, cmin, point := SnrFlag, SnrDbFlag, CminFlag, PointFlag
	xtol, rtol, maxIterations, residual := XTolFlag, RTolFlag, MaxIterationsFlag, ResidualFlag
	file, output, quiet, log := ConfigFileFlag, OutputFlag, QuietFlag, logger.LogLevelFlag
	return []cli.Flag{
		&model, &channels, &outage, &snr, &snrDb, &cmin, &point,
		&xtol, &rtol, &maxIterations, &residual, &file, &output, &quiet, &log,
	}
}

func runNewConfig(t *testing.T, args *utils.ArgsBuilder) (*Config, error) {
	t.Helper()
	var (
		cfg *Config
		err error
	)
	app := cli.NewApp()
	app.Commands = []*cli.Command{{
		Name:  "test",
		Flags: commandFlags(),
		Action: func(ctx *cli.Context) error {
			cfg, err = NewConfig(ctx)
			return nil
		},
	}}
	require.NoError(t, app.Run(args.Build()))
	return cfg, err
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func validConfig() Config {
	return Config{
		Model:    channel.RayleighBestName,
		Channels: 3,
		Outages:  []float64{0, 0.5},
		Snr:      10,
		Solver: SolverConfig{
			XTol:          solver.DefaultXTol,
			RTol:          solver.DefaultRTol,
			MaxIterations: solver.DefaultMaxIterations,
			Residual:      solver.DefaultResidual,
		},
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.CommandName)
	assert.Equal(t, channel.RayleighBestName, cfg.Model)
	assert.Equal(t, 2, cfg.Channels)
	assert.Equal(t, []float64{0.1}, cfg.Outages)
	assert.Equal(t, 1.0, cfg.Snr)
	assert.Nil(t, cfg.SnrDb)
	assert.Nil(t, cfg.Cmin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.Output)
	assert.False(t, cfg.Quiet)
	assert.Equal(t, solver.DefaultSettings(), cfg.Solver.Settings())
}

func TestNewConfig_Flags(t *testing.T) {
	cfg, err := runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test").
		Flag(ModelFlag.Name, channel.RayleighWorstName).
		Flag(ChannelsFlag.Name, 4).
		Flag(OutageFlag.Name, 0.2).
		Flag(OutageFlag.Name, 0.3).
		Flag(SnrFlag.Name, 5.0).
		Flag(CminFlag.Name, 0.01).
		Flag(PointFlag.Name, 0.125).
		Flag(MaxIterationsFlag.Name, 20).
		Flag(QuietFlag.Name, true))
	require.NoError(t, err)

	assert.Equal(t, channel.RayleighWorstName, cfg.Model)
	assert.Equal(t, 4, cfg.Channels)
	assert.Equal(t, []float64{0.2, 0.3}, cfg.Outages)
	assert.Equal(t, 5.0, cfg.Snr)
	require.NotNil(t, cfg.Cmin)
	assert.Equal(t, 0.01, *cfg.Cmin)
	assert.Equal(t, 0.125, cfg.Point)
	assert.Equal(t, 20, cfg.Solver.MaxIterations)
	assert.True(t, cfg.Quiet)
}

func TestNewConfig_SnrInDecibel(t *testing.T) {
	cfg, err := runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test").
		Flag(SnrFlag.Name, 3.0).
		Flag(SnrDbFlag.Name, 20.0))
	require.NoError(t, err)

	require.NotNil(t, cfg.SnrDb)
	assert.Equal(t, 20.0, *cfg.SnrDb)
	assert.InDelta(t, 100, cfg.Snr, 1e-12)
}

func TestNewConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("OUTAGE_CHANNELS", "6")
	t.Setenv("OUTAGE_MODEL", channel.ExponentialBestName)

	cfg, err := runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test"))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Channels)
	assert.Equal(t, channel.ExponentialBestName, cfg.Model)
}

func TestNewConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
model: exponential-best
channels: 5
outage: [0.05, 0.2]
snr-db: 10
solver:
  max-iterations: 50
`)
	cfg, err := runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test").
		Flag(ConfigFileFlag.Name, path))
	require.NoError(t, err)

	assert.Equal(t, channel.ExponentialBestName, cfg.Model)
	assert.Equal(t, 5, cfg.Channels)
	assert.Equal(t, []float64{0.05, 0.2}, cfg.Outages)
	assert.InDelta(t, 10, cfg.Snr, 1e-12)
	assert.Equal(t, 50, cfg.Solver.MaxIterations)
	assert.Equal(t, solver.DefaultXTol, cfg.Solver.XTol)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewConfig_SetFlagsOverrideFile(t *testing.T) {
	path := writeConfigFile(t, `
model: exponential-best
channels: 5
snr-db: 10
`)
	cfg, err := runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test").
		Flag(ConfigFileFlag.Name, path).
		Flag(ChannelsFlag.Name, 3).
		Flag(SnrFlag.Name, 4.0))
	require.NoError(t, err)

	assert.Equal(t, channel.ExponentialBestName, cfg.Model)
	assert.Equal(t, 3, cfg.Channels)
	assert.Nil(t, cfg.SnrDb)
	assert.Equal(t, 4.0, cfg.Snr)
}

func TestNewConfig_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("OUTAGE_CHANNELS", "7")
	path := writeConfigFile(t, "channels: 5\n")

	cfg, err := runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test").
		Flag(ConfigFileFlag.Name, path))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Channels)
}

func TestNewConfig_FileErrors(t *testing.T) {
	_, err := runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test").
		Flag(ConfigFileFlag.Name, filepath.Join(t.TempDir(), "missing.yaml")))
	assert.ErrorContains(t, err, "cannot read config file")

	_, err = runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test").
		Flag(ConfigFileFlag.Name, writeConfigFile(t, "channels: [1, 2")))
	assert.ErrorContains(t, err, "cannot parse config file")
}

func TestNewConfig_ValidatesResult(t *testing.T) {
	_, err := runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test").
		Flag(ChannelsFlag.Name, 1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = runNewConfig(t, utils.NewArgs("outage-bounds").Arg("test").
		Flag(ConfigFileFlag.Name, writeConfigFile(t, "model: rician\n")))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "rician")
}

func TestConfig_Validate(t *testing.T) {
	valid := validConfig()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(cfg *Config)
	}{
		{"unknown model", func(cfg *Config) { cfg.Model = "nakagami" }},
		{"single channel", func(cfg *Config) { cfg.Channels = 1 }},
		{"no outage", func(cfg *Config) { cfg.Outages = nil }},
		{"outage one", func(cfg *Config) { cfg.Outages = []float64{0.1, 1} }},
		{"negative outage", func(cfg *Config) { cfg.Outages = []float64{-0.1} }},
		{"NaN outage", func(cfg *Config) { cfg.Outages = []float64{math.NaN()} }},
		{"negative snr", func(cfg *Config) { cfg.Snr = -1 }},
		{"NaN snr", func(cfg *Config) { cfg.Snr = math.NaN() }},
		{"infinite snr", func(cfg *Config) { cfg.Snr = math.Inf(1) }},
		{"zero xtol", func(cfg *Config) { cfg.Solver.XTol = 0 }},
		{"zero rtol", func(cfg *Config) { cfg.Solver.RTol = 0 }},
		{"no iterations", func(cfg *Config) { cfg.Solver.MaxIterations = 0 }},
		{"negative residual", func(cfg *Config) { cfg.Solver.Residual = -1 }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := validConfig()
			test.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestSolverConfig_Settings(t *testing.T) {
	cfg := SolverConfig{XTol: 1e-6, RTol: 1e-9, MaxIterations: 7, Residual: 0}
	assert.Equal(t, solver.Settings{XTol: 1e-6, RTol: 1e-9, MaxIterations: 7, Residual: 0}, cfg.Settings())
}
