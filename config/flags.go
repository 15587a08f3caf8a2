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
	"github.com/klb2/reliability-bounds-dependent-fading-channels/channel"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/solver"
	"github.com/urfave/cli/v2"
)

var (
	ModelFlag = cli.StringFlag{
		Name:    "model",
		Aliases: []string{"m"},
		Usage:   "fading model used for the bound (\"exponential-best\", \"rayleigh-best\", \"rayleigh-worst\")",
		Value:   channel.RayleighBestName,
		EnvVars: []string{"OUTAGE_MODEL"},
	}
	ChannelsFlag = cli.IntFlag{
		Name:    "channels",
		Aliases: []string{"n"},
		Usage:   "number of dependent channels, at least 2",
		Value:   2,
		EnvVars: []string{"OUTAGE_CHANNELS"},
	}
	OutageFlag = cli.Float64SliceFlag{
		Name:    "outage",
		Aliases: []string{"eps"},
		Usage:   "tolerated outage probability in [0, 1); repeat the flag for several values",
		Value:   cli.NewFloat64Slice(0.1),
		EnvVars: []string{"OUTAGE_EPS"},
	}
	SnrFlag = cli.Float64Flag{
		Name:    "snr",
		Usage:   "signal-to-noise ratio on the linear scale",
		Value:   1,
		EnvVars: []string{"OUTAGE_SNR"},
	}
	SnrDbFlag = cli.Float64Flag{
		Name:    "snr-db",
		Usage:   "signal-to-noise ratio in dB, takes precedence over --snr",
		EnvVars: []string{"OUTAGE_SNR_DB"},
	}
	CminFlag = cli.Float64Flag{
		Name:    "cmin",
		Usage:   "precomputed critical threshold; skips root solving",
		EnvVars: []string{"OUTAGE_CMIN"},
	}
	PointFlag = cli.Float64Flag{
		Name:    "point",
		Aliases: []string{"x"},
		Usage:   "point at which the model functions are evaluated",
		Value:   0.05,
		EnvVars: []string{"OUTAGE_POINT"},
	}
	XTolFlag = cli.Float64Flag{
		Name:    "xtol",
		Usage:   "absolute tolerance of the root finder",
		Value:   solver.DefaultXTol,
		EnvVars: []string{"OUTAGE_XTOL"},
	}
	RTolFlag = cli.Float64Flag{
		Name:    "rtol",
		Usage:   "relative tolerance of the root finder",
		Value:   solver.DefaultRTol,
		EnvVars: []string{"OUTAGE_RTOL"},
	}
	MaxIterationsFlag = cli.IntFlag{
		Name:    "max-iterations",
		Usage:   "iteration budget of the root finder",
		Value:   solver.DefaultMaxIterations,
		EnvVars: []string{"OUTAGE_MAX_ITERATIONS"},
	}
	ResidualFlag = cli.Float64Flag{
		Name:    "residual",
		Usage:   "bracket end points with a smaller absolute value are treated as roots",
		Value:   solver.DefaultResidual,
		EnvVars: []string{"OUTAGE_RESIDUAL"},
	}
	ConfigFileFlag = cli.PathFlag{
		Name:    "config",
		Usage:   "YAML file with default values; explicitly set flags take precedence",
		EnvVars: []string{"OUTAGE_CONFIG"},
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "file the result table is appended to; a .csv suffix selects CSV",
		EnvVars: []string{"OUTAGE_OUTPUT"},
	}
	QuietFlag = cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "do not print the result table to the console",
		EnvVars: []string{"OUTAGE_QUIET"},
	}
)
