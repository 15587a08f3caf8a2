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
	"github.com/klb2/reliability-bounds-dependent-fading-channels/logger"
	"github.com/urfave/cli/v2"
)

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		Channels:   getFlagValue(ctx, ChannelsFlag).(int),
		ConfigFile: getFlagValue(ctx, ConfigFileFlag).(string),
		LogLevel:   getFlagValue(ctx, logger.LogLevelFlag).(string),
		Model:      getFlagValue(ctx, ModelFlag).(string),
		Outages:    getFlagValue(ctx, OutageFlag).([]float64),
		Output:     getFlagValue(ctx, OutputFlag).(string),
		Point:      getFlagValue(ctx, PointFlag).(float64),
		Quiet:      getFlagValue(ctx, QuietFlag).(bool),
		Snr:        getFlagValue(ctx, SnrFlag).(float64),
		Solver: SolverConfig{
			XTol:          getFlagValue(ctx, XTolFlag).(float64),
			RTol:          getFlagValue(ctx, RTolFlag).(float64),
			MaxIterations: getFlagValue(ctx, MaxIterationsFlag).(int),
			Residual:      getFlagValue(ctx, ResidualFlag).(float64),
		},
	}

	// optional values exist only if the user provided them
	if ctx.IsSet(SnrDbFlag.Name) {
		v := getFlagValue(ctx, SnrDbFlag).(float64)
		cfg.SnrDb = &v
	}
	if ctx.IsSet(CminFlag.Name) {
		v := getFlagValue(ctx, CminFlag).(float64)
		cfg.Cmin = &v
	}

	return cfg
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}

		case cli.Float64SliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64Slice(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	case cli.Float64SliceFlag:
		if f.Value == nil {
			return []float64{}
		}
		return f.Value.Value()
	}

	return nil
}
