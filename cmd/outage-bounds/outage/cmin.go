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

package outage

import (
	"github.com/klb2/reliability-bounds-dependent-fading-channels/config"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/logger"
	"github.com/urfave/cli/v2"
)

// CminCommand solves for the critical threshold of the configured model.
var CminCommand = cli.Command{
	Action: cminAction,
	Name:   "cmin",
	Usage:  "determines the critical threshold c_min",
	Flags:  withFlags(commonFlags, solverFlags),
	Description: `
Determines the critical threshold for every value a given with --outage.
Thresholds the root finder cannot determine are reported as 1; the residual
column shows the balance equation at the reported threshold.
`,
}

func cminAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.LogLevel, "outage-cmin")

	bound, err := newBound(cfg, log)
	if err != nil {
		return err
	}

	model := bound.Model()
	r := newResults("a", "n", "cmin", "boundary", "residual")
	for _, a := range cfg.Outages {
		cmin := bound.DetermineCmin(cfg.Channels, a)
		r.append(
			a,
			cfg.Channels,
			cmin,
			model.BoundaryShortcut(cfg.Channels, a),
			bound.DiffCmin(cmin, cfg.Channels, a),
		)
	}

	return r.print(ctx.App.Writer, cfg)
}
