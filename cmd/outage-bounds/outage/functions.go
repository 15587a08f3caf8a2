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
	"github.com/klb2/reliability-bounds-dependent-fading-channels/channel"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/config"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/logger"
	"github.com/urfave/cli/v2"
)

// FunctionsCommand tabulates the closed-form functions of a model.
var FunctionsCommand = cli.Command{
	Action: functionsAction,
	Name:   "functions",
	Usage:  "evaluates pdf, cdf, inv_cdf, H, T and psi of a model",
	Flags: withFlags(commonFlags, []cli.Flag{
		&config.PointFlag,
	}),
	Description: `
Evaluates the model functions at the point given with --point for every value
a given with --outage. Values outside of a function's domain are shown as NaN
or Inf.
`,
}

func functionsAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.LogLevel, "outage-functions")

	model, err := channel.Lookup(cfg.Model)
	if err != nil {
		return err
	}

	log.Infof("Evaluating %s at x=%v for n=%d", model.Name(), cfg.Point, cfg.Channels)

	x, n := cfg.Point, cfg.Channels
	r := newResults("a", "x", "n", "pdf", "cdf", "inv_cdf", "H", "T", "psi")
	for _, a := range cfg.Outages {
		r.append(
			a,
			x,
			n,
			model.PDF(x),
			model.CDF(x),
			model.InvCDF(x),
			model.H(x, n, a),
			model.T(x, n, a),
			model.Psi(a),
		)
	}

	return r.print(ctx.App.Writer, cfg)
}
