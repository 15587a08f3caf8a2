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
	"github.com/cockroachdb/errors"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/config"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/logger"
	"github.com/urfave/cli/v2"
)

// PhiCommand evaluates the bound function phi of the configured model.
var PhiCommand = cli.Command{
	Action: phiAction,
	Name:   "phi",
	Usage:  "evaluates phi(a, n) of a model",
	Flags: withFlags(commonFlags, solverFlags, []cli.Flag{
		&config.CminFlag,
	}),
	Description: `
Evaluates phi(a, n) for every value a given with --outage. The argument is
used as given, i.e., worst-case models are not complemented as in the rate.
With --cmin the threshold is not solved for but taken as given.
`,
}

func phiAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.LogLevel, "outage-phi")

	bound, err := newBound(cfg, log)
	if err != nil {
		return err
	}

	log.Noticef("Evaluating phi of %s for n=%d", cfg.Model, cfg.Channels)

	r := newResults("a", "n", "cmin", "phi")
	for _, a := range cfg.Outages {
		var cmin float64
		if cfg.Cmin != nil {
			cmin = *cfg.Cmin
		} else {
			cmin = bound.DetermineCmin(cfg.Channels, a)
		}
		phi, err := bound.PhiWithCmin(a, cfg.Channels, cmin)
		if err != nil {
			return errors.Wrapf(err, "cannot evaluate phi for a=%v", a)
		}
		r.append(a, cfg.Channels, cmin, phi)
	}

	return r.print(ctx.App.Writer, cfg)
}
