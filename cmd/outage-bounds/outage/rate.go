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
	"github.com/klb2/reliability-bounds-dependent-fading-channels/utils"
	"github.com/urfave/cli/v2"
)

// RateCommand computes the outage capacity bound of the configured model.
var RateCommand = cli.Command{
	Action: rateAction,
	Name:   "rate",
	Usage:  "computes the best-case or worst-case outage capacity",
	Flags: withFlags(commonFlags, solverFlags, []cli.Flag{
		&config.SnrFlag,
		&config.SnrDbFlag,
	}),
	Description: `
Computes the epsilon-outage capacity bound in bit per channel use for every
given outage probability. Best-case models yield an upper bound, worst-case
models a lower bound.
`,
}

func rateAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.LogLevel, "outage-rate")

	bound, err := newBound(cfg, log)
	if err != nil {
		return err
	}

	model := bound.Model()
	log.Noticef("Computing %v rate of %s for n=%d at snr=%v", model.Direction(), model.Name(), cfg.Channels, cfg.Snr)

	r := newResults("eps", "n", "snr", "snr [dB]", "rate")
	for _, eps := range cfg.Outages {
		rate, err := bound.Rate(eps, cfg.Snr, cfg.Channels)
		if err != nil {
			return errors.Wrapf(err, "cannot compute rate for eps=%v", eps)
		}
		log.Debugf("Rate %v for eps=%v", rate, eps)
		r.append(eps, cfg.Channels, cfg.Snr, utils.LinearToDb(cfg.Snr), rate)
	}

	return r.print(ctx.App.Writer, cfg)
}
