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

// Package outage implements the sub-commands of the outage-bounds tool. Every
// command prints its results as a table to the console and optionally
// appends it to the file given with --output.
package outage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/bounds"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/channel"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/config"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/logger"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/utils"
	"github.com/urfave/cli/v2"
)

// commonFlags are accepted by all sub-commands.
var commonFlags = []cli.Flag{
	&config.ModelFlag,
	&config.ChannelsFlag,
	&config.OutageFlag,
	&config.ConfigFileFlag,
	&config.OutputFlag,
	&config.QuietFlag,
	&logger.LogLevelFlag,
}

// solverFlags tune the root finder of the threshold equation.
var solverFlags = []cli.Flag{
	&config.XTolFlag,
	&config.RTolFlag,
	&config.MaxIterationsFlag,
	&config.ResidualFlag,
}

func withFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, group := range groups {
		flags = append(flags, group...)
	}
	return flags
}

// newBound creates the bound computation for the configured model.
func newBound(cfg *config.Config, log logger.Logger) (*bounds.Bound, error) {
	model, err := channel.Lookup(cfg.Model)
	if err != nil {
		return nil, err
	}
	return bounds.NewBound(model, cfg.Solver.Settings(), log), nil
}

// results collects the rows of a command for all outputs.
type results struct {
	header table.Row
	rows   []table.Row
}

func newResults(header ...any) *results {
	return &results{header: header}
}

func (r *results) append(row ...any) {
	r.rows = append(r.rows, row)
}

// writer returns a table holding all rows, with the header if requested.
func (r *results) writer(withHeader bool) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if withHeader {
		t.AppendHeader(r.header)
	}
	t.AppendRows(r.rows)
	return t
}

// print renders the table to w unless quiet and appends it to the output
// file. Files with a .csv extension receive CSV instead of the box drawing;
// the CSV header is only written to a new or empty file.
func (r *results) print(w io.Writer, cfg *config.Config) error {
	toFile := r.writer(true).Render
	if strings.EqualFold(filepath.Ext(cfg.Output), ".csv") {
		toFile = r.writer(isEmptyFile(cfg.Output)).RenderCSV
	}

	p := utils.NewPrinters()
	if !cfg.Quiet {
		p.AddPrinterToWriter(w, r.writer(true).Render)
	}
	p.AddPrinterToFile(cfg.Output, func() string {
		return toFile() + "\n"
	})
	defer p.Close()
	return p.Print()
}

func isEmptyFile(path string) bool {
	info, err := os.Stat(path)
	return err != nil || info.Size() == 0
}
