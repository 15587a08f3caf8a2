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

package main

import (
	"log"
	"os"

	"github.com/klb2/reliability-bounds-dependent-fading-channels/cmd/outage-bounds/outage"
	"github.com/urfave/cli/v2"

	_ "github.com/joho/godotenv/autoload"
)

// OutageBoundsApp data structure
var OutageBoundsApp = cli.App{
	Name:      "Outage Bounds",
	HelpName:  "outage-bounds",
	Usage:     "best-case and worst-case outage capacity of dependent fading channels",
	Copyright: "(c) 2025 The Outage Bounds Authors",
	Commands: []*cli.Command{
		&outage.RateCommand,
		&outage.PhiCommand,
		&outage.CminCommand,
		&outage.FunctionsCommand,
	},
}

// main implements the outage-bounds command line tool
func main() {
	if err := OutageBoundsApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
