/*
Copyright © 2013 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package cmd contains commands and subcommands for the lbm command-line
// interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var configFile string

// RootCmd is the main command.
var RootCmd = &cobra.Command{
	Use:   "lbm",
	Short: "A two-dimensional lattice-Boltzmann (D2Q9/BGK) flow solver.",
	Long: `lbm runs a two-dimensional incompressible flow simulation on a
rectangular lattice using the lattice-Boltzmann method. Use the "run"
subcommand to execute a simulation described by a TOML configuration file.`,
}

func init() {
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(versionCmd)
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "./lbm.toml", "configuration file location")
}

// Version is the current release of the lbm module.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of lbm.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("lbm v" + Version)
	},
}
