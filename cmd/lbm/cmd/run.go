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

package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/latticeflow/lbm2d"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	algorithmFlag string
	debugFlag     bool
)

func init() {
	runCmd.Flags().StringVar(&algorithmFlag, "algorithm", "", "override the configuration file's algorithm (two_lattice, two_step, swap, shift)")
	runCmd.Flags().BoolVar(&debugFlag, "debug", false, "enable debug-level logging")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation described by a TOML configuration file.",
	Long:  "run reads the file named by --config, builds a simulation, runs it to completion, and writes the resulting timeline to the configured output file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readConfigFile(configFile)
		if err != nil {
			return err
		}
		cfg, err := input.toConfig()
		if err != nil {
			return err
		}
		if algorithmFlag != "" {
			algorithm, err := lbm.ParseAlgorithm(algorithmFlag)
			if err != nil {
				return err
			}
			cfg.Algorithm = algorithm
		}
		cfg.Debug = debugFlag || cfg.Debug

		if debugFlag {
			logrus.SetLevel(logrus.DebugLevel)
		}

		sim, err := lbm.New(cfg, input.InitialVelocity, input.InitialDensity)
		if err != nil {
			return err
		}
		timeline, err := sim.Run()
		if err != nil {
			return err
		}
		if err := sim.Cleanup(); err != nil {
			return err
		}

		if input.OutputFile == "" {
			fmt.Printf("completed %d steps; no output_file configured, discarding timeline\n", len(timeline))
			return nil
		}
		return writeTimelineCSV(expandOutputFile(input.OutputFile), cfg.W, cfg.H, timeline)
	},
}

// writeTimelineCSV writes one row per (step, node) to path: step, x, y,
// ux, uy, rho.
func writeTimelineCSV(path string, w, h int, timeline []lbm.StepResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lbm: creating output file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write([]string{"step", "x", "y", "ux", "uy", "rho"}); err != nil {
		return err
	}
	for step, res := range timeline {
		for node := 0; node < w*h; node++ {
			x, y := node%w, node/w
			row := []string{
				strconv.Itoa(step),
				strconv.Itoa(x),
				strconv.Itoa(y),
				strconv.FormatFloat(res.Velocity[2*node], 'g', -1, 64),
				strconv.FormatFloat(res.Velocity[2*node+1], 'g', -1, 64),
				strconv.FormatFloat(res.Density[node], 'g', -1, 64),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	return writer.Error()
}
