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
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/latticeflow/lbm2d"
)

// inputConfig is the on-disk TOML shape read by the "run" subcommand. Its
// fields are translated into an lbm.Config by toConfig.
type inputConfig struct {
	W, H       int
	FluidNodes []int
	Solid      []bool

	Access string // "collision", "stream", or "bundle"
	Tau    float64

	InletVelocity  [2]float64
	OutletVelocity [2]float64
	InletDensity   float64
	OutletDensity  float64
	BoundaryRegime string // "vv", "vd", or "dd"
	Profile        string // "laminar" or "seventh_rule"

	Algorithm  string
	Iterations int
	Parallel   bool

	InitialVelocity [][2]float64
	InitialDensity  []float64

	// OutputFile is the destination CSV file for the resulting timeline;
	// environment variables in it are expanded before use.
	OutputFile string
}

// readConfigFile parses path as TOML into an inputConfig.
func readConfigFile(path string) (*inputConfig, error) {
	var cfg inputConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("lbm: reading configuration file: %w", err)
	}
	return &cfg, nil
}

// toConfig translates an inputConfig into an lbm.Config, resolving its
// string-valued enums.
func (c *inputConfig) toConfig() (lbm.Config, error) {
	var cfg lbm.Config
	cfg.W, cfg.H = c.W, c.H
	cfg.FluidNodes = c.FluidNodes
	cfg.Solid = c.Solid
	cfg.Tau = c.Tau
	cfg.InletVelocity = c.InletVelocity
	cfg.OutletVelocity = c.OutletVelocity
	cfg.InletDensity = c.InletDensity
	cfg.OutletDensity = c.OutletDensity
	cfg.Iterations = c.Iterations
	cfg.Parallel = c.Parallel

	access, err := lbm.ParseAccessKind(defaultString(c.Access, "collision"))
	if err != nil {
		return cfg, err
	}
	cfg.Access = access

	regime, err := lbm.ParseBoundaryRegime(defaultString(c.BoundaryRegime, "vv"))
	if err != nil {
		return cfg, err
	}
	cfg.BoundaryRegime = regime

	algorithm, err := lbm.ParseAlgorithm(defaultString(c.Algorithm, "two_lattice"))
	if err != nil {
		return cfg, err
	}
	cfg.Algorithm = algorithm

	switch c.Profile {
	case "", "laminar":
		cfg.InletProfile = lbm.LaminarProfile{Umax: c.InletVelocity[0]}
		cfg.OutletProfile = lbm.LaminarProfile{Umax: c.OutletVelocity[0]}
	case "seventh_rule":
		cfg.InletProfile = lbm.SeventhRuleProfile{Umax: c.InletVelocity[0]}
		cfg.OutletProfile = lbm.SeventhRuleProfile{Umax: c.OutletVelocity[0]}
	default:
		return cfg, &lbm.ConfigError{Msg: "unknown velocity profile " + c.Profile}
	}

	return cfg, nil
}

func defaultString(s, d string) string {
	if s == "" {
		return d
	}
	return s
}

func expandOutputFile(f string) string {
	return os.ExpandEnv(f)
}
