/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
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

package lbm

import (
	"time"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
)

// Config is the full set of inputs needed to build a Simulation: lattice
// geometry and phase information, the access-function layout, relaxation
// time, inlet/outlet boundary conditions, the streaming algorithm, and the
// iteration budget.
type Config struct {
	W, H       int
	FluidNodes []int
	Solid      []bool // length W*H, true = solid

	Access AccessKind

	Tau float64 // default 1.4

	InletVelocity  [2]float64
	OutletVelocity [2]float64
	InletDensity   float64 // default 1
	OutletDensity  float64 // default 1
	BoundaryRegime BoundaryRegime
	InletProfile   VelocityProfile
	OutletProfile  VelocityProfile

	Algorithm  Algorithm
	Iterations int
	Parallel   bool

	// Debug raises the per-step logger to debug level.
	Debug bool

	logger *logrus.Logger
}

// StepResult is one iteration's macroscopic output: velocity and density
// fields over the whole W*H lattice, with sentinel values at non-fluid
// nodes (zero velocity, density -1).
type StepResult struct {
	Velocity []float64 // length 2*W*H, (ux,uy) pairs
	Density  []float64 // length W*H
}

// New validates cfg, builds the lattice and its boundary descriptors,
// allocates population storage sized for the chosen algorithm, and
// emplaces initial populations computed from (initialU, initialRho) via
// the equilibrium distribution. Exceptional inputs are rejected here,
// before any step runs, per the construction contract.
func New(cfg Config, initialU [][2]float64, initialRho []float64) (*Simulation, error) {
	if cfg.Tau == 0 {
		cfg.Tau = 1.4
	}
	if cfg.InletDensity == 0 {
		cfg.InletDensity = 1
	}
	if cfg.OutletDensity == 0 {
		cfg.OutletDensity = 1
	}
	if cfg.InletProfile == nil {
		cfg.InletProfile = LaminarProfile{Umax: cfg.InletVelocity[0]}
	}
	if cfg.OutletProfile == nil {
		cfg.OutletProfile = LaminarProfile{Umax: cfg.OutletVelocity[0]}
	}
	if cfg.Iterations < 0 {
		return nil, &ConfigError{Msg: "iterations must be non-negative"}
	}
	if cfg.Tau <= 0.5 {
		return nil, &InvariantError{Step: -1, Node: -1, Msg: "tau <= 0.5 is numerically unstable for BGK collision"}
	}

	grid, err := NewGrid(cfg.W, cfg.H, cfg.FluidNodes, cfg.Solid)
	if err != nil {
		return nil, err
	}
	numNodes := grid.NumNodes()
	if len(initialU) != numNodes {
		return nil, &ConfigError{Msg: "initial velocity field length must equal W*H"}
	}
	if len(initialRho) != numNodes {
		return nil, &ConfigError{Msg: "initial density field length must equal W*H"}
	}

	logger := cfg.logger
	if logger == nil {
		logger = logrus.New()
		if cfg.Debug {
			logger.SetLevel(logrus.DebugLevel)
		}
	}
	cfg.logger = logger

	s := &Simulation{
		Grid:      grid,
		Cfg:       cfg,
		BSI:       BuildBSI(grid),
		BorderAdj: BuildBorderAdjacency(grid),
	}

	switch cfg.Algorithm {
	case TwoLattice:
		s.Access = NewAccessFunc(cfg.Access, numNodes, cfg.Debug)
		s.f = sparse.ZerosDense(NumDirections * numNodes).Elements
		s.g = sparse.ZerosDense(NumDirections * numNodes).Elements
		s.srcIsF = true
		s.RunFuncs = append(twoLatticeRunFuncs(), logStep)
	case TwoStep:
		s.Access = NewAccessFunc(cfg.Access, numNodes, cfg.Debug)
		s.f = sparse.ZerosDense(NumDirections * numNodes).Elements
		s.RunFuncs = append(twoStepRunFuncs(), logStep)
	case Swap:
		s.Access = NewAccessFunc(cfg.Access, numNodes, cfg.Debug)
		s.f = sparse.ZerosDense(NumDirections * numNodes).Elements
		s.RunFuncs = append(swapRunFuncs(), logStep)
	case Shift:
		total := numNodes + ShiftOffset(cfg.W)
		s.Access = NewAccessFunc(cfg.Access, total, cfg.Debug)
		s.f = sparse.ZerosDense(NumDirections * total).Elements
		s.shiftSrcBase = 0
		s.RunFuncs = append(shiftRunFuncs(), logStep)
	default:
		return nil, &ConfigError{Msg: "unknown algorithm"}
	}

	s.InitFuncs = []DomainStep{initialPopulations(initialU, initialRho)}

	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// initialPopulations builds the InitFuncs step that emplaces the
// equilibrium populations for every node's initial (u, rho), including the
// ghost ring (which is immediately eligible for refresh/bounce-back on the
// first RunFuncs pass) and solid interior nodes (sentinel storage, per the
// solid-interior open question: given an initial value here and then left
// untouched by every streaming algorithm thereafter).
func initialPopulations(initialU [][2]float64, initialRho []float64) DomainStep {
	return func(s *Simulation) error {
		f, base := s.currentSource()
		for i := 0; i < s.Grid.NumNodes(); i++ {
			u := initialU[i]
			equilibriumAt(f, s.Access, i+base, u[0], u[1], initialRho[i])
		}
		return nil
	}
}

// logStep emits one structured log entry per completed iteration,
// replacing inmap's Log(w io.Writer) DomainManipulator fixed-format
// progress line with structured fields.
func logStep(s *Simulation) error {
	logger := s.Cfg.logger
	if logger == nil {
		return nil
	}
	now := time.Now()
	var delta time.Duration
	if !s.lastLogTime.IsZero() {
		delta = now.Sub(s.lastLogTime)
	}
	s.lastLogTime = now
	logger.WithFields(logrus.Fields{
		"step":      s.Step,
		"algorithm": s.Cfg.Algorithm.String(),
		"delta":     delta,
	}).Debug("completed lattice-Boltzmann step")
	return nil
}
