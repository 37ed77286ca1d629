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
	"fmt"
	"time"
)

// Algorithm selects one of the four streaming strategies.
type Algorithm int

const (
	// TwoLattice ping-pongs between two population arrays, fusing
	// streaming and collision since source and destination never alias.
	TwoLattice Algorithm = iota
	// TwoStep streams into a single array in two barrier-separated
	// phases: a pure streaming pass, then collision.
	TwoStep
	// Swap streams by swapping populations between neighbour pairs along
	// directions {5,6,7,8}, visited in ascending node order.
	Swap
	// Shift streams within a single buffer addressed through two
	// SHIFT_OFFSET-separated windows, fused like TwoLattice.
	Shift
)

func (a Algorithm) String() string {
	switch a {
	case TwoLattice:
		return "two_lattice"
	case TwoStep:
		return "two_step"
	case Swap:
		return "swap"
	case Shift:
		return "shift"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm parses the string form of an Algorithm as accepted by
// configuration files ("two_lattice", "two_step", "swap", "shift").
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "two_lattice":
		return TwoLattice, nil
	case "two_step":
		return TwoStep, nil
	case "swap":
		return Swap, nil
	case "shift":
		return Shift, nil
	default:
		return 0, &ConfigError{Msg: "unknown algorithm " + s}
	}
}

// ShiftOffset is the windowing constant used by the shift algorithm:
// SHIFT_OFFSET = W + 1, chosen so a node and all eight of its neighbours
// translate uniformly between the two windows of the shared buffer.
func ShiftOffset(w int) int { return w + 1 }

// DomainStep is one stage of a Simulation's init, run, or cleanup
// pipeline. It is the lbm analogue of inmap's DomainManipulator: a small
// function that mutates the Simulation and reports an error rather than
// panicking, so pipelines can be composed by appending to a slice.
type DomainStep func(*Simulation) error

// Simulation holds a fully-built lattice together with the descriptors,
// population storage and step pipeline needed to run it. It plays the
// same structural role as inmap's root InMAP type: InitFuncs run once,
// RunFuncs run once per iteration, CleanupFuncs run once at the end.
type Simulation struct {
	InitFuncs    []DomainStep
	RunFuncs     []DomainStep
	CleanupFuncs []DomainStep

	Grid   *Grid
	Access AccessFunc
	Cfg    Config

	BSI       []BSIEntry
	BorderAdj []BorderAdjacency

	// f is the primary population array. For TwoStep and Swap it is the
	// only array. For TwoLattice it is one of the two ping-pong buffers.
	// For Shift it is the single buffer addressed through two windows.
	f []float64
	// g is the secondary ping-pong buffer, used only by TwoLattice.
	g []float64
	// srcIsF records which of f/g currently holds the "current" state for
	// TwoLattice; unused by the other three algorithms.
	srcIsF bool
	// shiftSrcBase is the window base (0 or ShiftOffset(W)) currently
	// holding "current" state for Shift; unused by the other three
	// algorithms.
	shiftSrcBase int

	// Step is the index of the next iteration to run, starting at 0.
	Step int
	// Timeline accumulates one StepResult per completed iteration.
	Timeline []StepResult

	// lastLogTime is the wall-clock time logStep last ran, used to report
	// the per-step time delta.
	lastLogTime time.Time
}

// Init runs InitFuncs in order, stopping at the first error. It is called
// once by New before any RunFuncs execute.
func (s *Simulation) Init() error {
	for _, step := range s.InitFuncs {
		if err := step(s); err != nil {
			return err
		}
	}
	return nil
}

// Run executes RunFuncs once per configured iteration, in order, and
// returns the accumulated timeline. It stops and returns an error
// immediately if any step fails, per the fatal-error policy for
// configuration and invariant violations.
func (s *Simulation) Run() ([]StepResult, error) {
	for s.Step < s.Cfg.Iterations {
		for _, step := range s.RunFuncs {
			if err := step(s); err != nil {
				return s.Timeline, err
			}
		}
		s.Step++
	}
	return s.Timeline, nil
}

// Cleanup runs CleanupFuncs in order, stopping at the first error. The
// default pipeline's CleanupFuncs is empty: population arrays are
// ordinary Go slices with no external resources to release.
func (s *Simulation) Cleanup() error {
	for _, step := range s.CleanupFuncs {
		if err := step(s); err != nil {
			return err
		}
	}
	return nil
}

// currentSource returns the array currently holding "source" (current)
// state along with its node-indexed access offset base, for algorithms
// that ping-pong or window a single buffer.
func (s *Simulation) currentSource() (array []float64, base int) {
	switch s.Cfg.Algorithm {
	case TwoLattice:
		if s.srcIsF {
			return s.f, 0
		}
		return s.g, 0
	case Shift:
		return s.f, s.shiftSrcBase
	default:
		return s.f, 0
	}
}

// currentDest returns the array currently holding "destination" (next)
// state along with its node-indexed access offset base.
func (s *Simulation) currentDest() (array []float64, base int) {
	switch s.Cfg.Algorithm {
	case TwoLattice:
		if s.srcIsF {
			return s.g, 0
		}
		return s.f, 0
	case Shift:
		offset := ShiftOffset(s.Grid.W)
		if s.shiftSrcBase == 0 {
			return s.f, offset
		}
		return s.f, 0
	default:
		return s.f, 0
	}
}

// recordMoments appends a StepResult computed from the given population
// array/base to the Simulation's timeline. Non-fluid nodes receive
// sentinel output per the external interface contract: zero velocity,
// density -1.
func (s *Simulation) recordMoments(f []float64, base int) {
	n := s.Grid.NumNodes()
	res := StepResult{
		Velocity: make([]float64, 2*n),
		Density:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		res.Density[i] = -1
	}
	for _, node := range s.Grid.FluidNodes {
		ux, uy, ρ := momentsAt(f, s.Access, node+base)
		res.Velocity[2*node] = ux
		res.Velocity[2*node+1] = uy
		res.Density[node] = ρ
	}
	s.Timeline = append(s.Timeline, res)
}
