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

// twoStepRunFuncs builds the RunFuncs pipeline for the two-step algorithm:
// a single array, with streaming and collision kept in separate barriered
// phases since streaming reads from every neighbour of the same array
// collision is about to overwrite.
func twoStepRunFuncs() []DomainStep {
	return []DomainStep{twoStepStep}
}

// twoStepStep performs one full two-step iteration: a pure streaming pass
// into a shadow buffer, halfway bounce-back at BSI nodes (patched in
// directly from the pre-streaming array; this algorithm never writes the
// wall ghost nodes, only the inlet/outlet columns), collision at every
// fluid node, then ghost refresh.
func twoStepStep(s *Simulation) error {
	orig := s.f
	shadow := make([]float64, len(orig))
	copy(shadow, orig)

	for _, node := range s.Grid.FluidNodes {
		for d := Direction(0); d < NumDirections; d++ {
			from := s.Grid.Neighbor(node, d.Inverse())
			shadow[s.Access(node, d)] = orig[s.Access(from, d)]
		}
	}

	for _, e := range s.BSI {
		for _, d := range e.Dirs {
			shadow[s.Access(e.Node, d.Inverse())] = orig[s.Access(e.Node, d)]
		}
	}
	s.f = shadow

	for _, node := range s.Grid.FluidNodes {
		if _, _, _, err := Collide(s.f, s.Access, node, s.Cfg.Tau, s.Step); err != nil {
			return err
		}
	}

	RefreshGhosts(s.f, s.Access, s.Grid, &s.Cfg, 0)
	s.recordMoments(s.f, 0)
	return nil
}
