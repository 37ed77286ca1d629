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

// positiveSwapDirections are the four directions swap exchanges between
// neighbour pairs: {5,6,7,8} in the Mattila ordering.
var positiveSwapDirections = [4]Direction{5, 6, 7, 8}

// swapRunFuncs builds the RunFuncs pipeline for the swap algorithm: a
// single array, streaming emulated by swapping populations in place
// between neighbour pairs.
func swapRunFuncs() []DomainStep {
	return []DomainStep{swapStep}
}

// swapStep performs one full swap iteration: bounce-back emplacement into
// the ghost neighbours of BSI nodes, then, for directions {0,1,2,3}, a swap
// of each fluid node's population with its non-fluid neighbour (the
// exchange that neighbour would make if it took part in the pairwise pass),
// a pairwise swap along directions {5,6,7,8} visited in ascending node
// order, restoration
// of per-node canonical order by swapping {0,1,2,3} with their inverses,
// collision, then ghost refresh.
//
// Visiting fluid nodes in ascending index order for the pairwise swap is
// required so that each neighbour pair is swapped exactly once: a later
// node's swap with an earlier neighbour must not re-swap a pair the
// earlier node already handled.
func swapStep(s *Simulation) error {
	EmplaceBounceBack(s.f, s.Access, s.Grid, s.BSI, 0)
	for _, node := range s.Grid.FluidNodes {
		for d := Direction(0); d < 4; d++ {
			neighbor := s.Grid.Neighbor(node, d)
			if s.Grid.IsFluid(neighbor) {
				continue
			}
			a := s.Access(node, d)
			b := s.Access(neighbor, d.Inverse())
			s.f[a], s.f[b] = s.f[b], s.f[a]
		}
	}

	for _, node := range s.Grid.FluidNodes {
		for _, d := range positiveSwapDirections {
			neighbor := s.Grid.Neighbor(node, d)
			a := s.Access(node, d)
			b := s.Access(neighbor, d.Inverse())
			s.f[a], s.f[b] = s.f[b], s.f[a]
		}
	}

	for _, node := range s.Grid.FluidNodes {
		for d := Direction(0); d < 4; d++ {
			a := s.Access(node, d)
			b := s.Access(node, d.Inverse())
			s.f[a], s.f[b] = s.f[b], s.f[a]
		}
	}

	for _, node := range s.Grid.FluidNodes {
		if _, _, _, err := Collide(s.f, s.Access, node, s.Cfg.Tau, s.Step); err != nil {
			return err
		}
	}

	RefreshGhosts(s.f, s.Access, s.Grid, &s.Cfg, 0)
	s.recordMoments(s.f, 0)
	return nil
}
