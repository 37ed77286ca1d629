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

// twoLatticeRunFuncs builds the RunFuncs pipeline for the two-lattice
// algorithm: ping-pong between two arrays, fusing streaming and collision
// since a node's destination writes never alias its own or any
// neighbour's source reads.
func twoLatticeRunFuncs() []DomainStep {
	return []DomainStep{
		twoLatticeStep,
		twoLatticeSwapRoles,
	}
}

// twoLatticeStep performs one full two-lattice iteration: emplace
// bounce-back into the source array's ghost neighbours (read-before-write:
// this must happen before any destination writes, since the C++ this
// kernel is grounded on reads ghost-neighbour populations for bounce-back
// directly out of the source array before streaming touches it), stream
// each fluid node src -> dst and collide it in dst in the same pass,
// refresh dst's inlet/outlet ghosts, then
// record dst's moments.
func twoLatticeStep(s *Simulation) error {
	src, _ := s.currentSource()
	dst, _ := s.currentDest()

	EmplaceBounceBack(src, s.Access, s.Grid, s.BSI, 0)

	for _, node := range s.Grid.FluidNodes {
		for d := Direction(0); d < NumDirections; d++ {
			from := s.Grid.Neighbor(node, d.Inverse())
			dst[s.Access(node, d)] = src[s.Access(from, d)]
		}
		if _, _, _, err := Collide(dst, s.Access, node, s.Cfg.Tau, s.Step); err != nil {
			return err
		}
	}

	RefreshGhosts(dst, s.Access, s.Grid, &s.Cfg, 0)
	s.recordMoments(dst, 0)
	return nil
}

// twoLatticeSwapRoles flips which of f/g is "source" for the next
// iteration.
func twoLatticeSwapRoles(s *Simulation) error {
	s.srcIsF = !s.srcIsF
	return nil
}
