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

// shiftRunFuncs builds the RunFuncs pipeline for the shift algorithm: a
// single buffer sized (W*H+SHIFT_OFFSET)*9, addressed through two
// SHIFT_OFFSET-separated, physically overlapping windows that alternate
// role each step, fused like two-lattice.
func shiftRunFuncs() []DomainStep {
	return []DomainStep{shiftStep, shiftSwapWindows}
}

// shiftStep performs one full shift iteration: emplace bounce-back into
// the read-side window's ghost neighbours, then a fused stream+collide
// pass writing into the write-side window, then ghost refresh and moment
// recording on the write-side window.
//
// The two windows are SHIFT_OFFSET apart in a single backing array, not
// two separate arrays, so they physically overlap: a node's write address
// (node+dstBase) can equal another node's read address (from+srcBase).
// Sweeping FluidNodes in the wrong order lets a later node read a slot an
// earlier node already overwrote this step. Writing to the higher window
// (dstBase > srcBase) sweeps high-to-low so every read of an
// already-shifted slot happens before that slot is overwritten; writing to
// the lower window sweeps low-to-high for the mirror-image reason.
func shiftStep(s *Simulation) error {
	src, srcBase := s.currentSource()
	dst, dstBase := s.currentDest()

	EmplaceBounceBack(src, s.Access, s.Grid, s.BSI, srcBase)

	nodes := s.Grid.FluidNodes
	descending := dstBase > srcBase
	for i := range nodes {
		idx := i
		if descending {
			idx = len(nodes) - 1 - i
		}
		node := nodes[idx]
		for d := Direction(0); d < NumDirections; d++ {
			from := s.Grid.Neighbor(node, d.Inverse())
			dst[s.Access(node+dstBase, d)] = src[s.Access(from+srcBase, d)]
		}
		if _, _, _, err := Collide(dst, s.Access, node+dstBase, s.Cfg.Tau, s.Step); err != nil {
			return err
		}
	}

	RefreshGhosts(dst, s.Access, s.Grid, &s.Cfg, dstBase)
	s.recordMoments(dst, dstBase)
	return nil
}

// shiftSwapWindows flips which window is "source" for the next iteration.
func shiftSwapWindows(s *Simulation) error {
	_, dstBase := s.currentDest()
	s.shiftSrcBase = dstBase
	return nil
}
