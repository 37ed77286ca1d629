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

package lbm

// Grid holds the fixed geometry of a rectangular D2Q9 lattice: its
// dimensions, which nodes are fluid, and how to address a node's
// neighbours. It is built once from (fluid_nodes, phase_information) and
// never mutated afterward; every other component of the kernel treats it
// as read-only.
type Grid struct {
	W, H     int
	numNodes int

	// solid is true for nodes marked solid in the input phase information.
	// It is indexed like NodeIndex: solid[x+y*W].
	solid []bool

	// fluid is true for nodes that are neither solid nor on the outer
	// ghost ring.
	fluid []bool

	// FluidNodes is the ascending-sorted list of fluid node indices, as
	// supplied by the caller.
	FluidNodes []int
}

// NewGrid validates and builds a Grid from the external inputs described in
// the constructor contract: W, H, the ascending list of fluid node
// indices, and a length-W*H phase vector (true = solid).
func NewGrid(w, h int, fluidNodes []int, solid []bool) (*Grid, error) {
	if w < 3 || h < 3 {
		return nil, &ConfigError{Msg: "grid must be at least 3x3 to have a non-empty ghost ring"}
	}
	if len(solid) != w*h {
		return nil, &ConfigError{Msg: "phase information length must equal W*H"}
	}
	if len(fluidNodes) == 0 {
		return nil, &ConfigError{Msg: "fluid node set must not be empty"}
	}

	g := &Grid{W: w, H: h, numNodes: w * h}
	g.solid = make([]bool, w*h)
	copy(g.solid, solid)
	g.fluid = make([]bool, w*h)

	last := -1
	for _, i := range fluidNodes {
		if i < 0 || i >= g.numNodes {
			return nil, &ConfigError{Msg: "fluid node index out of range"}
		}
		if i <= last {
			return nil, &ConfigError{Msg: "fluid node indices must be strictly ascending"}
		}
		last = i
		x, y := g.Coords(i)
		if x == 0 || x == w-1 || y == 0 || y == h-1 {
			return nil, &ConfigError{Msg: "fluid nodes may not lie on the outer ghost ring"}
		}
		if g.solid[i] {
			return nil, &ConfigError{Msg: "a node cannot be both fluid and solid"}
		}
		g.fluid[i] = true
	}
	g.FluidNodes = make([]int, len(fluidNodes))
	copy(g.FluidNodes, fluidNodes)
	return g, nil
}

// NumNodes returns W*H, the total number of nodes including the ghost ring.
func (g *Grid) NumNodes() int { return g.numNodes }

// NodeIndex converts (x, y) lattice coordinates to a flat node index.
func (g *Grid) NodeIndex(x, y int) int { return x + y*g.W }

// Coords converts a flat node index back to (x, y) lattice coordinates.
func (g *Grid) Coords(i int) (x, y int) { return i % g.W, i / g.W }

// Neighbor returns the node index reached by stepping from node i one
// lattice link along direction d. Because the outer ring of nodes is
// reserved for ghosts, this is always a valid index for any node that is
// not itself on the outer ring (invariant I2 of the data model).
func (g *Grid) Neighbor(i int, d Direction) int {
	x, y := g.Coords(i)
	ex, ey := d.Velocity()
	return g.NodeIndex(x+ex, y+ey)
}

// IsSolid reports whether node i was marked solid in the input phase
// information.
func (g *Grid) IsSolid(i int) bool { return g.solid[i] }

// IsFluid reports whether node i is a fluid node (not solid, not on the
// outer ghost ring).
func (g *Grid) IsFluid(i int) bool { return g.fluid[i] }

// onOuterRing reports whether (x, y) lies on the W×H grid's outer ring.
func (g *Grid) onOuterRing(x, y int) bool {
	return x == 0 || x == g.W-1 || y == 0 || y == g.H-1
}

// IsInletOutletGhost reports whether node i is on the left (inlet, x=0) or
// right (outlet, x=W-1) ghost column, excluding the four corners, which
// belong to the top/bottom ghost rows instead.
func (g *Grid) IsInletOutletGhost(i int) bool {
	x, y := g.Coords(i)
	if y == 0 || y == g.H-1 {
		return false
	}
	return x == 0 || x == g.W-1
}

// IsCornerNode reports whether (x, y) is one of the grid's four corners.
// The source this kernel is based on had a function named "is_edge_node"
// that actually tested both coordinate pairs with && and so only ever
// matched a corner; it is given its correct name here instead of being
// patched to use || under a misleading name.
func (g *Grid) IsCornerNode(x, y int) bool {
	return (x == 0 || x == g.W-1) && (y == 0 || y == g.H-1)
}

// IsNonInOutGhost reports whether node i is a "non-inout ghost node": it is
// solid, or it lies on the top/bottom ghost row. The left/right ghost
// columns are excluded because those are the inlet/outlet, handled by
// velocity/density boundary refresh rather than bounce-back.
func (g *Grid) IsNonInOutGhost(i int) bool {
	if g.solid[i] {
		return true
	}
	x, y := g.Coords(i)
	if !g.onOuterRing(x, y) {
		return false
	}
	return y == 0 || y == g.H-1
}
