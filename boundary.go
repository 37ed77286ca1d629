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

// BSIEntry is one border-swap-information record: a fluid node together
// with the streaming directions whose neighbour is a ghost or solid node.
type BSIEntry struct {
	Node int
	Dirs []Direction
}

// BuildBSI classifies every fluid node by which of its streaming-direction
// neighbours point at a ghost or solid node, in fluid_nodes order. A fluid
// node with no such neighbour (fully interior) does not appear in the
// result.
func BuildBSI(g *Grid) []BSIEntry {
	var bsi []BSIEntry
	for _, node := range g.FluidNodes {
		var dirs []Direction
		for _, d := range streamingDirections {
			n := g.Neighbor(node, d)
			if g.IsNonInOutGhost(n) {
				dirs = append(dirs, d)
			}
		}
		if len(dirs) > 0 {
			bsi = append(bsi, BSIEntry{Node: node, Dirs: dirs})
		}
	}
	return bsi
}

// BounceBackDirections returns the directions whose incoming populations
// at entry.Node must be produced by bounce-back: the inverses of the
// ghost-pointing directions recorded in the BSI entry.
func (e BSIEntry) BounceBackDirections() []Direction {
	out := make([]Direction, len(e.Dirs))
	for i, d := range e.Dirs {
		out[i] = d.Inverse()
	}
	return out
}

// BorderAdjacency is the companion representation to BSIEntry: it
// additionally records, alongside each ghost-pointing direction, the node
// index of the ghost/solid neighbour it points at. It carries the same
// information as BSIEntry and either suffices. New builds both; the four
// streaming algorithms work from BSIEntry and look ghost neighbours up
// through Grid.Neighbor.
type BorderAdjacency struct {
	Node      int
	Dirs      []Direction
	Neighbors []int
}

// BuildBorderAdjacency builds the border-adjacency variant of BuildBSI.
func BuildBorderAdjacency(g *Grid) []BorderAdjacency {
	bsi := BuildBSI(g)
	out := make([]BorderAdjacency, len(bsi))
	for i, e := range bsi {
		neighbors := make([]int, len(e.Dirs))
		for j, d := range e.Dirs {
			neighbors[j] = g.Neighbor(e.Node, d)
		}
		out[i] = BorderAdjacency{Node: e.Node, Dirs: e.Dirs, Neighbors: neighbors}
	}
	return out
}
