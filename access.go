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

import "fmt"

// AccessKind selects one of the built-in population storage layouts.
type AccessKind int

const (
	// Collision lays out populations as 9*node+direction (AoS), favoring
	// per-node spatial locality during collision.
	Collision AccessKind = iota
	// Stream lays out populations as direction*numNodes+node (SoA),
	// favoring per-direction locality during streaming.
	Stream
	// Bundle groups directions into rows of three, a hybrid layout.
	Bundle
)

func (k AccessKind) String() string {
	switch k {
	case Collision:
		return "collision"
	case Stream:
		return "stream"
	case Bundle:
		return "bundle"
	default:
		return fmt.Sprintf("AccessKind(%d)", int(k))
	}
}

// ParseAccessKind parses the string form of an AccessKind as accepted by
// configuration files ("collision", "stream", "bundle").
func ParseAccessKind(s string) (AccessKind, error) {
	switch s {
	case "collision":
		return Collision, nil
	case "stream":
		return Stream, nil
	case "bundle":
		return Bundle, nil
	default:
		return 0, &ConfigError{Msg: fmt.Sprintf("unknown access function %q", s)}
	}
}

// AccessFunc maps a (node, direction) pair to its offset in the flat
// population array. An AccessFunc must be a bijection over
// [0,numNodes)×[0,9) onto [0,9*numNodes): every other component of the
// kernel is written against this interface so that swapping the layout
// never changes a numeric result (property P5).
type AccessFunc func(node int, d Direction) int

// NewAccessFunc builds the AccessFunc for one of the three built-in
// layouts, closing over the number of nodes in the lattice. When debug is
// true, the returned function is wrapped with a bounds check that panics
// on an out-of-range (node, d) pair or an out-of-range resulting offset --
// the debug-build assertion for what would otherwise be a code bug
// (a bad neighbor computation, an off-by-one in a loop bound) silently
// corrupting an unrelated node's populations instead of failing loudly.
func NewAccessFunc(kind AccessKind, numNodes int, debug bool) AccessFunc {
	var access AccessFunc
	switch kind {
	case Collision:
		access = func(node int, d Direction) int {
			return NumDirections*node + int(d)
		}
	case Stream:
		access = func(node int, d Direction) int {
			return int(d)*numNodes + node
		}
	case Bundle:
		// Directions are grouped into three rows of three
		// (0,1,2)(3,4,5)(6,7,8); each row is stored contiguously across all
		// nodes, and within a row the three directions are contiguous for a
		// given node. This is a hybrid of Collision (contiguous-per-node)
		// and Stream (contiguous-per-direction): good streaming locality
		// along a row, good collision locality within it.
		rowSize := numNodes * 3
		access = func(node int, d Direction) int {
			row := int(d) / 3
			col := int(d) % 3
			return row*rowSize + node*3 + col
		}
	default:
		panic(fmt.Sprintf("lbm: invalid access kind %d", int(kind)))
	}
	if !debug {
		return access
	}
	bound := NumDirections * numNodes
	return func(node int, d Direction) int {
		if node < 0 || node >= numNodes || d < 0 || d >= NumDirections {
			panic(fmt.Sprintf("lbm: access(%d, %d) out of range [0,%d)x[0,%d)", node, d, numNodes, NumDirections))
		}
		idx := access(node, d)
		if idx < 0 || idx >= bound {
			panic(fmt.Sprintf("lbm: access(%d, %d) = %d out of range [0,%d)", node, d, idx, bound))
		}
		return idx
	}
}
