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

// Package lbm implements a two-dimensional incompressible flow solver using
// the lattice-Boltzmann method with the D2Q9 velocity set and a
// single-relaxation-time (BGK) collision operator.
package lbm

// Direction indexes a D2Q9 lattice link under the Mattila ordering:
//
//	6 7 8
//	3 4 5
//	0 1 2
//
// Direction 4 is the rest population.
type Direction int

// NumDirections is the size of the D2Q9 velocity set.
const NumDirections = 9

// Rest is the zero-velocity (rest) direction.
const Rest Direction = 4

// dirX and dirY are the D2Q9 lattice velocity vectors, indexed by Direction.
var dirX = [NumDirections]int{-1, 0, 1, -1, 0, 1, -1, 0, 1}
var dirY = [NumDirections]int{-1, -1, -1, 0, 0, 0, 1, 1, 1}

// weight holds the D2Q9 equilibrium weights, indexed by Direction.
var weight = [NumDirections]float64{
	1. / 36., 1. / 9., 1. / 36.,
	1. / 9., 4. / 9., 1. / 9.,
	1. / 36., 1. / 9., 1. / 36.,
}

// streamingDirections are the eight non-rest directions, in ascending order.
var streamingDirections = [8]Direction{0, 1, 2, 3, 5, 6, 7, 8}

// Velocity returns the lattice velocity vector for direction d.
func (d Direction) Velocity() (ex, ey int) {
	return dirX[d], dirY[d]
}

// Weight returns the D2Q9 equilibrium weight for direction d.
func (d Direction) Weight() float64 {
	return weight[d]
}

// Inverse returns the direction opposite d. Inverse(Inverse(d)) == d and
// Weight(d) == Weight(Inverse(d)) for every direction (property P2).
func (d Direction) Inverse() Direction {
	return 8 - d
}

// StreamingDirections returns the eight non-rest directions.
func StreamingDirections() []Direction {
	out := make([]Direction, len(streamingDirections))
	copy(out, streamingDirections[:])
	return out
}

// dot returns the dot product of direction d's lattice velocity with (ux, uy).
func (d Direction) dot(ux, uy float64) float64 {
	return float64(dirX[d])*ux + float64(dirY[d])*uy
}
