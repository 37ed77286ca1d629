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

import "math"

// Collide applies the BGK single-relaxation-time collision operator at
// node, in place, through access:
//
//	f_d <- f_d - (1/tau)(f_d - f_d^eq)
//
// It returns the node's pre-collision moments, which callers use for
// logging or convergence checks. step and node are passed through only to
// annotate an InvariantError if the node's density is negative or a
// collided population comes out NaN or infinite, which can happen once tau
// is close enough to 0.5 that the scheme has gone numerically unstable.
func Collide(f []float64, access AccessFunc, node int, tau float64, step int) (ux, uy, ρ float64, err error) {
	var local [NumDirections]float64
	for d := Direction(0); d < NumDirections; d++ {
		local[d] = f[access(node, d)]
	}
	ux, uy, ρ = Moments(local[:])
	if ρ < 0 {
		return ux, uy, ρ, &InvariantError{Step: step, Node: node, Msg: "local density is negative"}
	}

	var eq [NumDirections]float64
	Equilibrium(ux, uy, ρ, eq[:])

	invTau := 1 / tau
	for d := Direction(0); d < NumDirections; d++ {
		v := local[d] - invTau*(local[d]-eq[d])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ux, uy, ρ, &InvariantError{
				Step: step,
				Node: node,
				Msg:  "collided population is NaN or infinite; relaxation time may be numerically unstable",
			}
		}
		f[access(node, d)] = v
	}
	return ux, uy, ρ, nil
}
