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

import "gonum.org/v1/gonum/floats"

// Equilibrium computes the Maxwell-Boltzmann equilibrium populations for
// velocity (ux, uy) and density ρ, writing them into out (which must have
// length NumDirections). This is the single canonical expression named in
// the kernel's design notes:
//
//	f_d^eq = w_d * ρ * (1 + 3(e_d·u) + 9/2(e_d·u)^2 - 3/2(u·u))
//
// Two other forms appear in the literature this kernel draws on: one puts
// ρ inside the parenthesis as its leading term, w_d(ρ + 3(e_d·u) + ...),
// which agrees with this form only when ρ = 1, and one replaces the final
// term with -3/2(e_d·u) instead of -3/2(u·u), which is not equilibrium at
// all. Neither is implemented here.
func Equilibrium(ux, uy, ρ float64, out []float64) {
	uu := ux*ux + uy*uy
	for d := Direction(0); d < NumDirections; d++ {
		eu := d.dot(ux, uy)
		out[d] = weight[d] * ρ * (1 + 3*eu + 4.5*eu*eu - 1.5*uu)
	}
}

// Moments computes the local density and velocity from a node's nine
// populations: ρ = Σf_d, u = (Σe_d·f_d)/ρ. Dividing the momentum by ρ is
// required to recover velocity (see the kernel's design notes on the
// difference between velocity and momentum); callers that need the raw
// momentum Σe_d·f_d can recover it by multiplying the returned velocity by
// the returned density.
func Moments(f []float64) (ux, uy, ρ float64) {
	ρ = floats.Sum(f[:NumDirections])
	var px, py float64
	for d := Direction(0); d < NumDirections; d++ {
		ex, ey := d.Velocity()
		px += float64(ex) * f[d]
		py += float64(ey) * f[d]
	}
	if ρ == 0 {
		return 0, 0, 0
	}
	return px / ρ, py / ρ, ρ
}

// momentsAt reads a node's nine populations out of the flat array via
// access and returns its moments.
func momentsAt(f []float64, access AccessFunc, node int) (ux, uy, ρ float64) {
	var local [NumDirections]float64
	for d := Direction(0); d < NumDirections; d++ {
		local[d] = f[access(node, d)]
	}
	return Moments(local[:])
}

// equilibriumAt computes the equilibrium populations for a node's current
// moments and writes them through access into f.
func equilibriumAt(f []float64, access AccessFunc, node int, ux, uy, ρ float64) {
	var local [NumDirections]float64
	Equilibrium(ux, uy, ρ, local[:])
	for d := Direction(0); d < NumDirections; d++ {
		f[access(node, d)] = local[d]
	}
}
