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

import (
	"math"
	"testing"
)

// TestCollideAtEquilibriumIsNoOp checks that colliding populations already
// at equilibrium leaves them unchanged, for any tau: f - (1/tau)(f-f^eq) =
// f when f == f^eq.
func TestCollideAtEquilibriumIsNoOp(t *testing.T) {
	access := NewAccessFunc(Collision, 1, false)
	f := make([]float64, NumDirections)
	Equilibrium(0.03, -0.01, 1.1, f)
	before := append([]float64(nil), f...)

	if _, _, _, err := Collide(f, access, 0, 1.4, 0); err != nil {
		t.Fatalf("Collide: %v", err)
	}
	for d := range f {
		if math.Abs(f[d]-before[d]) > 1e-14 {
			t.Errorf("Collide at equilibrium changed f[%d] from %v to %v", d, before[d], f[d])
		}
	}
}

func TestCollideRelaxesTowardEquilibrium(t *testing.T) {
	access := NewAccessFunc(Collision, 1, false)
	f := make([]float64, NumDirections)
	// Start displaced from equilibrium: all mass in the rest population.
	f[Rest] = 1
	tau := 2.0

	var eq [NumDirections]float64
	Equilibrium(0, 0, 1, eq[:])

	if _, _, _, err := Collide(f, access, 0, tau, 0); err != nil {
		t.Fatalf("Collide: %v", err)
	}
	for d := Direction(0); d < NumDirections; d++ {
		before := 0.0
		if d == Rest {
			before = 1
		}
		want := before - (1/tau)*(before-eq[d])
		if math.Abs(f[d]-want) > 1e-14 {
			t.Errorf("f[%d] = %v, want %v", d, f[d], want)
		}
	}
}

func TestCollideReturnsMoments(t *testing.T) {
	access := NewAccessFunc(Collision, 1, false)
	f := make([]float64, NumDirections)
	Equilibrium(0.1, 0.02, 1.05, f)

	ux, uy, ρ, err := Collide(f, access, 0, 1.4, 0)
	if err != nil {
		t.Fatalf("Collide: %v", err)
	}
	if math.Abs(ux-0.1) > 1e-12 || math.Abs(uy-0.02) > 1e-12 || math.Abs(ρ-1.05) > 1e-12 {
		t.Errorf("Collide moments = (%v,%v,%v), want (0.1,0.02,1.05)", ux, uy, ρ)
	}
}
