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

// EmplaceBounceBack performs the ghost-node-based halfway bounce-back
// emplacement used by two-lattice, swap and shift: for every BSI entry and
// every listed direction d, the border node's outgoing population in
// direction d is written into its ghost neighbour's inverse-direction
// slot, so a later streaming pass reads it back as an incoming-from-wall
// value. base is added to every node index before it reaches access,
// letting shift's windowed buffer reuse this logic unchanged.
func EmplaceBounceBack(f []float64, access AccessFunc, g *Grid, bsi []BSIEntry, base int) {
	for _, e := range bsi {
		for _, d := range e.Dirs {
			ghost := g.Neighbor(e.Node, d)
			f[access(ghost+base, d.Inverse())] = f[access(e.Node+base, d)]
		}
	}
}

// BoundaryRegime selects how the inlet (left, x=0) and outlet (right,
// x=W-1) ghost columns are refreshed between streaming passes.
type BoundaryRegime int

const (
	// VelocityInVelocityOut prescribes velocity at both ends; density is
	// reflected from the adjacent fluid node.
	VelocityInVelocityOut BoundaryRegime = iota
	// VelocityInDensityOut prescribes inlet velocity and outlet density;
	// outlet velocity is copied from the adjacent fluid node.
	VelocityInDensityOut
	// DensityInDensityOut prescribes both densities; both velocities are
	// copied from the adjacent fluid node (inlet uses zero velocity).
	DensityInDensityOut
)

func (r BoundaryRegime) String() string {
	switch r {
	case VelocityInVelocityOut:
		return "vv"
	case VelocityInDensityOut:
		return "vd"
	case DensityInDensityOut:
		return "dd"
	default:
		return "unknown"
	}
}

// ParseBoundaryRegime parses the string form of a BoundaryRegime as
// accepted by configuration files ("vv", "vd", "dd").
func ParseBoundaryRegime(s string) (BoundaryRegime, error) {
	switch s {
	case "vv":
		return VelocityInVelocityOut, nil
	case "vd":
		return VelocityInDensityOut, nil
	case "dd":
		return DensityInDensityOut, nil
	default:
		return 0, &ConfigError{Msg: "unknown boundary regime " + s}
	}
}

// VelocityProfile computes the prescribed inlet or outlet x-velocity at row
// y of an H-row channel.
type VelocityProfile interface {
	Velocity(y, h int) float64
}

// LaminarProfile is the ideal (parabolic) laminar profile, peaking at
// Umax at the channel centerline and vanishing at the walls.
type LaminarProfile struct {
	Umax float64
}

// Velocity implements VelocityProfile.
func (p LaminarProfile) Velocity(y, h int) float64 {
	r := float64(h-1) / 2
	y0 := r
	η := (float64(y) - y0) / r
	return p.Umax * (1 - η*η)
}

// SeventhRuleProfile is the empirical 1/7th-power turbulent profile.
type SeventhRuleProfile struct {
	Umax float64
}

// Velocity implements VelocityProfile.
func (p SeventhRuleProfile) Velocity(y, h int) float64 {
	r := float64(h-1) / 2
	y0 := r
	η := math.Abs((float64(y) - y0) / r)
	return p.Umax * math.Pow(1-η, 1./7.)
}

// RefreshGhosts recomputes (u, ρ) at every inlet/outlet ghost node
// (x ∈ {0, W-1}, y ∈ [1, H-2]) according to the configured boundary regime,
// reflecting density off of the adjacent fluid node where the regime
// leaves density unconstrained, then sets the ghost node's nine
// populations to the equilibrium of that (u, ρ). base is added to every
// node index before it reaches access, as in EmplaceBounceBack.
func RefreshGhosts(f []float64, access AccessFunc, g *Grid, cfg *Config, base int) {
	for y := 1; y < g.H-1; y++ {
		refreshGhostColumn(f, access, g, cfg, 0, y, true, base)
		refreshGhostColumn(f, access, g, cfg, g.W-1, y, false, base)
	}
}

// refreshGhostColumn refreshes a single inlet (isInlet) or outlet ghost
// node at (x, y).
func refreshGhostColumn(f []float64, access AccessFunc, g *Grid, cfg *Config, x, y int, isInlet bool, base int) {
	ghost := g.NodeIndex(x, y) + base
	adjacent := g.Neighbor(ghost-base, adjacentDirection(isInlet)) + base

	var ux, uy, ρ float64
	_, _, ρAdjacent := momentsAt(f, access, adjacent)

	switch cfg.BoundaryRegime {
	case VelocityInVelocityOut:
		ρRef := refDensity(cfg, isInlet)
		ux = profileVelocity(cfg, isInlet, y, g.H)
		uy = 0
		ρ = 2*ρRef - ρAdjacent
	case VelocityInDensityOut:
		if isInlet {
			ux = profileVelocity(cfg, isInlet, y, g.H)
			uy = 0
			ρ = 2*cfg.InletDensity - ρAdjacent
		} else {
			adjUx, adjUy, _ := momentsAt(f, access, adjacent)
			ux, uy = adjUx, adjUy
			ρ = cfg.OutletDensity
		}
	case DensityInDensityOut:
		adjUx, adjUy, _ := momentsAt(f, access, adjacent)
		if isInlet {
			ux, uy = 0, 0
			ρ = cfg.InletDensity
		} else {
			ux, uy = adjUx, adjUy
			ρ = cfg.OutletDensity
		}
	}
	equilibriumAt(f, access, ghost, ux, uy, ρ)
}

func adjacentDirection(isInlet bool) Direction {
	if isInlet {
		return 5 // (+1, 0): the fluid node just east of the inlet ghost
	}
	return 3 // (-1, 0): the fluid node just west of the outlet ghost
}

func refDensity(cfg *Config, isInlet bool) float64 {
	if isInlet {
		return cfg.InletDensity
	}
	return cfg.OutletDensity
}

func profileVelocity(cfg *Config, isInlet bool, y, h int) float64 {
	if isInlet {
		return cfg.InletProfile.Velocity(y, h)
	}
	return cfg.OutletProfile.Velocity(y, h)
}
