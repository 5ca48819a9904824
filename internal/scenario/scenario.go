// Package scenario populates a freshly constructed engine's Flags, Rho, Ux,
// and Uy fields before the caller invokes Run — the external "scenario
// setup" collaborator the engine itself never depends on. Each function
// here mirrors one of the lattice configurations demonstrated in the
// original project's commented-out setups.
package scenario

import (
	"math"

	"github.com/gustavoverneck/lattelab/pkg/lbm"
)

// UniformRest fills every cell as FLUID at rest: rho = 1, u = 0.
func UniformRest(e *lbm.Engine) {
	for n := 0; n < e.N; n++ {
		e.Flags[n] = lbm.Fluid
		e.Rho[n] = 1.0
		e.Ux[n] = 0
		e.Uy[n] = 0
	}
}

// LidDrivenCavity sets the bottom and side walls SOLID, the top row INLET
// with the given lid speed, and the interior FLUID at rest.
func LidDrivenCavity(e *lbm.Engine, lidSpeed float64) {
	for n := 0; n < e.N; n++ {
		x, y, _ := lbm.IndexToPosition(n, e.Nx, e.Ny, e.Nz)
		e.Rho[n] = 1.0
		e.Ux[n] = 0
		e.Uy[n] = 0
		switch {
		case y == 0 || ((x == 0 || x == e.Nx-1) && y < e.Ny-1):
			e.Flags[n] = lbm.Solid
		case y == e.Ny-1:
			e.Flags[n] = lbm.Inlet
			e.Ux[n] = lidSpeed
		default:
			e.Flags[n] = lbm.Fluid
		}
	}
}

// TaylorGreenVortex seeds the classic decaying vortex pair as INLET cells
// everywhere, matching the original setup's choice to prescribe velocity
// at every cell rather than let it evolve from a FLUID seed.
func TaylorGreenVortex(e *lbm.Engine, u0 float64) {
	nx, ny := float64(e.Nx), float64(e.Ny)
	for n := 0; n < e.N; n++ {
		x, y, _ := lbm.IndexToPosition(n, e.Nx, e.Ny, e.Nz)
		e.Flags[n] = lbm.Inlet
		e.Rho[n] = 1.0
		e.Ux[n] = -u0 * math.Cos(2*math.Pi*float64(x)/nx) * math.Sin(2*math.Pi*float64(y)/ny)
		e.Uy[n] = u0 * math.Sin(2*math.Pi*float64(x)/nx) * math.Cos(2*math.Pi*float64(y)/ny)
	}
}

// BounceBackStrip places a single row of SOLID cells at y = 0 and fills
// every cell above it with uniform FLUID carrying the given velocity —
// the configuration testable property S4 exercises directly.
func BounceBackStrip(e *lbm.Engine, ux float64) {
	for n := 0; n < e.N; n++ {
		_, y, _ := lbm.IndexToPosition(n, e.Nx, e.Ny, e.Nz)
		e.Rho[n] = 1.0
		if y == 0 {
			e.Flags[n] = lbm.Solid
			e.Ux[n] = 0
			e.Uy[n] = 0
			continue
		}
		e.Flags[n] = lbm.Fluid
		e.Ux[n] = ux
		e.Uy[n] = 0
	}
}
