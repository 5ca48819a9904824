// Package lbm implements a D2Q9 Lattice Boltzmann Method fluid solver: a
// discrete-velocity kinetic model that evolves a particle distribution field
// on a regular Cartesian lattice to approximate incompressible Navier-Stokes
// flow.
//
// The engine owns the lattice state exclusively (distributions, density,
// velocity, cell-type flags) and advances it in discrete unit-time steps.
// Each step runs collision, boundary, and streaming in that strict order,
// followed by an optional snapshot export:
//
//	e := lbm.New(lbm.Config{Nx: 64, Ny: 64, Nu: 0.05})
//	// populate e.Flags, e.Rho, e.Ux, e.Uy here (scenario setup)
//	e.Start()
//	e.Run(1000)
//
// # Thread Safety
//
// Engine methods are not safe for concurrent use by multiple goroutines.
// Internally each phase runs a data-parallel sweep over the cell index range
// with an implicit barrier between phases; callers only ever see the engine
// from a single goroutine between calls.
package lbm
