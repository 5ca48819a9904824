package lbm

// BoundaryHook is a per-cell callable invoked once per cell per step, before
// the phase-boundary rules below run. It receives the engine, the cell's
// flat index, and its (x, y, z) position, and may mutate any field the
// engine exposes. It runs in parallel across cells and must not establish
// cross-cell dependencies.
type BoundaryHook func(e *Engine, n, x, y, z int)

// Apply registers bc as the engine's boundary hook if none is registered
// yet. If a hook is already registered, Apply instead invokes the stored
// hook once for every cell immediately — used to re-apply time-independent
// conditions on demand, outside the normal step loop.
func (e *Engine) Apply(bc BoundaryHook) {
	if e.hook == nil {
		e.hook = bc
		return
	}
	parallelRange(0, e.N, e.Threads, func(n int) {
		x, y, z := IndexToPosition(n, e.Nx, e.Ny, e.Nz)
		e.hook(e, n, x, y, z)
	})
}

// boundary runs Stage A (the user hook, if registered) and then Stage B
// (the phase-boundary rules) through the shadow buffer, committing it back
// to F by swapping buffer handles.
func (e *Engine) boundary() {
	if e.hook != nil {
		parallelRange(0, e.N, e.Threads, func(n int) {
			x, y, z := IndexToPosition(n, e.Nx, e.Ny, e.Nz)
			e.hook(e, n, x, y, z)
		})
	}

	e.copyToShadow()
	parallelRange(0, e.N, e.Threads, func(n int) {
		switch e.Flags[n] {
		case Solid:
			e.bounceBackFrom(n)
		case Inlet:
			var feq [Q]float64
			Equilibrium(e.Rho[n], e.Ux[n], e.Uy[n], &feq)
			for i := 0; i < Q; i++ {
				e.FTemp[i][n] = feq[i]
			}
		case Outlet:
			x, y, z := IndexToPosition(n, e.Nx, e.Ny, e.Nz)
			if x == 0 {
				return
			}
			upstream := PositionToIndex(x-1, y, z, e.Nx, e.Ny, e.Nz)
			for i := 0; i < Q; i++ {
				e.FTemp[i][n] = e.F[i][upstream]
			}
		}
	})
	e.commitBoundary()
}

// bounceBackFrom reflects distributions out of every non-solid neighbor of
// solid cell n: for each such neighbor nn, every component of nn's
// distribution is replaced by its direction-opposite component.
func (e *Engine) bounceBackFrom(n int) {
	for j := 1; j < Q; j++ {
		nn := e.neighborAt(n, j)
		if e.Flags[nn] == Solid {
			continue
		}
		for i := 0; i < Q; i++ {
			e.FTemp[i][nn] = e.F[opp[i]][nn]
		}
	}
}
