package lbm

import "fmt"

// collision relaxes every non-SOLID, non-INLET, non-OUTLET cell's
// distribution toward its local equilibrium. Moments and equilibrium are
// each computed once per cell and all Q directions (including the rest
// direction) are relaxed from that single equilibrium vector — the
// corrected behavior, not the per-direction recomputation-with-skip the
// source used.
func (e *Engine) collision() {
	parallelRange(0, e.N, e.Threads, func(n int) {
		switch e.Flags[n] {
		case Solid, Inlet, Outlet:
			return
		}

		var rho, ux, uy float64
		for i := 0; i < Q; i++ {
			fi := e.F[i][n]
			rho += fi
			cx, cy := c[i][0], c[i][1]
			ux += fi * float64(cx)
			uy += fi * float64(cy)
		}
		if rho == 0 {
			panic(fmt.Sprintf("lbm: moment computation at cell %d divided by zero density", n))
		}
		ux /= rho
		uy /= rho

		var feq [Q]float64
		Equilibrium(rho, ux, uy, &feq)

		invTau := 1.0 / e.Tau
		for i := 0; i < Q; i++ {
			e.F[i][n] = (1-invTau)*e.F[i][n] + invTau*feq[i]
		}

		e.Rho[n] = rho
		e.Ux[n] = ux
		e.Uy[n] = uy
	})
}
