package lbm

// streaming propagates each non-SOLID, non-OUTLET cell's post-collision
// distribution to its neighbors along each discrete direction, through the
// shadow buffer. Directions are iterated directly — pushing each
// direction's population straight to the neighbor in that direction — not
// via the source's neighbor-then-recover-direction indirection. The rest
// direction never streams.
func (e *Engine) streaming() {
	e.copyToShadow()
	parallelRange(0, e.N, e.Threads, func(n int) {
		switch e.Flags[n] {
		case Solid, Outlet:
			return
		}
		for i := 1; i < Q; i++ {
			nn := e.neighborAt(n, i)
			e.FTemp[i][nn] = e.F[i][n]
		}
	})
	e.commitStreaming()
}
