package lbm

import (
	"math"
	"sync/atomic"
	"testing"
)

func TestValidateWarnings(t *testing.T) {
	cases := []struct {
		nu      float64
		wantErr error
	}{
		{nu: -0.1, wantErr: ErrNegativeViscosity},
		{nu: 0.6, wantErr: ErrHighViscosity},
		{nu: 1.2, wantErr: ErrVeryHighViscosity},
	}
	for _, tc := range cases {
		e := New(Config{Nx: 4, Ny: 4, Nz: 1, Nu: tc.nu})
		e.validate()
		found := false
		for _, w := range e.warnings {
			if w == tc.wantErr {
				found = true
			}
		}
		if !found {
			t.Errorf("nu=%v: expected %v among warnings, got %v", tc.nu, tc.wantErr, e.warnings)
		}
	}
}

func TestHighViscosityReportsBothWarnings(t *testing.T) {
	e := New(Config{Nx: 4, Ny: 4, Nz: 1, Nu: 1.2})
	e.validate()
	if len(e.warnings) != 2 {
		t.Fatalf("expected both the 0.5 and 1.0 stability warnings, got %v", e.warnings)
	}
}

// TestUniformRestStaysAtRest is scenario S1: an all-FLUID lattice started
// at rho=1, u=0 stays at rho=1, u=0 for every subsequent step.
func TestUniformRestStaysAtRest(t *testing.T) {
	e := New(Config{Nx: 16, Ny: 16, Nz: 1, Nu: 0.1})
	for n := 0; n < e.N; n++ {
		e.Flags[n] = Fluid
		e.Rho[n] = 1.0
	}
	e.Start()
	e.Run(100)

	for n := 0; n < e.N; n++ {
		if math.Abs(e.Ux[n]) > 1e-12 || math.Abs(e.Uy[n]) > 1e-12 {
			t.Errorf("cell %d: |u| did not stay near zero: (%v,%v)", n, e.Ux[n], e.Uy[n])
		}
		if math.Abs(e.Rho[n]-1.0) > 1e-12 {
			t.Errorf("cell %d: rho drifted from 1: %v", n, e.Rho[n])
		}
	}
}

// TestBounceBackSymmetry is scenario S4: after one full step against a
// static solid strip, the fluid row directly above it has f[i] == f[opp(i)]
// for the directions that pointed into the wall.
func TestBounceBackSymmetry(t *testing.T) {
	const Nx, Ny = 20, 20
	e := New(Config{Nx: Nx, Ny: Ny, Nz: 1, Nu: 0.1})
	for n := 0; n < e.N; n++ {
		_, y, _ := IndexToPosition(n, Nx, Ny, 1)
		e.Rho[n] = 1.0
		if y == 0 {
			e.Flags[n] = Solid
			continue
		}
		e.Flags[n] = Fluid
		e.Ux[n] = 0.1
	}
	e.Start()
	e.evolve()

	// Directions 4 (0,-1), 7 (-1,-1), 8 (1,-1) point toward the wall at y=0.
	for x := 0; x < Nx; x++ {
		n := PositionToIndex(x, 1, 0, Nx, Ny, 1)
		for _, i := range []int{4, 7, 8} {
			j := Opposite(i)
			if math.Abs(e.F[i][n]-e.F[j][n]) > 1e-9 {
				t.Errorf("cell (%d,1): f[%d]=%v != f[opp]=%v", x, i, e.F[i][n], e.F[j][n])
			}
		}
	}
}

func TestCollisionPanicsOnZeroDensity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero-density moment division")
		}
	}()
	e := New(Config{Nx: 4, Ny: 4, Nz: 1, Nu: 0.1})
	for n := 0; n < e.N; n++ {
		e.Flags[n] = Fluid
	}
	e.collision()
}

func TestApplyHookRegistersThenInvokes(t *testing.T) {
	e := New(Config{Nx: 4, Ny: 4, Nz: 1, Nu: 0.1})
	for n := 0; n < e.N; n++ {
		e.Flags[n] = Fluid
		e.Rho[n] = 1.0
	}

	// Apply runs the hook in parallel across cells, so the counter is atomic.
	var calls atomic.Int64
	hook := func(eng *Engine, n, x, y, z int) {
		calls.Add(1)
	}

	e.Apply(hook)
	if got := calls.Load(); got != 0 {
		t.Fatalf("first Apply should only register the hook, got %d calls", got)
	}

	e.Apply(hook)
	if got := calls.Load(); got != int64(e.N) {
		t.Fatalf("second Apply should invoke the hook for every cell, got %d calls want %d", got, e.N)
	}
}
