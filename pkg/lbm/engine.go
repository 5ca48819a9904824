package lbm

import (
	"fmt"
	"time"
)

// Start seeds each non-solid cell's distribution with the equilibrium of
// its current density and velocity, and validates the configuration.
// Scenario setup must have already written Flags, Rho, Ux, and Uy by the
// time Start is called; New has already allocated every field plane.
func (e *Engine) Start() {
	fmt.Printf("lattelab: starting D2Q9 engine (%dx%dx%d, %d cells, nu=%g)\n", e.Nx, e.Ny, e.Nz, e.N, e.Nu)

	parallelRange(0, e.N, e.Threads, func(n int) {
		if e.Flags[n] == Solid {
			return
		}
		var feq [Q]float64
		Equilibrium(e.Rho[n], e.Ux[n], e.Uy[n], &feq)
		for i := 0; i < Q; i++ {
			e.F[i][n] = feq[i]
		}
	})

	e.validate()
	e.initialized = true
}

// validate checks the configuration for errors and stability warnings,
// collecting them into Warnings() rather than aborting.
func (e *Engine) validate() {
	if e.Nz != 1 {
		e.warnings = append(e.warnings, ErrBadDimensions)
	}
	if e.Nu < 0 {
		e.warnings = append(e.warnings, ErrNegativeViscosity)
		return
	}
	if e.Nu >= 0.5 {
		e.warnings = append(e.warnings, ErrHighViscosity)
	}
	if e.Nu >= 1.0 {
		e.warnings = append(e.warnings, ErrVeryHighViscosity)
	}
}

// Warnings returns every configuration error and stability warning
// collected since construction. The engine never aborts on its own account
// because of them; callers that want fatal behavior on configuration
// errors should check this slice themselves.
func (e *Engine) Warnings() []error {
	return e.warnings
}

// Run advances the engine T steps, calling evolve each step and printing
// progress to standard output. It resets the step counter and the progress
// timing baseline, so it may be called more than once per process.
func (e *Engine) Run(timesteps int) {
	e.timesteps = timesteps
	e.step = 0
	e.startTime = time.Now()
	fmt.Printf("lattelab: running for %d steps...\n", timesteps)
	for e.step < timesteps {
		e.step++
		e.evolve()
		e.PrintProgress()
	}
	fmt.Println()
}

// evolve runs one time step: collision, boundary, streaming, and an
// optional export, in that strict order.
func (e *Engine) evolve() {
	e.collision()
	e.boundary()
	e.streaming()
	e.maybeExport()
}

// Step returns the current step counter.
func (e *Engine) Step() int { return e.step }

// PrintProgress overwrites a single terminal line with step/total, elapsed
// wall time, and an estimated remaining time extrapolated linearly from
// elapsed * total/step.
func (e *Engine) PrintProgress() {
	elapsed := time.Since(e.startTime)
	estTotal := elapsed.Seconds() * float64(e.timesteps) / float64(e.step)
	estLeft := time.Duration((estTotal - elapsed.Seconds()) * float64(time.Second))

	fmt.Printf("\rStep: %d / %d | Elapsed: %s | ETC: %s", e.step, e.timesteps, elapsed.Round(time.Second), estLeft.Round(time.Second))
}
