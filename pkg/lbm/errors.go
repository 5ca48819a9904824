package lbm

import (
	"errors"
	"fmt"
)

// Configuration and stability issues surfaced by Start. These are
// non-fatal: the engine reports them and continues, leaving the caller to
// decide whether Warnings() should abort a run.
var (
	// ErrBadDimensions indicates a D2Q9 engine constructed with Nz != 1.
	ErrBadDimensions = errors.New("lbm: D2Q9 requires Nz == 1")

	// ErrNegativeViscosity indicates a negative kinematic viscosity.
	ErrNegativeViscosity = errors.New("lbm: kinematic viscosity is negative")

	// ErrHighViscosity indicates a viscosity likely to destabilize BGK
	// relaxation (nu >= 0.5).
	ErrHighViscosity = errors.New("lbm: kinematic viscosity is at or above 0.5, instability likely")

	// ErrVeryHighViscosity indicates a viscosity far outside the stable
	// range (nu >= 1.0).
	ErrVeryHighViscosity = errors.New("lbm: kinematic viscosity is at or above 1.0, instability very likely")
)

// ExportError wraps a failure to write a snapshot. The step loop prints it
// to standard error, records it in Warnings(), and continues rather than
// aborting the run.
type ExportError struct {
	Step int
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("lbm: export at step %d failed: %v", e.Step, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
