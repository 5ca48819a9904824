package lbm

import "time"

// Config captures the construction-time choices for an Engine: lattice
// dimensions, viscosity, and the ambient concerns (thread policy, export
// cadence) the original source hard-coded as compile-time macros.
type Config struct {
	Nx, Ny, Nz int

	// Nu is the kinematic viscosity in lattice units.
	Nu float64

	// Threads is the worker count for every parallel sweep. 0 means the
	// platform's maximum hardware parallelism (runtime.GOMAXPROCS(0)).
	Threads int

	// ExportEvery, if non-zero, enables periodic snapshot export with this
	// interval. Equivalent to calling SetExportEvery after construction.
	ExportEvery uint
}

// Engine owns a fixed-size D2Q9 lattice and advances it in discrete
// unit-time steps. It exclusively owns the distribution, density, velocity,
// and flag planes; scenario setup code is expected to write Flags, Rho, Ux,
// and Uy between construction and the first call to Run.
type Engine struct {
	Nx, Ny, Nz int
	N          int
	Nu         float64
	Tau        float64
	Threads    int

	// F is the distribution field, one plane per discrete direction. FTemp
	// is the shadow buffer used as the write target during boundary and
	// streaming; the two are swapped (not copied) to commit a phase.
	F, FTemp [Q][]float64

	Rho        []float64
	Ux, Uy     []float64
	Flags      []CellType

	// neighbors[n*(Q-1)+(i-1)] is the cell adjacent to n in direction i,
	// precomputed once in New so boundary and streaming never repeat the
	// index-to-position-to-index round trip in the hot path.
	neighbors []int32

	step        int
	timesteps   int
	exportEvery uint
	exportOn    bool
	frame       uint
	exportDir   string

	hook     BoundaryHook
	exporter Exporter
	warnings []error

	startTime   time.Time
	initialized bool
}

// New constructs an Engine from cfg and allocates every field plane and the
// neighbor table. Flags default to Fluid, Rho to 1.0, Ux/Uy to 0 — scenario
// setup is expected to overwrite these before Start, which seeds the
// distribution field from whatever Flags/Rho/Ux/Uy hold at that point.
func New(cfg Config) *Engine {
	if cfg.Nz == 0 {
		cfg.Nz = 1
	}
	e := &Engine{
		Nx:          cfg.Nx,
		Ny:          cfg.Ny,
		Nz:          cfg.Nz,
		N:           cfg.Nx * cfg.Ny * cfg.Nz,
		Nu:          cfg.Nu,
		Tau:         3*cfg.Nu + 0.5,
		Threads:     cfg.Threads,
		exportEvery: cfg.ExportEvery,
		exportOn:    cfg.ExportEvery != 0,
		exportDir:   "exports",
	}
	e.allocate()
	return e
}

// allocate sizes every field plane to N and builds the neighbor table.
func (e *Engine) allocate() {
	for i := 0; i < Q; i++ {
		e.F[i] = make([]float64, e.N)
		e.FTemp[i] = make([]float64, e.N)
	}
	e.Rho = make([]float64, e.N)
	e.Ux = make([]float64, e.N)
	e.Uy = make([]float64, e.N)
	e.Flags = make([]CellType, e.N)
	for n := range e.Rho {
		e.Rho[n] = 1.0
	}

	e.neighbors = make([]int32, e.N*(Q-1))
	parallelRange(0, e.N, e.Threads, func(n int) {
		nbrs := Neighbors(n, e.Nx, e.Ny, e.Nz)
		for i := 0; i < Q-1; i++ {
			e.neighbors[n*(Q-1)+i] = int32(nbrs[i])
		}
	})
}

// neighborAt returns the cell adjacent to n in direction i (1..Q-1) using
// the precomputed neighbor table.
func (e *Engine) neighborAt(n, i int) int {
	return int(e.neighbors[n*(Q-1)+(i-1)])
}

// DensityAt returns the density of cell n.
func (e *Engine) DensityAt(n int) float64 { return e.Rho[n] }

// VelocityAt returns the velocity components of cell n.
func (e *Engine) VelocityAt(n int) (ux, uy float64) { return e.Ux[n], e.Uy[n] }

// CellTypeAt returns the flag of cell n.
func (e *Engine) CellTypeAt(n int) CellType { return e.Flags[n] }

// commitBoundary swaps F and FTemp after the boundary phase has finished
// writing into FTemp, avoiding a second O(N*Q) copy back into F.
func (e *Engine) commitBoundary() {
	e.F, e.FTemp = e.FTemp, e.F
}

// commitStreaming swaps F and FTemp after the streaming phase.
func (e *Engine) commitStreaming() {
	e.F, e.FTemp = e.FTemp, e.F
}

// copyToShadow copies every direction plane of F into FTemp, the one
// unavoidable O(N*Q) pass per phase (cells a phase's rules leave untouched
// must still carry their prior value forward).
func (e *Engine) copyToShadow() {
	for i := 0; i < Q; i++ {
		copy(e.FTemp[i], e.F[i])
	}
}
