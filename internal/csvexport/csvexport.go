// Package csvexport implements the snapshot sink the engine schedules but
// never writes itself: a bit-exact CSV writer plus a small end-of-run JSON
// summary for tooling that wants one file instead of parsing every
// snapshot.
package csvexport

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gustavoverneck/lattelab/pkg/lbm"
)

// Writer implements lbm.Exporter, writing one CSV file per fired frame
// under Dir (default "exports"). Filenames are "data_<frame>.csv"; Frame 0
// is treated as the single-snapshot case and written to "data.csv".
type Writer struct {
	Dir string
}

// NewWriter returns a Writer rooted at dir. An empty dir defaults to
// "exports", matching the engine's own default export directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "exports"
	}
	return &Writer{Dir: dir}
}

// WriteSnapshot writes each cell's position and current rho/u state as one
// CSV row per cell, in flat-index order. Cell flags are not written.
func (w *Writer) WriteSnapshot(step int, frame uint, e *lbm.Engine) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("csvexport: create export dir: %w", err)
	}

	name := "data.csv"
	if frame > 0 {
		name = fmt.Sprintf("data_%d.csv", frame)
	}
	path := filepath.Join(w.Dir, name)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvexport: open %s: %w", path, err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	bw.WriteString("x,\ty,\tz,\trho,\tu_x,\tu_y\n")
	for n := 0; n < e.N; n++ {
		x, y, z := lbm.IndexToPosition(n, e.Nx, e.Ny, e.Nz)
		rho := e.DensityAt(n)
		ux, uy := e.VelocityAt(n)
		fmt.Fprintf(bw, "%d,\t%d,\t%d,\t%.15f,\t%.15f,\t%.15f\n", x, y, z, rho, ux, uy)
	}
	return bw.Flush()
}

// Summary is the end-of-run metadata WriteSummaryJSON records.
type Summary struct {
	FinalStep    int     `json:"final_step"`
	ElapsedSecs  float64 `json:"elapsed_seconds"`
	MinDensity   float64 `json:"min_density"`
	MaxDensity   float64 `json:"max_density"`
	MaxSpeed     float64 `json:"max_speed"`
	FramesWritten uint   `json:"frames_written"`
}

// WriteSummaryJSON writes a Summary computed from the engine's current
// state to path.
func WriteSummaryJSON(path string, e *lbm.Engine, elapsedSecs float64, framesWritten uint) error {
	s := Summary{
		FinalStep:     e.Step(),
		ElapsedSecs:   elapsedSecs,
		FramesWritten: framesWritten,
	}
	s.MinDensity = math.Inf(1)
	s.MaxDensity = math.Inf(-1)
	for n := 0; n < e.N; n++ {
		rho := e.DensityAt(n)
		if rho < s.MinDensity {
			s.MinDensity = rho
		}
		if rho > s.MaxDensity {
			s.MaxDensity = rho
		}
		ux, uy := e.VelocityAt(n)
		speed := math.Hypot(ux, uy)
		if speed > s.MaxSpeed {
			s.MaxSpeed = speed
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvexport: open %s: %w", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
