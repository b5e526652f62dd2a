package timing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/cellseg/gridgraph"
)

// Loader returns a grid of roughly pixels cells.
type Loader func(pixels int) (mat.Matrix, error)

// Sample is one measurement.
type Sample struct {
	Pixels   int           `json:"pixels"`
	Variant  string        `json:"variant"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	PerPixel float64       `json:"seconds_per_pixel"`
}

// Report is the outcome of one sweep.
type Report struct {
	RunID     uuid.UUID `json:"run_id"`
	Started   time.Time `json:"started"`
	Threshold float64   `json:"threshold"`
	Samples   []Sample  `json:"samples"`
}

// Series is the per-pixel cost curve of one variant.
type Series struct {
	Variant  string
	Pixels   []float64
	PerPixel []float64
}

// Run performs the sweep. On cancellation it returns the samples gathered so
// far together with ctx.Err().
func Run(ctx context.Context, load Loader, opts ...Option) (*Report, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rep := &Report{
		RunID:     uuid.New(),
		Started:   time.Now(),
		Threshold: cfg.grid.Threshold,
	}
	cfg.logger.Info("timing sweep", "run", rep.RunID, "start", cfg.start, "stop", cfg.stop, "step", cfg.step)

	for n := cfg.start; n < cfg.stop; n += cfg.step {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		m, err := load(n)
		if err != nil {
			return rep, fmt.Errorf("timing: load %d pixels: %w", n, err)
		}
		gg, err := gridgraph.FromMatrix(m, cfg.grid)
		if err != nil {
			return rep, fmt.Errorf("timing: grid for %d pixels: %w", n, err)
		}

		for _, v := range cfg.variants {
			runs := make([]float64, cfg.repeats)
			for k := range runs {
				tic := time.Now()
				gg.Labels(v)
				runs[k] = float64(time.Since(tic))
			}
			elapsed := time.Duration(stat.Mean(runs, nil))
			s := Sample{
				Pixels:   n,
				Variant:  v.String(),
				Elapsed:  elapsed,
				PerPixel: elapsed.Seconds() / float64(n),
			}
			rep.Samples = append(rep.Samples, s)
			cfg.logger.Debug("measured", "pixels", n, "variant", s.Variant, "elapsed", elapsed)
		}
	}

	return rep, nil
}

// Series splits the samples into one curve per variant, in first-seen order.
func (r *Report) Series() []Series {
	var out []Series
	idx := map[string]int{}
	for _, s := range r.Samples {
		i, ok := idx[s.Variant]
		if !ok {
			i = len(out)
			idx[s.Variant] = i
			out = append(out, Series{Variant: s.Variant})
		}
		out[i].Pixels = append(out[i].Pixels, float64(s.Pixels))
		out[i].PerPixel = append(out[i].PerPixel, s.PerPixel)
	}
	return out
}
