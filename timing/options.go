package timing

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/cellseg/disjointset"
	"github.com/katalvlaran/cellseg/gridgraph"
)

// Default sweep: 100, 600, ... up to 10000 pixels, one run each.
const (
	DefaultStart   = 100
	DefaultStop    = 100 * 100
	DefaultStep    = 500
	DefaultRepeats = 1
)

// Option configures Run.
type Option func(*config)

type config struct {
	start, stop, step int
	repeats           int
	grid              gridgraph.GridOptions
	variants          []disjointset.Variant
	logger            *log.Logger
}

func defaultConfig() config {
	return config{
		start:    DefaultStart,
		stop:     DefaultStop,
		step:     DefaultStep,
		repeats:  DefaultRepeats,
		grid:     gridgraph.DefaultGridOptions(),
		variants: disjointset.Variants,
		logger:   log.Default(),
	}
}

// WithRange sets the sweep to start, start+step, ... while < stop.
// Panics unless 0 < start and 0 < step.
func WithRange(start, stop, step int) Option {
	if start <= 0 || step <= 0 {
		panic("timing: WithRange requires start > 0 and step > 0")
	}
	return func(c *config) { c.start, c.stop, c.step = start, stop, step }
}

// WithRepeats averages each measurement over n runs. Panics on n < 1.
func WithRepeats(n int) Option {
	if n < 1 {
		panic("timing: WithRepeats(n < 1)")
	}
	return func(c *config) { c.repeats = n }
}

// WithGridOptions sets threshold, connectivity and indexing for labeling.
func WithGridOptions(o gridgraph.GridOptions) Option {
	return func(c *config) { c.grid = o }
}

// WithVariants restricts the sweep to vs. Panics on an empty list.
func WithVariants(vs ...disjointset.Variant) Option {
	if len(vs) == 0 {
		panic("timing: WithVariants()")
	}
	return func(c *config) { c.variants = append([]disjointset.Variant(nil), vs...) }
}

// WithLogger routes progress messages to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("timing: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
