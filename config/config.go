// Package config loads cellseg settings from a TOML file.
//
// A file only needs the keys it changes; everything else keeps Default():
//
//	threshold    = 0.8
//	variant      = "fast"
//	connectivity = "forward"   # forward | 4 | 8
//	indexing     = "row-stride" # row-stride | row-major
//
//	[image]
//	pixels    = 0   # 0 keeps the original size
//	smoothing = 10
//
//	[timing]
//	start   = 100
//	stop    = 10000
//	step    = 500
//	repeats = 1
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/cellseg/cellimage"
	"github.com/katalvlaran/cellseg/disjointset"
	"github.com/katalvlaran/cellseg/gridgraph"
	"github.com/katalvlaran/cellseg/timing"
)

var (
	// ErrUnknownKey is returned when the file sets a key Config does not have.
	ErrUnknownKey = errors.New("config: unknown key")
	// ErrInvalid is returned by Validate for out-of-range values.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds every tunable of the CLI.
type Config struct {
	Threshold    float64 `toml:"threshold"`
	Variant      string  `toml:"variant"`
	Connectivity string  `toml:"connectivity"`
	Indexing     string  `toml:"indexing"`
	Image        Image   `toml:"image"`
	Timing       Timing  `toml:"timing"`
}

// Image configures image preparation.
type Image struct {
	Pixels    int `toml:"pixels"`
	Smoothing int `toml:"smoothing"`
}

// Timing configures the timing sweep.
type Timing struct {
	Start   int `toml:"start"`
	Stop    int `toml:"stop"`
	Step    int `toml:"step"`
	Repeats int `toml:"repeats"`
}

// Default returns threshold 0.7, the naive variant, smoothing 10 and a
// 100..10000 step 500 sweep.
func Default() Config {
	return Config{
		Threshold:    gridgraph.DefaultThreshold,
		Variant:      disjointset.Naive.String(),
		Connectivity: "forward",
		Indexing:     "row-stride",
		Image:        Image{Smoothing: cellimage.DefaultSmoothing},
		Timing: Timing{
			Start:   timing.DefaultStart,
			Stop:    timing.DefaultStop,
			Step:    timing.DefaultStep,
			Repeats: timing.DefaultRepeats,
		},
	}
}

// Load decodes the TOML file at path over Default() and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := disjointset.ParseVariant(c.Variant); err != nil {
		return err
	}
	if _, err := c.GridOptions(); err != nil {
		return err
	}
	switch {
	case c.Image.Pixels < 0:
		return fmt.Errorf("%w: image.pixels = %d", ErrInvalid, c.Image.Pixels)
	case c.Image.Smoothing < 0:
		return fmt.Errorf("%w: image.smoothing = %d", ErrInvalid, c.Image.Smoothing)
	case c.Timing.Start <= 0 || c.Timing.Step <= 0:
		return fmt.Errorf("%w: timing.start and timing.step must be positive", ErrInvalid)
	case c.Timing.Repeats < 1:
		return fmt.Errorf("%w: timing.repeats = %d", ErrInvalid, c.Timing.Repeats)
	}
	return nil
}

// VariantValue returns the parsed disjoint-set variant.
func (c Config) VariantValue() (disjointset.Variant, error) {
	return disjointset.ParseVariant(c.Variant)
}

// GridOptions converts threshold, connectivity and indexing.
func (c Config) GridOptions() (gridgraph.GridOptions, error) {
	conn, err := ParseConnectivity(c.Connectivity)
	if err != nil {
		return gridgraph.GridOptions{}, err
	}
	idx, err := ParseIndexing(c.Indexing)
	if err != nil {
		return gridgraph.GridOptions{}, err
	}
	return gridgraph.GridOptions{Threshold: c.Threshold, Conn: conn, Indexing: idx}, nil
}

// ImageOptions converts the [image] table.
func (c Config) ImageOptions() []cellimage.Option {
	return []cellimage.Option{
		cellimage.WithPixels(c.Image.Pixels),
		cellimage.WithSmoothing(c.Image.Smoothing),
	}
}

// ParseConnectivity accepts "forward", "4" or "8".
func ParseConnectivity(s string) (gridgraph.Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "":
		return gridgraph.ConnForward, nil
	case "4":
		return gridgraph.Conn4, nil
	case "8":
		return gridgraph.Conn8, nil
	}
	return 0, fmt.Errorf("%w: connectivity %q", ErrInvalid, s)
}

// ParseIndexing accepts "row-stride" or "row-major".
func ParseIndexing(s string) (gridgraph.Indexing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row-stride", "":
		return gridgraph.IndexRowStride, nil
	case "row-major":
		return gridgraph.IndexRowMajor, nil
	}
	return 0, fmt.Errorf("%w: indexing %q", ErrInvalid, s)
}
