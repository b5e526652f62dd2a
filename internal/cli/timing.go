package cli

import (
	"encoding/json"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cellseg/cellimage"
	"github.com/katalvlaran/cellseg/render"
	"github.com/katalvlaran/cellseg/timing"
)

type timingOpts struct {
	start, stop, step int
	repeats           int
	png               string // gonum/plot chart
	html              string // go-echarts page
	json              string // raw report
}

func (c *CLI) timingCommand() *cobra.Command {
	opts := timingOpts{png: "timing.png"}

	cmd := &cobra.Command{
		Use:   "timing IMAGE",
		Short: "Measure labeling time per pixel for both disjoint-set variants",
		Long: `Timing resizes IMAGE to a growing number of pixels and labels each size with
every disjoint-set variant. Sweep bounds default to the [timing] table of the
config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			tc := c.cfg.Timing
			flags := cmd.Flags()
			if flags.Changed("start") {
				tc.Start = opts.start
			}
			if flags.Changed("stop") {
				tc.Stop = opts.stop
			}
			if flags.Changed("step") {
				tc.Step = opts.step
			}
			if flags.Changed("repeats") {
				tc.Repeats = opts.repeats
			}
			cfg := c.cfg
			cfg.Timing = tc
			if err := cfg.Validate(); err != nil {
				return err
			}
			grid, err := cfg.GridOptions()
			if err != nil {
				return err
			}

			img, err := imaging.Open(args[0])
			if err != nil {
				return err
			}
			load := func(pixels int) (mat.Matrix, error) {
				m, err := cellimage.FromImage(img,
					cellimage.WithPixels(pixels),
					cellimage.WithSmoothing(cfg.Image.Smoothing))
				if err != nil {
					return nil, err
				}
				return m, nil
			}

			rep, err := timing.Run(ctx, load,
				timing.WithRange(tc.Start, tc.Stop, tc.Step),
				timing.WithRepeats(tc.Repeats),
				timing.WithGridOptions(grid),
				timing.WithLogger(logger))
			if err != nil {
				return err
			}
			logger.Info("sweep finished", "run", rep.RunID, "samples", len(rep.Samples))

			return writeTimingOutputs(rep, opts, logger.Info)
		},
	}

	def := c.cfg.Timing
	cmd.Flags().IntVar(&opts.start, "start", def.Start, "first pixel count")
	cmd.Flags().IntVar(&opts.stop, "stop", def.Stop, "pixel count upper bound (exclusive)")
	cmd.Flags().IntVar(&opts.step, "step", def.Step, "pixel count increment")
	cmd.Flags().IntVar(&opts.repeats, "repeats", def.Repeats, "runs averaged per measurement")
	cmd.Flags().StringVar(&opts.png, "png", opts.png, "chart path (.png, .svg, .pdf); empty to skip")
	cmd.Flags().StringVar(&opts.html, "html", "", "interactive chart path")
	cmd.Flags().StringVar(&opts.json, "json", "", "report path")
	return cmd
}

func writeTimingOutputs(rep *timing.Report, opts timingOpts, info func(msg interface{}, keyvals ...interface{})) error {
	var series []render.Series
	for _, s := range rep.Series() {
		series = append(series, render.Series{Name: s.Variant, X: s.Pixels, Y: s.PerPixel})
	}

	if opts.png != "" {
		if err := render.Timings(opts.png, series...); err != nil {
			return err
		}
		info("wrote chart", "path", opts.png)
	}
	if opts.html != "" {
		if err := writeFile(opts.html, func(f *os.File) error {
			return render.TimingsHTML(f, series...)
		}); err != nil {
			return err
		}
		info("wrote chart", "path", opts.html)
	}
	if opts.json != "" {
		if err := writeFile(opts.json, func(f *os.File) error {
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}); err != nil {
			return err
		}
		info("wrote report", "path", opts.json)
	}
	return nil
}

func writeFile(path string, fn func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}
