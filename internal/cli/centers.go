package cli

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellseg/cellimage"
	"github.com/katalvlaran/cellseg/centroid"
	"github.com/katalvlaran/cellseg/render"
)

type centersOpts struct {
	csv    string // "" or "-" writes to stdout
	output string // optional scatter plot over the grayscale grid
}

func (c *CLI) centersCommand() *cobra.Command {
	var opts centersOpts

	cmd := &cobra.Command{
		Use:   "centers IMAGE",
		Short: "Compute the centroid of every multi-cell region",
		Long: `Centers labels IMAGE and prints one "x,y" line per region with at least two
cells. The first line is always the 0,0 placeholder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			m, gg, err := c.loadGrid(args[0])
			if err != nil {
				return err
			}
			labels, err := c.labelGrid(gg)
			if err != nil {
				return err
			}
			centers := centroid.ClusterCenters(labels)
			logger.Info("found cells", "count", len(centers)-1)

			if err := c.writeCenters(opts.csv, centers); err != nil {
				return err
			}
			if opts.output != "" {
				if err := render.Centers(opts.output, cellimage.GrayImage(m), centers); err != nil {
					return err
				}
				logger.Info("wrote centers plot", "path", opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.csv, "csv", "", "write centers to this file instead of stdout")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "plot the centers over the image (.png, .svg, .pdf)")
	return cmd
}

func (c *CLI) writeCenters(path string, centers []centroid.Point) error {
	if path == "" || path == "-" {
		return writeCentersCSV(c.Out, centers)
	}
	return writeFile(path, func(f *os.File) error {
		return writeCentersCSV(f, centers)
	})
}

func writeCentersCSV(out io.Writer, centers []centroid.Point) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range centers {
		rec := []string{
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
