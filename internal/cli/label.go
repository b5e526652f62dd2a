package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellseg/cellimage"
	"github.com/katalvlaran/cellseg/centroid"
)

type labelOpts struct {
	output string // color-coded label image
	csv    string // raw label matrix, optional
}

func (c *CLI) labelCommand() *cobra.Command {
	opts := labelOpts{output: "labels.png"}

	cmd := &cobra.Command{
		Use:   "label IMAGE",
		Short: "Label connected foreground regions and save a color-coded map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			prog := newProgress(logger)
			m, gg, err := c.loadGrid(args[0])
			if err != nil {
				return err
			}
			rows, cols := m.Dims()
			prog.done("loaded image", "rows", rows, "cols", cols)

			prog = newProgress(logger)
			labels, err := c.labelGrid(gg)
			if err != nil {
				return err
			}
			prog.done("labeled", "variant", c.cfg.Variant, "classes", len(centroid.Sizes(labels)))

			if err := cellimage.SaveLabels(opts.output, labels); err != nil {
				return err
			}
			logger.Info("wrote label image", "path", opts.output)

			if opts.csv != "" {
				if err := writeLabelsCSV(opts.csv, labels); err != nil {
					return err
				}
				logger.Info("wrote label matrix", "path", opts.csv)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", opts.output, "label image path (.png, .jpg, .tif...)")
	cmd.Flags().StringVar(&opts.csv, "csv", "", "also write the label matrix as CSV")
	return cmd
}

func writeLabelsCSV(path string, labels [][]int) error {
	return writeFile(path, func(f *os.File) error {
		w := csv.NewWriter(f)
		record := []string{}
		for _, row := range labels {
			record = record[:0]
			for _, l := range row {
				record = append(record, strconv.Itoa(l))
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
		w.Flush()
		return w.Error()
	})
}
