package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellseg/config"
	"github.com/katalvlaran/cellseg/timing"
)

// twoSquares writes a 40×40 black PNG with two white 10×10 squares.
func twoSquares(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.Black)
		}
	}
	for _, origin := range []int{5, 25} {
		for y := origin; y < origin+10; y++ {
			for x := origin; x < origin+10; x++ {
				img.Set(x, y, color.White)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "cells.png")
	require.NoError(t, imaging.Save(img, path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	var out bytes.Buffer
	c.Out = &out
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCenters_CSVToStdout(t *testing.T) {
	out, err := execute(t, "centers", twoSquares(t), "--smoothing", "0")
	require.NoError(t, err)
	assert.Equal(t, "x,y\n0,0\n9.5,9.5\n29.5,29.5\n", out)
}

func TestCenters_FileAndPlot(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "centers.csv")
	plotPath := filepath.Join(dir, "centers.png")

	out, err := execute(t, "centers", twoSquares(t), "--smoothing", "0", "--csv", csvPath, "-o", plotPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "x,y\n0,0\n9.5,9.5\n29.5,29.5\n", string(data))
	assert.FileExists(t, plotPath)
}

func TestLabel_WritesImageAndCSV(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "labels.png")
	csvPath := filepath.Join(dir, "labels.csv")

	_, err := execute(t, "label", twoSquares(t), "--smoothing", "0", "--variant", "fast", "-o", imgPath, "--csv", csvPath)
	require.NoError(t, err)

	img, err := imaging.Open(imgPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())
	// Both squares are uniform in color.
	assert.Equal(t, img.At(5, 5), img.At(14, 14))
	assert.Equal(t, img.At(25, 25), img.At(34, 34))

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 40, bytes.Count(data, []byte("\n")))
}

func TestTiming_WritesReport(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	htmlPath := filepath.Join(dir, "report.html")

	_, err := execute(t, "timing", twoSquares(t),
		"--smoothing", "0",
		"--start", "100", "--stop", "400", "--step", "100",
		"--png", "", "--html", htmlPath, "--json", jsonPath)
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var rep timing.Report
	require.NoError(t, json.Unmarshal(data, &rep))
	// Three sizes, two variants each.
	require.Len(t, rep.Samples, 6)
	assert.Equal(t, 100, rep.Samples[0].Pixels)
	assert.Equal(t, 300, rep.Samples[5].Pixels)
	assert.FileExists(t, htmlPath)
}

func TestConfigFile_FlagsOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cellseg.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("threshold = 0.5\nvariant = \"fast\"\n[image]\nsmoothing = 0\n"), 0o644))

	c := New(io.Discard, LogInfo)
	c.Out = io.Discard
	root := c.RootCommand()
	root.SetArgs([]string{"centers", twoSquares(t), "--config", cfgPath, "--threshold", "0.9"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	want := config.Default()
	want.Threshold = 0.9
	want.Variant = "fast"
	want.Image.Smoothing = 0
	assert.Equal(t, want, c.cfg)
}

func TestInvalidFlags(t *testing.T) {
	path := twoSquares(t)
	_, err := execute(t, "label", path, "--variant", "quick")
	assert.Error(t, err)
	_, err = execute(t, "label", path, "--connectivity", "6")
	assert.ErrorIs(t, err, config.ErrInvalid)
	_, err = execute(t, "centers")
	assert.Error(t, err)
}

func TestLoggerFromContext(t *testing.T) {
	l := newLogger(io.Discard, LogDebug)
	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))
	assert.NotNil(t, loggerFromContext(context.Background()))
}
