package cellimage

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cellseg/gridgraph"
)

// hueSteps matches the range of gridgraph.PermuteLabels.
const hueSteps = 833

// LabelImage paints every cell with a color derived from its permuted label.
// Cells sharing a label share a color.
func LabelImage(labels [][]int) *image.NRGBA {
	rows := len(labels)
	cols := 0
	if rows > 0 {
		cols = len(labels[0])
	}
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for r, row := range gridgraph.PermuteLabels(labels) {
		for c, p := range row {
			img.Set(c, r, colorful.Hsv(360*float64(p)/hueSteps, 0.65, 0.95))
		}
	}
	return img
}

// SaveLabels writes LabelImage(labels) to path; the format follows the extension.
func SaveLabels(path string, labels [][]int) error {
	if err := imaging.Save(LabelImage(labels), path); err != nil {
		return fmt.Errorf("cellimage: save %s: %w", path, err)
	}
	return nil
}

// GrayImage renders an intensity grid in [0, 1] as an 8-bit grayscale image.
// Values outside [0, 1] are clamped.
func GrayImage(m mat.Matrix) *image.Gray {
	rows, cols := m.Dims()
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := m.At(r, c)
			switch {
			case v < 0:
				v = 0
			case v > 1:
				v = 1
			}
			img.Pix[r*img.Stride+c] = uint8(v*255 + 0.5)
		}
	}
	return img
}
