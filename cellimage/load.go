package cellimage

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyImage is returned for an image with zero width or height.
var ErrEmptyImage = errors.New("cellimage: image has no pixels")

// Load reads the image at path and returns its normalized grayscale intensities.
func Load(path string, opts ...Option) (*mat.Dense, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cellimage: open %s: %w", path, err)
	}
	return FromImage(img, opts...)
}

// FromImage runs the grayscale, smoothing, resize and normalization steps on img.
func FromImage(img image.Image, opts ...Option) (*mat.Dense, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmptyImage
	}

	gray := imaging.Grayscale(img)
	if cfg.smoothing > 1 {
		gray = imaging.Blur(gray, boxSigma(cfg.smoothing))
	}
	if cfg.pixels > 0 {
		side := int(math.Sqrt(float64(cfg.pixels)))
		if side < 1 {
			side = 1
		}
		gray = imaging.Resize(gray, side, side, imaging.Lanczos)
	}

	return normalize(gray), nil
}

// boxSigma is the standard deviation of a discrete uniform window of width w,
// so a Gaussian blur spreads about as far as the box filter would.
func boxSigma(w int) float64 {
	return math.Sqrt(float64(w*w-1) / 12)
}

// normalize copies the red channel of a grayscale image into a Dense and
// rescales it to [0, 1]. A flat image becomes all zeros.
func normalize(gray *image.NRGBA) *mat.Dense {
	b := gray.Bounds()
	rows, cols := b.Dy(), b.Dx()
	data := make([]float64, rows*cols)
	for y := 0; y < rows; y++ {
		off := y * gray.Stride
		for x := 0; x < cols; x++ {
			data[y*cols+x] = float64(gray.Pix[off+4*x])
		}
	}

	lo, hi := floats.Min(data), floats.Max(data)
	floats.AddConst(-lo, data)
	if span := hi - lo; span > 0 {
		floats.Scale(1/span, data)
	}
	return mat.NewDense(rows, cols, data)
}
