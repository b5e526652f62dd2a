package cellimage

// DefaultSmoothing is the box window size used when no option overrides it.
const DefaultSmoothing = 10

// Option customizes Load and FromImage.
type Option func(*loadConfig)

type loadConfig struct {
	pixels    int
	smoothing int
}

func defaultLoadConfig() loadConfig {
	return loadConfig{smoothing: DefaultSmoothing}
}

// WithPixels resizes the image to a square of about n pixels (side ⌊√n⌋).
// n == 0 keeps the original size. Panics on n < 0.
func WithPixels(n int) Option {
	if n < 0 {
		panic("cellimage: WithPixels(n < 0)")
	}
	return func(c *loadConfig) { c.pixels = n }
}

// WithSmoothing sets the box window size; 0 or 1 disables smoothing.
// Panics on w < 0.
func WithSmoothing(w int) Option {
	if w < 0 {
		panic("cellimage: WithSmoothing(w < 0)")
	}
	return func(c *loadConfig) { c.smoothing = w }
}
