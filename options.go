package digitize

// Option configures a Session during creation.
//
// Example:
//
//	s, err := digitize.NewSession(img,
//	    digitize.WithResolution(32),
//	    digitize.WithLevels(4),
//	)
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	resolution int
	levels     int
}

// Defaults match the initial slider positions of the classroom tool:
// 2^4 cells per side and 2^4 gradation levels.
const (
	DefaultResolution = 16
	DefaultLevels     = 16
)

// defaultOptions returns the default session options.
func defaultOptions() options {
	return options{
		resolution: DefaultResolution,
		levels:     DefaultLevels,
	}
}

// WithResolution sets the initial grid side. It must be a power of two in
// [MinResolution, MaxResolution] and divide the source side.
func WithResolution(r int) Option {
	return func(o *options) {
		o.resolution = r
	}
}

// WithLevels sets the initial number of gradation levels. It must be a
// power of two in [MinLevels, MaxLevels].
func WithLevels(g int) Option {
	return func(o *options) {
		o.levels = g
	}
}
