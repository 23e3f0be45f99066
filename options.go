package htmldiff

// DefaultMaxDepth bounds recursion when no WithMaxDepth option is given.
// Trees from real documents sit far below it; adversarially nested input
// hits ErrMaxDepth instead of exhausting the stack.
const DefaultMaxDepth = 512

// config holds the optional knobs for one comparison.
type config struct {
	maxDepth int
	minify   bool
}

func defaultConfig() config {
	return config{maxDepth: DefaultMaxDepth}
}

// Option adjusts a comparison; zero or more can be passed to Compare and
// CompareHTML.
type Option func(*config)

// WithMaxDepth overrides the recursion depth limit.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithMinify runs both inputs through an HTML minifier before parsing,
// collapsing formatting-only whitespace. It only affects CompareHTML;
// Compare receives already-parsed trees.
func WithMinify() Option {
	return func(c *config) {
		c.minify = true
	}
}
