package peerstats

import "fmt"

// DefaultWindowSize is the number of samples retained per peer when no
// WithWindowSize option is given. It matches the smallest sample count for
// which the 95% confidence interval estimate is statistically meaningful.
const DefaultWindowSize = 30

// config is a structure containing all the options that can be used when
// constructing the stats engine.
type config struct {
	windowSize int
}

// Option stats engine option type.
type Option func(*config) error

// defaults are the default stats engine options. This option will be
// automatically prepended to any options you pass to the constructor.
var defaults = func(c *config) error {
	c.windowSize = DefaultWindowSize
	return nil
}

// apply applies the given options to this config
func (c *config) apply(opts ...Option) error {
	for i, opt := range opts {
		if err := opt(c); err != nil {
			return fmt.Errorf("stats option %d failed: %s", i, err)
		}
	}
	return nil
}

func (c *config) validate() error {
	if c.windowSize <= 0 {
		return fmt.Errorf("window size must be positive, got %d", c.windowSize)
	}
	return nil
}

// WithWindowSize configures how many of the most recent samples each
// peer's window retains; once full, the oldest sample is evicted on every
// insert. Both the ping and the transmission store share this size.
func WithWindowSize(size int) Option {
	return func(c *config) error {
		c.windowSize = size
		return nil
	}
}
