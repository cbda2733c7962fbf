package sortedmap

import (
	"log/slog"

	"github.com/amp-labs/amp-sortedmap/logger"
	"github.com/amp-labs/amp-sortedmap/sortable"
)

type config struct {
	ignoreCase bool
	fold       Fold
	order      sortable.Order
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		ignoreCase: true,
		fold:       FoldLower,
		order:      sortable.OrderOrdinal,
	}
}

// Option configures a SortedMap at construction time.
type Option func(*config)

// WithIgnoreCase sets whether keys that differ only in case are the same key.
// Maps created by New ignore case unless told otherwise.
func WithIgnoreCase(ignoreCase bool) Option {
	return func(c *config) {
		c.ignoreCase = ignoreCase
	}
}

// WithFold sets how keys are folded when case is ignored.
func WithFold(fold Fold) Option {
	return func(c *config) {
		c.fold = fold
	}
}

// WithOrder sets how keys (or their folded forms) are ordered.
func WithOrder(order sortable.Order) Option {
	return func(c *config) {
		c.order = order
	}
}

// WithLogger sets the logger used for debug output. Without it the map
// uses logger.Get().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func (c config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}

	return logger.Get()
}
