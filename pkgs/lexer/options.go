package lexer

import (
	"log/slog"
	"os"
)

// DefaultTabWidth is the number of columns a tab advances when no option overrides it
const DefaultTabWidth = 4

// Option represents a scanner configuration option
type Option func(*Config)

// Config holds scanner configuration
type Config struct {
	tabWidth  int
	logger    *slog.Logger
	telemetry bool
}

// WithTabWidth sets how many columns a tab advances in token positions
func WithTabWidth(width int) Option {
	return func(c *Config) {
		c.tabWidth = width
	}
}

// WithLogger routes the per-token debug trace to logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithTelemetry enables per-type token counting
func WithTelemetry() Option {
	return func(c *Config) {
		c.telemetry = true
	}
}

// TokenTelemetry holds per-token type counts
type TokenTelemetry struct {
	Type  TokenType
	Count int
}

func newConfig(opts []Option) *Config {
	config := &Config{tabWidth: DefaultTabWidth}
	for _, opt := range opts {
		opt(config)
	}
	if config.logger == nil {
		config.logger = defaultLogger()
	}
	return config
}

// defaultLogger discards everything unless NITRO_DEBUG_LEXER is set, in
// which case the token trace goes to stderr without time or level noise.
func defaultLogger() *slog.Logger {
	if os.Getenv("NITRO_DEBUG_LEXER") == "" {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
