package parser

import (
	"io"
	"log/slog"

	"github.com/nitro-lang/nitro/pkgs/lexer"
)

// Option represents a parser configuration option
type Option func(*Config)

// Config holds parser configuration
type Config struct {
	logger      *slog.Logger
	tabWidth    int
	diagnostics io.Writer
}

// WithLogger traces every grammar production entered at debug level.
// Parse also hands the logger to the scanner it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithTabWidth sets the tab width of the scanner created by Parse.
// It has no effect on a scanner passed to New.
func WithTabWidth(width int) Option {
	return func(c *Config) {
		c.tabWidth = width
	}
}

// WithDiagnostics writes each recorded diagnostic to w as `line:col: message`
func WithDiagnostics(w io.Writer) Option {
	return func(c *Config) {
		c.diagnostics = w
	}
}

func newConfig(opts []Option) *Config {
	config := &Config{tabWidth: lexer.DefaultTabWidth}
	for _, opt := range opts {
		opt(config)
	}
	if config.logger == nil {
		config.logger = slog.New(slog.DiscardHandler)
	}
	return config
}

// scannerOptions forwards the settings the scanner shares with the parser
func (c *Config) scannerOptions() []lexer.Option {
	return []lexer.Option{
		lexer.WithTabWidth(c.tabWidth),
		lexer.WithLogger(c.logger),
	}
}
