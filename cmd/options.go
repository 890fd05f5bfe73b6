package cmd

// Options holds the shared command-line options for the trendyrepo CLI.
type Options struct {
	Window    string // daily, weekly, monthly
	Language  string // language qualifier; empty = all languages
	Format    string // table, json
	Limit     int    // max repositories to display (0 = all fetched)
	Verbosity int
	NoCache   bool  // bypass the enrichment cache for this run
	TUI       *bool // nil = auto-detect, true = force TUI, false = disable TUI
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Window: "weekly",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithWindow sets the trending time window (daily, weekly, monthly).
func WithWindow(window string) Option {
	return func(o *Options) {
		o.Window = window
	}
}

// WithLanguage sets the language filter.
func WithLanguage(language string) Option {
	return func(o *Options) {
		o.Language = language
	}
}

// WithFormat sets the output format (table, json).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLimit sets the maximum number of repositories to display.
func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithNoCache bypasses the enrichment cache.
func WithNoCache(noCache bool) Option {
	return func(o *Options) {
		o.NoCache = noCache
	}
}

// WithTUI controls TUI mode (nil = auto-detect, true = force, false = disable).
func WithTUI(tui *bool) Option {
	return func(o *Options) {
		o.TUI = tui
	}
}
