package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/mosamy007/TrendyRepo/config"
	"github.com/mosamy007/TrendyRepo/internal/cache"
	"github.com/mosamy007/TrendyRepo/internal/gh"
	"github.com/mosamy007/TrendyRepo/internal/log"
	"github.com/mosamy007/TrendyRepo/internal/model"
	"github.com/mosamy007/TrendyRepo/internal/output"
	"github.com/mosamy007/TrendyRepo/internal/timewindow"
	"github.com/mosamy007/TrendyRepo/internal/trend"
	"github.com/mosamy007/TrendyRepo/internal/tui"
)

// NewCmdTrending creates the trending command.
func NewCmdTrending(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending repositories (same as root trendyrepo)",
		Long: `Searches for repositories created within the selected time window,
sorts them by stars, and summarizes the top results from their READMEs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrending(cmd, opts)
		},
	}

	addTrendingFlags(cmd, opts)
	return cmd
}

// addTrendingFlags adds the trending-specific flags to a command.
func addTrendingFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Window, "window", "w", "", "Time window (daily, weekly, monthly)")
	cmd.Flags().StringVarP(&opts.Language, "language", "l", "", "Filter by language (e.g. go, rust)")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Max repositories to display (0 = all)")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "Bypass the enrichment cache")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	// TUI flag with tri-state: nil = auto, true = force, false = disable
	cmd.Flags().Var(newTUIFlag(opts), "tui", "Enable/disable interactive UI (default: auto-detect)")
}

func runTrending(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	useTUI := shouldUseTUI(opts)

	// Suppress logs during TUI to avoid interleaving with the display
	if useTUI {
		log.Initialize(opts.Verbosity, io.Discard)
	} else {
		log.Initialize(opts.Verbosity, os.Stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	windowStr := opts.Window
	if windowStr == "" {
		windowStr = cfg.DefaultWindow
	}
	window, err := timewindow.Parse(windowStr)
	if err != nil {
		return err
	}

	language := opts.Language
	if language == "" {
		language = cfg.DefaultLanguage
	}

	format := output.Format(opts.Format)
	if format == "" {
		format = output.Format(cfg.DefaultFormat)
	}

	token := cfg.GetGitHubToken()
	if token == "" {
		log.Info("no GITHUB_TOKEN set, requests are anonymous and limited to 60/hour")
	}

	var store *cache.Store
	if !opts.NoCache {
		store, err = cache.NewStore()
		if err != nil {
			log.Warn("failed to initialize cache", "error", err)
		}
	}

	runner := newTrendRunner(ctx, token, store)

	if useTUI && (format == "" || format == output.FormatTable) {
		return tui.Run(tui.App{
			Fetch:         runner.fetch,
			SetToken:      runner.setToken,
			Window:        window,
			Language:      language,
			Authenticated: runner.authenticated,
			Limit:         opts.Limit,
		})
	}

	result, err := runner.fetch(ctx, window, language)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(format, opts.Limit)
	return formatter.Format(result, window, os.Stdout)
}

// trendRunner owns the fetcher so that the TUI can install a new credential
// without knowing how clients and caches are wired together.
type trendRunner struct {
	mu      sync.Mutex
	fetcher *trend.Fetcher
	store   *cache.Store
	authed  bool
}

func newTrendRunner(ctx context.Context, token string, store *cache.Store) *trendRunner {
	client := gh.NewClient(ctx, token)
	return &trendRunner{
		fetcher: trend.NewFetcher(client, store),
		store:   store,
		authed:  token != "",
	}
}

func (r *trendRunner) fetch(ctx context.Context, window timewindow.Window, language string) (*model.TrendingResult, error) {
	r.mu.Lock()
	f := r.fetcher
	r.mu.Unlock()
	return f.FetchTrending(ctx, window, language)
}

// setToken replaces the underlying client. Cycles already in flight keep the
// old client; the next fetch uses the new credential.
func (r *trendRunner) setToken(token string) {
	client := gh.NewClient(context.Background(), token)
	r.mu.Lock()
	r.fetcher = trend.NewFetcher(client, r.store)
	r.authed = token != ""
	r.mu.Unlock()
}

func (r *trendRunner) authenticated() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.authed
}
