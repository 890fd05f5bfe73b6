package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mosamy007/TrendyRepo/config"
	"github.com/mosamy007/TrendyRepo/internal/gh"
)

// NewCmdRateLimit creates the ratelimit command.
func NewCmdRateLimit() *cobra.Command {
	return &cobra.Command{
		Use:   "ratelimit",
		Short: "Check GitHub API rate limit status",
		Long:  `Display the current GitHub API rate limit status for the core and search APIs.`,
		RunE:  runRateLimitStatus,
	}
}

func runRateLimitStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := gh.NewClient(cmd.Context(), cfg.GetGitHubToken())

	limits, err := client.RateLimits(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get rate limits: %w", err)
	}

	fmt.Println("GitHub API Rate Limits:")
	if !client.Authenticated() {
		fmt.Println("(anonymous; set GITHUB_TOKEN to raise the limits)")
	}
	fmt.Println()

	if limits.Core != nil {
		resetIn := time.Until(limits.Core.Reset.Time).Round(time.Second)
		if resetIn < 0 {
			resetIn = 0
		}
		fmt.Printf("  Core:   %d/%d remaining (resets in %s)\n", limits.Core.Remaining, limits.Core.Limit, resetIn)
	}
	if limits.Search != nil {
		resetIn := time.Until(limits.Search.Reset.Time).Round(time.Second)
		if resetIn < 0 {
			resetIn = 0
		}
		fmt.Printf("  Search: %d/%d remaining (resets in %s)\n", limits.Search.Remaining, limits.Search.Limit, resetIn)
	}

	return nil
}
