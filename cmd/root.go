package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "trendyrepo",
		Short: "Discover trending GitHub repositories",
		Long: `A CLI tool that surfaces recently created GitHub repositories
sorted by stars, with README-derived summaries for the top results.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrending(cmd, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Add trending flags to root command so `trendyrepo` and
	// `trendyrepo trending` work identically
	addTrendingFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdTrending(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdCache())
	rootCmd.AddCommand(NewCmdVersion())
	rootCmd.AddCommand(NewCmdRateLimit())

	return rootCmd
}
