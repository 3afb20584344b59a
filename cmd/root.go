package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpslab/papersite/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "papersite",
	Short: "Research project showcase site: server, static build and queries",
	Long: `papersite serves a research project's showcase site: a home page with the
project overview and one page per research category (measurement, analysis,
intervention) listing its papers. The content comes from data/papers.json and
data/overview.json under the site's base path, either on disk or on a
deployed site. The same queries are available as a JSON API, from the
command line, and as MCP tools for AI agents.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// logf prints a status line to stderr when --verbose is set.
func logf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
