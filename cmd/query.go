package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpslab/papersite/internal/papers"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query papers and overview sections",
	Long: `Looks up papers and overview sections from the configured site and prints
the result as a JSON {"data": ...} envelope, the same shape the HTTP API returns.`,
}

var queryPapersCmd = &cobra.Command{
	Use:   "papers",
	Short: "List papers, optionally of one category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		api := newQueryAPI(cfg)

		category, _ := cmd.Flags().GetString("category")
		if category == "" {
			return printJSON(api.AllPapers(cmd.Context()))
		}
		if !papers.Category(category).Valid() {
			return fmt.Errorf("unknown category %q (want measurement, analysis or intervention)", category)
		}
		return printJSON(api.PapersByCategory(cmd.Context(), papers.Category(category)))
	},
}

var queryPaperCmd = &cobra.Command{
	Use:   "paper [id]",
	Short: "Show one paper by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printJSON(newQueryAPI(cfg).PaperByID(cmd.Context(), args[0]))
	},
}

var queryCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the paper categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printJSON(newQueryAPI(cfg).Categories())
	},
}

var queryOverviewCmd = &cobra.Command{
	Use:   "overview [section]",
	Short: "List overview sections, optionally only those with one section key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		api := newQueryAPI(cfg)
		if len(args) == 1 {
			return printJSON(api.OverviewBySection(cmd.Context(), args[0]))
		}
		return printJSON(api.OverviewAll(cmd.Context()))
	},
}

func init() {
	queryPapersCmd.Flags().String("category", "", "category: measurement, analysis or intervention")
	queryCmd.AddCommand(queryPapersCmd, queryPaperCmd, queryCategoriesCmd, queryOverviewCmd)
	rootCmd.AddCommand(queryCmd)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
