package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpslab/papersite/internal/datastore"
	"github.com/cpslab/papersite/internal/progress"
	"github.com/cpslab/papersite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the site to static HTML",
	Long: `Renders the home page and the three category pages to static HTML and
copies the site root's assets (data, images, styles) next to them, producing
a directory that can be deployed under the configured base path.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to build.output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Site.Root == "" {
		return fmt.Errorf("site.root is required to build: assets are copied from it")
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Build.OutputDir
	}

	api := newQueryAPI(cfg)
	renderer, err := newRenderer(api, cfg)
	if err != nil {
		return err
	}

	// Load both documents up front so failures show before rendering.
	store := api.Store()
	store.EnsureLoaded(cmd.Context())
	for _, doc := range []datastore.Document{datastore.DocumentPapers, datastore.DocumentOverview} {
		if state := store.State(doc); state != datastore.StateLoaded {
			fmt.Fprintf(os.Stderr, "Warning: %s is %s; its pages will show the load failure notice\n", doc, state)
		}
	}

	generator := site.NewGenerator(renderer, os.DirFS(cfg.Site.Root), outputDir, cfg.Build.Assets)
	generator.Exclude = cfg.Build.Exclude
	generator.Reporter = progress.NewReporter("Building site")
	result, err := generator.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site built: %s (%d pages, %d assets, %d unchanged, base path %s)\n",
		outputDir, result.Pages, result.Assets, result.Unchanged, cfg.BasePath())
	return nil
}
