package cmd

import (
	"fmt"
	"os"

	"github.com/cpslab/papersite/internal/basepath"
	"github.com/cpslab/papersite/internal/config"
	"github.com/cpslab/papersite/internal/datastore"
	"github.com/cpslab/papersite/internal/query"
	"github.com/cpslab/papersite/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `papersite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newFetcher reads documents from the deployed site when source.url is
// set, and from the local site root otherwise.
func newFetcher(cfg *config.Config) datastore.Fetcher {
	if cfg.Source.URL != "" {
		logf("reading documents from %s", cfg.Source.URL)
		return datastore.NewHTTPFetcher(cfg.Source.URL)
	}
	logf("reading documents from %s", cfg.Site.Root)
	return &datastore.FSFetcher{FS: os.DirFS(cfg.Site.Root), Prefix: cfg.BasePath()}
}

// newQueryAPI creates the process-wide store and the query API over it.
func newQueryAPI(cfg *config.Config) *query.API {
	store := datastore.New(newFetcher(cfg), cfg.BasePath())
	return query.New(store)
}

// newRenderer creates a page renderer resolving links against the configured base path.
func newRenderer(api *query.API, cfg *config.Config) (*site.Renderer, error) {
	renderer, err := site.NewRenderer(api, basepath.NewResolver(cfg.BasePath()))
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	return renderer, nil
}
