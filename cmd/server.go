package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cpslab/papersite/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the site and its JSON API over HTTP",
	Long: `Starts an HTTP server that renders the site's pages, answers the JSON query
API under <base>/api/, and serves the site root's static files, all under the
configured base path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = serverPort
		}

		api := newQueryAPI(cfg)
		renderer, err := newRenderer(api, cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			BasePath: cfg.BasePath(),
			SiteRoot: cfg.Site.Root,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, api, renderer)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "papersite server %s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Base path: %s\n", cfg.BasePath())
		if cfg.Source.URL != "" {
			fmt.Fprintf(os.Stderr, "  Data: %s\n", cfg.Source.URL)
		}
		if cfg.Site.Root != "" {
			fmt.Fprintf(os.Stderr, "  Site root: %s\n", cfg.Site.Root)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
