package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpslab/papersite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize papersite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure where the site is deployed and where its data lives, and writes a .papersite.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (base path %s)\n", cfgFile, cfg.BasePath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
