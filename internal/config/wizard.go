package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to papersite! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Deployment location.
	locationPrompt := promptui.Prompt{
		Label:   "Path the site is served at (e.g. / or /CPS/)",
		Default: cfg.Site.Location,
		Validate: func(s string) error {
			if !strings.HasPrefix(s, "/") {
				return fmt.Errorf("must start with /")
			}
			return nil
		},
	}
	location, err := locationPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site location: %w", err)
	}
	cfg.Site.Location = location

	// 2. Site root.
	rootPrompt := promptui.Prompt{
		Label:   "Directory holding data/ and images/",
		Default: cfg.Site.Root,
	}
	root, err := rootPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site root: %w", err)
	}
	cfg.Site.Root = root

	// 3. Document source.
	sourcePrompt := promptui.Select{
		Label: "Where should queries read documents from?",
		Items: []string{
			"local: the site root directory",
			"remote: a deployed site over HTTP",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}
	if sourceIdx == 1 {
		urlPrompt := promptui.Prompt{
			Label: "Site origin (e.g. https://example.github.io)",
			Validate: func(s string) error {
				if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
					return fmt.Errorf("must be an http or https URL")
				}
				return nil
			},
		}
		origin, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("source url: %w", err)
		}
		cfg.Source.URL = origin
	}

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			if _, err := strconv.Atoi(s); err != nil {
				return fmt.Errorf("must be a number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
