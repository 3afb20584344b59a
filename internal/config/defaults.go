package config

// DefaultAssets are the doublestar patterns copied from the site root on build.
var DefaultAssets = []string{
	"data/*.json",
	"images/**",
	"css/**",
	"js/**",
	"favicon.ico",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Location: "/",
			Root:     "frontend",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Build: BuildConfig{
			OutputDir: "dist",
			Assets:    DefaultAssets,
		},
	}
}
