package config

// Config is the top-level papersite configuration, corresponding to .papersite.yml.
type Config struct {
	Site   SiteConfig   `yaml:"site" koanf:"site"`
	Source SourceConfig `yaml:"source" koanf:"source"`
	Server ServerConfig `yaml:"server" koanf:"server"`
	Build  BuildConfig  `yaml:"build" koanf:"build"`
}

// SiteConfig describes where the site lives and how it is deployed.
type SiteConfig struct {
	// Location is the path the site is served at, e.g. "/" or "/CPS/".
	// The base path is derived from it.
	Location string `yaml:"location" koanf:"location"`
	// Root is the directory holding data/, images/ and other static files.
	Root string `yaml:"root" koanf:"root"`
}

// SourceConfig selects where documents are fetched from for query and serve.
type SourceConfig struct {
	// URL is the origin of a deployed site, e.g. "https://example.github.io".
	// When empty, documents are read from Site.Root.
	URL string `yaml:"url" koanf:"url"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// BuildConfig holds static build settings.
type BuildConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Assets    []string `yaml:"assets" koanf:"assets"`
	Exclude   []string `yaml:"exclude,omitempty" koanf:"exclude"`
}
