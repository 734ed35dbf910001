package config

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = ".docsite.yml"

// DefaultDocPatterns select the markdown copied by the build step.
var DefaultDocPatterns = []string{"**/*.md"}

// DefaultExcludes are glob patterns never copied into the output.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"**/.DS_Store",
	"**/*.swp",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:              "Documentation",
		Manifest:           "src/docs/manifest.json",
		DocsDir:            "src/docs",
		AssetsDir:          "src",
		AssetsDest:         "src",
		DocsDest:           "src/docs",
		DocPatterns:        DefaultDocPatterns,
		Exclude:            DefaultExcludes,
		Template:           "index.html",
		OutputDir:          "dist",
		Port:               3000,
		FetchTimeout:       "10s",
		ImagePrefixFrom:    "../../",
		ImagePrefixTo:      "./src/",
		RenderCacheSize:    128,
		PreloadConcurrency: 8,
		LogLevel:           "info",
	}
}
