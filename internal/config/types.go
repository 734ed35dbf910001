package config

// Config is the top-level docsite configuration, corresponding to .docsite.yml.
type Config struct {
	Title    string `yaml:"title" koanf:"title"`
	Manifest string `yaml:"manifest" koanf:"manifest"`

	// Build step.
	DocsDir     string   `yaml:"docs_dir" koanf:"docs_dir"`
	AssetsDir   string   `yaml:"assets_dir" koanf:"assets_dir"`
	AssetsDest  string   `yaml:"assets_dest" koanf:"assets_dest"`
	DocsDest    string   `yaml:"docs_dest" koanf:"docs_dest"`
	DocPatterns []string `yaml:"doc_patterns" koanf:"doc_patterns"`
	Exclude     []string `yaml:"exclude" koanf:"exclude"`
	Template    string   `yaml:"template" koanf:"template"`
	OutputDir   string   `yaml:"output_dir" koanf:"output_dir"`

	// Serving and content.
	Port               int    `yaml:"port" koanf:"port"`
	ContentURL         string `yaml:"content_url" koanf:"content_url"`
	FetchTimeout       string `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	ImagePrefixFrom    string `yaml:"image_prefix_from" koanf:"image_prefix_from"`
	ImagePrefixTo      string `yaml:"image_prefix_to" koanf:"image_prefix_to"`
	RenderCacheSize    int    `yaml:"render_cache_size" koanf:"render_cache_size"`
	PreloadConcurrency int    `yaml:"preload_concurrency" koanf:"preload_concurrency"`
	CORSAllowAll       bool   `yaml:"cors_allow_all" koanf:"cors_allow_all"`

	LogLevel string `yaml:"log_level" koanf:"log_level"`
}
