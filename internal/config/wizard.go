package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// manifestCandidates are checked in order when guessing the manifest path.
var manifestCandidates = []string{
	"src/docs/manifest.json",
	"docs/manifest.json",
	"docs/manifest.yaml",
	"docs/manifest.yml",
	"manifest.json",
	"public/docs/manifest.json",
}

// detectManifest returns the first manifest candidate present in the
// current directory.
func detectManifest() string {
	for _, p := range manifestCandidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .docsite.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to docsite! Let's configure your documentation site.")
	fmt.Println()

	defaults := DefaultConfig()

	manifest := detectManifest()
	if manifest != "" {
		fmt.Printf("Detected manifest: %s\n\n", manifest)
	} else {
		manifest = defaults.Manifest
	}

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	// 2. Manifest path.
	manifestPrompt := promptui.Prompt{
		Label:   "Path to the document manifest (.json or .yaml)",
		Default: manifest,
	}
	manifest, err = manifestPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("manifest path: %w", err)
	}

	// 3. Content source.
	sourcePrompt := promptui.Select{
		Label: "Where is document content served from?",
		Items: []string{
			"local directory (docs_dir)",
			"remote base URL (content_url)",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}

	docsDir := filepath.Dir(manifest)
	var contentURL string
	if sourceIdx == 1 {
		urlPrompt := promptui.Prompt{
			Label: "Content base URL",
		}
		contentURL, err = urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content url: %w", err)
		}
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 5. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port for docsite serve",
		Default:  strconv.Itoa(defaults.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 6. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	cfg := defaults
	cfg.Title = title
	cfg.Manifest = manifest
	cfg.DocsDir = docsDir
	cfg.ContentURL = contentURL
	cfg.OutputDir = outputDir
	cfg.Port = port
	if excludeStr != "" {
		cfg.Exclude = append(append([]string{}, DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.Template); err != nil {
		fmt.Printf("\nNote: template %s not found; set template in %s before running docsite build.\n", cfg.Template, DefaultFile)
	}

	if err := cfg.Save(DefaultFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultFile)
	return cfg, nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			token := trimSpace(s[start:i])
			if token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
