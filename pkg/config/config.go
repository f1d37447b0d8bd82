// Package config loads and writes archidoc.yml project configuration.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file archidoc looks for.
const FileName = "archidoc.yml"

// Config represents archidoc.yml configuration.
type Config struct {
	Project  ProjectConfig  `yaml:"project"`
	Source   SourceConfig   `yaml:"source"`
	Output   OutputConfig   `yaml:"output"`
	Validate ValidateConfig `yaml:"validate"`
}

// ProjectConfig holds project metadata.
type ProjectConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// SourceConfig controls how source trees are scanned.
type SourceConfig struct {
	Root       string   `yaml:"root"`
	Language   string   `yaml:"language"`
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
}

// OutputConfig controls where artifacts are written.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	HTML bool   `yaml:"html"`
}

// ValidateConfig tunes ghost/orphan file validation.
type ValidateConfig struct {
	EntryPoints []string `yaml:"entry_points"`
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Root:       ".",
			Language:   "auto",
			Extensions: []string{".go", ".rs", ".ts", ".js", ".py"},
			Exclude:    []string{"vendor", "node_modules", "target", ".git"},
		},
		Output: OutputConfig{
			Dir: "docs/architecture",
		},
		Validate: ValidateConfig{
			EntryPoints: []string{
				"doc.go", "main.go",
				"mod.rs", "lib.rs", "main.rs",
				"index.ts", "index.js",
				"__init__.py",
			},
		},
	}
}

// Load reads archidoc.yml from dir, with ARCHIDOC_* environment
// variables overriding file values. A missing file yields defaults.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("archidoc")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.AutomaticEnv()
	v.SetEnvPrefix("ARCHIDOC")

	cfg := Default()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	if s := v.GetString("project.name"); s != "" {
		cfg.Project.Name = s
	}
	if s := v.GetString("project.description"); s != "" {
		cfg.Project.Description = s
	}
	if s := v.GetString("source.root"); s != "" {
		cfg.Source.Root = s
	}
	if s := v.GetString("source.language"); s != "" {
		cfg.Source.Language = s
	}
	if ss := v.GetStringSlice("source.extensions"); len(ss) > 0 {
		cfg.Source.Extensions = ss
	}
	if ss := v.GetStringSlice("source.exclude"); len(ss) > 0 {
		cfg.Source.Exclude = ss
	}
	if s := v.GetString("output.dir"); s != "" {
		cfg.Output.Dir = s
	}
	if v.IsSet("output.html") {
		cfg.Output.HTML = v.GetBool("output.html")
	}
	if ss := v.GetStringSlice("validate.entry_points"); len(ss) > 0 {
		cfg.Validate.EntryPoints = ss
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
