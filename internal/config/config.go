// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the papersync YAML configuration file, applies
// defaults, and resolves the Notion token from the environment or the
// secrets directory when the file omits it.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/papersync/internal/secrets"
	"github.com/pdiddy/papersync/pkg/types"
)

// DefaultPath is where commands look for the config file when the
// --config flag is not given.
const DefaultPath = "configs/default.yaml"

// tokenEnv overrides both the config file and the secrets directory.
const tokenEnv = "PAPERSYNC_NOTION_TOKEN"

// Load reads the config file at path, fills in defaults, and resolves
// the Notion token. loaded holds the contents of the .secrets/
// directory keyed by filename; pass nil when no secrets were loaded.
func Load(path string, loaded map[string]string) (*types.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("http.timeout", 60*time.Second)
	v.SetDefault("http.user_agent", "papersync/0.1")
	v.SetDefault("arxiv.max_results", 50)
	v.SetDefault("sync.delay", 350*time.Millisecond)
	v.SetDefault("sync.state_dir", ".papersync")
	v.SetDefault("properties.title", "Title")
	v.SetDefault("properties.authors", "Authors")
	v.SetDefault("properties.abstract", "Abstract")
	v.SetDefault("properties.published", "Published")
	v.SetDefault("properties.url", "URL")
	v.SetDefault("properties.arxiv_id", "arXiv ID")
	v.SetDefault("properties.pdf_url", "PDF")

	v.SetEnvPrefix("PAPERSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Notion.Token == "" {
		cfg.Notion.Token = resolveToken(loaded)
	}
	if cfg.HTTP.Timeout <= 0 {
		return nil, fmt.Errorf("http.timeout must be positive, got %v", cfg.HTTP.Timeout)
	}
	if cfg.Sync.Delay < 0 {
		return nil, fmt.Errorf("sync.delay must not be negative, got %v", cfg.Sync.Delay)
	}
	if cfg.Arxiv.MaxResults <= 0 {
		return nil, fmt.Errorf("arxiv.max_results must be positive, got %d", cfg.Arxiv.MaxResults)
	}
	return &cfg, nil
}

func resolveToken(loaded map[string]string) string {
	if t := os.Getenv(tokenEnv); t != "" {
		return t
	}
	return loaded[secrets.NotionTokenKey]
}
