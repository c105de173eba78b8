// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tmdb-pick/internal/secrets"
	"github.com/pdiddy/tmdb-pick/internal/tmdb"
	"github.com/pdiddy/tmdb-pick/pkg/types"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultLanguage = "en-US"
)

// bindConfig registers defaults and the unprefixed environment variables
// the tool has always honoured.
func bindConfig() {
	viper.SetDefault("search.base_url", tmdb.DefaultBaseURL)
	viper.SetDefault("search.language", defaultLanguage)
	viper.SetDefault("search.include_adult", false)
	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("forward.enabled", false)
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.max_size", 10)
	viper.SetDefault("logging.max_files", 5)

	viper.BindEnv("search.token", "TMDB_PICK_SEARCH_TOKEN", "TMDB_TOKEN")
	viper.BindEnv("forward.url", "TMDB_PICK_FORWARD_URL", "FORWARD_API_URL")
	viper.BindEnv("forward.token", "TMDB_PICK_FORWARD_TOKEN", "FORWARD_API_TOKEN")
}

func userAgent() string {
	return "tmdb-pick/" + version
}

// resolveConfig merges flags over viper (environment, then config file)
// and falls back to the secrets directory for credentials.
func resolveConfig(cmd *cobra.Command) types.Config {
	timeout := viper.GetDuration("http.timeout")
	if f := cmd.Flags().Lookup("timeout"); f != nil && f.Changed {
		timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpCfg := types.HTTPConfig{Timeout: timeout, UserAgent: userAgent()}

	cfg := types.Config{
		Search: types.SearchConfig{
			HTTPConfig:   httpCfg,
			BaseURL:      viper.GetString("search.base_url"),
			Token:        secretDefault(secrets.TMDBToken, viper.GetString("search.token")),
			Language:     viper.GetString("search.language"),
			IncludeAdult: viper.GetBool("search.include_adult"),
		},
		Forward: types.ForwardConfig{
			HTTPConfig: httpCfg,
			Enabled:    viper.GetBool("forward.enabled"),
			URL:        secretDefault(secrets.ForwardURL, viper.GetString("forward.url")),
			Token:      secretDefault(secrets.ForwardToken, viper.GetString("forward.token")),
		},
		Logging: logConfig(),
	}

	if f := cmd.Flags().Lookup("language"); f != nil && f.Changed {
		cfg.Search.Language, _ = cmd.Flags().GetString("language")
	}
	if f := cmd.Flags().Lookup("include-adult"); f != nil && f.Changed {
		cfg.Search.IncludeAdult, _ = cmd.Flags().GetBool("include-adult")
	}
	if f := cmd.Flags().Lookup("forward"); f != nil && f.Changed {
		cfg.Forward.Enabled, _ = cmd.Flags().GetBool("forward")
	}
	return cfg
}

func logConfig() types.LogConfig {
	return types.LogConfig{
		Level:    viper.GetString("logging.level"),
		File:     viper.GetString("logging.file"),
		MaxSize:  viper.GetInt("logging.max_size"),
		MaxFiles: viper.GetInt("logging.max_files"),
	}
}

// mask hides all but the last four characters of a credential.
func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", 8) + s[len(s)-4:]
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect tmdb-pick configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML (credentials masked)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)
		cfg.Search.Token = mask(cfg.Search.Token)
		cfg.Forward.Token = mask(cfg.Forward.Token)

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
