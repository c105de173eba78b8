// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tmdb-pick CLI: search TMDB by
// title, pick one movie or show, and optionally forward its identifier.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tmdb-pick/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from the secrets directory at startup.
var loadedSecrets secrets.Store

// secretDefault returns value when it is set, or the secret stored under
// key otherwise.
func secretDefault(key, value string) string {
	if value != "" {
		return value
	}
	return loadedSecrets.Get(key)
}

// rootCmd is the base command for the tmdb-pick CLI.
var rootCmd = &cobra.Command{
	Use:   "tmdb-pick",
	Short: "Find a movie or show on TMDB and pick its identifier",
	Long: `tmdb-pick searches The Movie Database for a title, lists the movies and
shows it finds, and lets you pick one. The picked TMDB identifier is printed
and, when a forwarding API is configured, submitted to it.

Credentials come from the environment (TMDB_TOKEN, FORWARD_API_URL,
FORWARD_API_TOKEN), a .env file, the config file, or the .secrets/ directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.LoadDotenv(".env"); err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if keys := s.Keys(); len(keys) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded secrets: %v\n", keys)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		return initLogging(logConfig(), verbose, cmd.ErrOrStderr())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogging()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tmdb-pick.yaml or ~/.config/tmdb-pick/tmdb-pick.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets", "directory of credential files (tmdb-token, forward-token, forward-url)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tmdb-pick")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tmdb-pick"))
		}
	}

	viper.SetEnvPrefix("TMDB_PICK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	bindConfig()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
