// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the profile-notes CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/profile-notes/internal/format"
	"github.com/pdiddy/profile-notes/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the profile-notes CLI.
var rootCmd = &cobra.Command{
	Use:   "profile-notes",
	Short: "Turn professional profiles into linked knowledge-base notes",
	Long: `profile-notes fetches a professional-profile record (work history,
education, headline, summary) from a configured data API and transforms
it into a markdown note with [[cross-reference]] links, saved into a
local vault.

Fetch a profile directly by username, or search by name and keywords and
save one of the results. Fetched records are cached locally so repeated
runs do not hit the data API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./profile-notes.yaml or ~/.config/profile-notes/config.yaml)")
	rootCmd.PersistentFlags().String("vault-dir", "", "vault directory for notes (overrides vault.dir)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("profile-notes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "profile-notes"))
		}
	}

	viper.SetDefault("remote.locale", format.DefaultLocale)
	viper.SetDefault("remote.max_results", 20)
	viper.SetDefault("vault.dir", "vault")
	viper.SetDefault("cache.dir", "cache")

	viper.SetEnvPrefix("PROFILE_NOTES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
