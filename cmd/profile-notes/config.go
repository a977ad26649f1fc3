// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/profile-notes/internal/secrets"
	"github.com/pdiddy/profile-notes/pkg/types"
)

const defaultUserAgent = "profile-notes/0.1"

// pipelineConfig assembles the settings for every stage a command may run:
// viper keys, loaded secrets, and the command's flag overrides.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	return types.PipelineConfig{
		Remote: remoteConfig(cmd),
		Vault:  vaultConfig(cmd),
		Cache:  cacheConfig(),
	}
}

// remoteConfig assembles the data API settings from viper, secrets, and
// the command's --locale flag when it defines one.
func remoteConfig(cmd *cobra.Command) types.RemoteConfig {
	cfg := types.RemoteConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("remote.timeout"),
			UserAgent: defaultUserAgent,
		},
		BaseURL:    viper.GetString("remote.base_url"),
		APIKey:     loadedSecrets[secrets.APIKeyFile],
		Locale:     viper.GetString("remote.locale"),
		MaxResults: viper.GetInt("remote.max_results"),
	}
	if locale, err := cmd.Flags().GetString("locale"); err == nil && locale != "" {
		cfg.Locale = locale
	}
	return cfg
}

// vaultConfig resolves the vault directory, --vault-dir winning over config.
func vaultConfig(cmd *cobra.Command) types.VaultConfig {
	dir, _ := cmd.Flags().GetString("vault-dir")
	if dir == "" {
		dir = viper.GetString("vault.dir")
	}
	return types.VaultConfig{Dir: dir}
}

// cacheConfig assembles the fetch cache settings.
func cacheConfig() types.CacheConfig {
	return types.CacheConfig{
		Dir: viper.GetString("cache.dir"),
		TTL: viper.GetDuration("cache.ttl"),
	}
}
