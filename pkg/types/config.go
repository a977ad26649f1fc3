// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "profile-notes/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RemoteConfig holds settings for the profile data API.
type RemoteConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the root of the profile data API. Required; there is no
	// built-in provider.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey authenticates requests to the data API. Usually loaded from
	// .secrets/profile-api-key rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Locale is the preferred locale key for localized fields (default "en_US").
	Locale string `json:"locale" yaml:"locale"`

	// MaxResults caps the number of search results shown (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// VaultConfig holds settings for the note vault.
type VaultConfig struct {
	// Dir is the vault root directory where notes are written.
	Dir string `json:"dir" yaml:"dir"`
}

// CacheConfig holds settings for the local fetch cache.
type CacheConfig struct {
	// Dir is the directory holding the cache database (default "cache").
	Dir string `json:"dir" yaml:"dir"`

	// TTL is how long a cached profile is served before a refetch.
	// Zero uses the default (24h); negative disables reuse.
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Remote RemoteConfig `json:"remote" yaml:"remote"`
	Vault  VaultConfig  `json:"vault" yaml:"vault"`
	Cache  CacheConfig  `json:"cache" yaml:"cache"`
}
