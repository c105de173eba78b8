package types

import "time"

// HTTPConfig holds shared HTTP settings used by collaborators that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "tmdb-pick/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the TMDB search request.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the TMDB API root (default "https://api.themoviedb.org/3").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Token is the TMDB v4 read access token sent as a bearer token.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// Language is the response language (default "en-US").
	Language string `json:"language" yaml:"language"`

	// IncludeAdult toggles adult results (default false).
	IncludeAdult bool `json:"include_adult" yaml:"include_adult"`
}

// ForwardConfig holds settings for the optional forwarding call.
type ForwardConfig struct {
	HTTPConfig `yaml:",inline"`

	// Enabled forwards every selection without the --forward flag.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// URL is the endpoint that receives the selected identifier.
	URL string `json:"url" yaml:"url"`

	// Token is the bearer token for the forwarding API.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// Configured reports whether a forwarding endpoint is set.
func (c ForwardConfig) Configured() bool {
	return c.URL != ""
}

// LogConfig holds log file settings.
type LogConfig struct {
	// Level is debug, info, warn, or error (default warn).
	Level string `json:"level" yaml:"level"`

	// File is the log file path. Empty means the per-user cache directory.
	File string `json:"file" yaml:"file"`

	// MaxSize is the size in MB at which the file is rotated (default 10).
	MaxSize int `json:"max_size" yaml:"max_size"`

	// MaxFiles is the number of rotated files kept (default 5).
	MaxFiles int `json:"max_files" yaml:"max_files"`
}

// Config groups every setting the CLI resolves before running the pipeline.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Forward ForwardConfig `json:"forward" yaml:"forward"`
	Logging LogConfig     `json:"logging" yaml:"logging"`
}
