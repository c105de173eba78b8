// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Store
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, TMDBToken, "  eyJhbGciOi.tmdb  \n")
				writeFile(t, dir, ForwardToken, "fwd_123")
				writeFile(t, dir, ForwardURL, "https://requests.example/api/v1/request\n")
				return dir
			},
			want: Store{
				TMDBToken:    "eyJhbGciOi.tmdb",
				ForwardToken: "fwd_123",
				ForwardURL:   "https://requests.example/api/v1/request",
			},
		},
		{
			name: "returns empty store for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Store{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, TMDBToken, "valid")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: Store{TMDBToken: "valid"},
		},
		{
			name: "skips dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "x")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				writeFile(t, dir, ForwardURL, "http://localhost:5055")
				return dir
			},
			want: Store{ForwardURL: "http://localhost:5055"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadNotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file", "x")

	_, err := Load(filepath.Join(dir, "file"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading secrets directory")
}

func TestStoreAccessors(t *testing.T) {
	s := Store{ForwardURL: "u", TMDBToken: "t"}
	assert.Equal(t, "t", s.Get(TMDBToken))
	assert.Equal(t, "", s.Get(ForwardToken))
	assert.Equal(t, []string{ForwardURL, TMDBToken}, s.Keys())
	assert.Empty(t, Store{}.Keys())
}

func TestLoadDotenv(t *testing.T) {
	const (
		fresh = "TMDB_PICK_TEST_FRESH"
		kept  = "TMDB_PICK_TEST_KEPT"
	)
	t.Setenv(kept, "from-environment")
	t.Setenv(fresh, "")
	require.NoError(t, os.Unsetenv(fresh))

	dir := t.TempDir()
	writeFile(t, dir, ".env", fresh+"=from-dotenv\n"+kept+"=from-dotenv\n")

	require.NoError(t, LoadDotenv(filepath.Join(dir, ".env")))
	assert.Equal(t, "from-dotenv", os.Getenv(fresh))
	assert.Equal(t, "from-environment", os.Getenv(kept))
}

func TestLoadDotenvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotenv(filepath.Join(t.TempDir(), ".env")))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
