package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/reqkit/validation"
)

type mockFS struct {
	files map[string]bool
	home  string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }
func (m *mockFS) HomeDir() (string, error) {
	if m.home == "" {
		return "", errors.New("no home")
	}
	return m.home, nil
}

func TestDefaultSourceHasNoValues(t *testing.T) {
	s := Default().Snapshot()
	assert.False(t, s.HasBaseHost())
	assert.False(t, s.HasDefaultVersion())
	assert.False(t, s.HasAuthToken())
}

func TestStoreSetters(t *testing.T) {
	store := NewStore()
	store.SetBaseHost("api.example.com")
	store.SetDefaultVersion("v1")
	store.SetAuthToken("Basic token")

	snap := store.Snapshot()
	assert.Equal(t, Settings{BaseHost: "api.example.com", DefaultVersion: "v1", AuthToken: "Basic token"}, snap)

	store.SetAuthToken("")
	assert.False(t, store.Snapshot().HasAuthToken())
	assert.True(t, snap.HasAuthToken(), "earlier snapshot must not change")
}

func TestStoreReplaceAndSeed(t *testing.T) {
	store := NewStore(Settings{BaseHost: "a"})
	assert.Equal(t, "a", store.Snapshot().BaseHost)

	store.Replace(Settings{DefaultVersion: "v2"})
	assert.Equal(t, Settings{DefaultVersion: "v2"}, store.Snapshot())
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.SetBaseHost("host")
		}()
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
		}()
	}
	wg.Wait()
	assert.Equal(t, "host", store.Snapshot().BaseHost)
}

func TestStaticSource(t *testing.T) {
	src := Static{BaseHost: "api.example.com"}
	assert.Equal(t, "api.example.com", src.Snapshot().BaseHost)
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("REQKITTEST_BASE_HOST", "env.example.com")
	t.Setenv("REQKITTEST_DEFAULT_VERSION", "v3")
	t.Setenv("REQKITTEST_AUTH_TOKEN", "Bearer abc")

	s, err := SettingsFromEnv("reqkittest")
	require.NoError(t, err)
	assert.Equal(t, Settings{BaseHost: "env.example.com", DefaultVersion: "v3", AuthToken: "Bearer abc"}, s)
}

func TestSettingsFromEnvUnset(t *testing.T) {
	s, err := SettingsFromEnv("reqkitunsetprefix")
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	cfg := ServiceConfig{Name: "svc"}
	cfg.ApplyDefaults()
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "svc", cfg.Logging.ServiceName)
	assert.Equal(t, "info", cfg.Logging.Level)

	prod := ServiceConfig{Name: "svc", Environment: "production"}
	prod.ApplyDefaults()
	assert.False(t, prod.Debug)
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       ServiceConfig
		wantField string
	}{
		{"valid", ServiceConfig{Name: "svc", Environment: "staging"}, ""},
		{"missing name", ServiceConfig{Environment: "production"}, "name"},
		{"bad environment", ServiceConfig{Name: "svc", Environment: "qa"}, "environment"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Logging.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *validation.Error
			require.ErrorAs(t, err, &ve)
			_, ok := ve.Field(tc.wantField)
			assert.True(t, ok, "fields: %+v", ve.Fields)
		})
	}
}

func TestServiceConfigValidateLogging(t *testing.T) {
	cfg := ServiceConfig{Name: "svc", Environment: "staging"}
	cfg.Logging.ApplyDefaults()
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.logging")
}

func TestServiceConfigSource(t *testing.T) {
	cfg := ServiceConfig{Client: Settings{BaseHost: "h"}}
	assert.Equal(t, "h", cfg.Source().Snapshot().BaseHost)
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	yamlContent := `
name: reqkit-test
environment: staging
client:
  base_host: api.example.com
  default_version: v1
logging:
  level: warn
  format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))

	var cfg ServiceConfig
	require.NoError(t, LoadConfig("reqkit-test", &cfg, WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, "missing.env"))))

	assert.Equal(t, "reqkit-test", cfg.Name)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "api.example.com", cfg.Client.BaseHost)
	assert.Equal(t, "v1", cfg.Client.DefaultVersion)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("client:\n  auth_token: from-file\n"), 0o644))

	t.Setenv("CLIENT_AUTH_TOKEN", "from-env")

	var cfg ServiceConfig
	require.NoError(t, LoadConfig("svc", &cfg, WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, "missing.env"))))
	assert.Equal(t, "from-env", cfg.Client.AuthToken)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("CLIENT_DEFAULT_VERSION=v9\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CLIENT_DEFAULT_VERSION") })

	var cfg ServiceConfig
	require.NoError(t, LoadConfig("svc", &cfg, WithConfigFile(filepath.Join(dir, "none.yml")), WithEnvFile(envPath)))
	assert.Equal(t, "v9", cfg.Client.DefaultVersion)
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg ServiceConfig
	err := LoadConfig("nonexistent-service", &cfg,
		WithConfigFile("/nonexistent/path.yml"),
		WithEnvFile("/nonexistent/.env"))
	assert.NoError(t, err)
}

func TestResolverFindsFirstCandidate(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config.yml":            true,
		"./cmd/my-svc/config.yml": true,
		"./.env":                  true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("my-svc", LoaderConfig{})
	assert.Equal(t, "./cmd/my-svc/config.yml", files.ConfigFile)
	assert.Equal(t, "./.env", files.EnvFile)
}

func TestResolverHomeDirCandidate(t *testing.T) {
	home := filepath.Join("/home", "someone")
	fs := &mockFS{
		home:  home,
		files: map[string]bool{filepath.Join(home, ".reqkit", "config.yml"): true},
	}
	files := (&Resolver{FileSystem: fs}).ResolveFiles("reqkit", LoaderConfig{})
	assert.Equal(t, filepath.Join(home, ".reqkit", "config.yml"), files.ConfigFile)
	assert.Empty(t, files.EnvFile)
}

func TestResolverExplicitPathsWin(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./config.yml": true}}
	files := (&Resolver{FileSystem: fs}).ResolveFiles("svc", LoaderConfig{ConfigFile: "/x.yml", EnvFile: "/x.env"})
	assert.Equal(t, ResolvedFiles{ConfigFile: "/x.yml", EnvFile: "/x.env"}, files)
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	assert.Equal(t, fs, lc.FileSystem)
	assert.Equal(t, "/path/to/config.yml", lc.ConfigFile)
	assert.Equal(t, "/path/to/.env", lc.EnvFile)
}

func TestEnvKeyVariants(t *testing.T) {
	assert.Equal(t, []string{"home"}, envKeyVariants("HOME"))
	assert.Equal(t,
		[]string{"client_base_host", "client.base.host", "client.base_host", "client_base.host"},
		envKeyVariants("CLIENT_BASE_HOST"))
}
