package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
app_id: acme
provider:
  base_url: https://id.example.com
  api_key: k-123
initial_token: tok-1
store:
  base_url: https://docs.example.com
theme: dark
logging:
  debug_mode: true
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.AppID)
	assert.Equal(t, "https://id.example.com", cfg.Provider.BaseURL)
	assert.Equal(t, "k-123", cfg.Provider.APIKey)
	assert.Equal(t, "tok-1", cfg.InitialToken)
	assert.Equal(t, "https://docs.example.com", cfg.Store.BaseURL)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [oops"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides_SerializedProviderConfig(t *testing.T) {
	t.Setenv("DAYBOARD_PROVIDER_CONFIG", `{"base_url":"https://id.env.example","api_key":"env-key"}`)

	cfg := Default()
	require.NoError(t, cfg.applyEnvOverrides())

	assert.Equal(t, "https://id.env.example", cfg.Provider.BaseURL)
	assert.Equal(t, "env-key", cfg.Provider.APIKey)
}

func TestEnvOverrides_MalformedProviderConfig(t *testing.T) {
	t.Setenv("DAYBOARD_PROVIDER_CONFIG", `{not json`)

	cfg := Default()
	err := cfg.applyEnvOverrides()
	assert.Error(t, err)
}

func TestEnvOverrides_IndividualFieldsWinOverBlob(t *testing.T) {
	// Individual vars are applied after the serialized blob.
	t.Setenv("DAYBOARD_PROVIDER_CONFIG", `{"base_url":"https://blob.example","api_key":"blob-key"}`)
	t.Setenv("DAYBOARD_PROVIDER_URL", "https://direct.example")

	cfg := Default()
	require.NoError(t, cfg.applyEnvOverrides())

	assert.Equal(t, "https://direct.example", cfg.Provider.BaseURL)
	assert.Equal(t, "blob-key", cfg.Provider.APIKey)
}

func TestEnvOverrides_Misc(t *testing.T) {
	t.Setenv("DAYBOARD_APP_ID", "envapp")
	t.Setenv("DAYBOARD_INITIAL_TOKEN", "env-token")
	t.Setenv("DAYBOARD_THEME", "dark")
	t.Setenv("DAYBOARD_DEBUG", "true")

	cfg := Default()
	require.NoError(t, cfg.applyEnvOverrides())

	assert.Equal(t, "envapp", cfg.AppID)
	assert.Equal(t, "env-token", cfg.InitialToken)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.Logging.DebugMode)
}

func TestProviderConfig_IsEmpty(t *testing.T) {
	assert.True(t, ProviderConfig{}.IsEmpty())
	assert.False(t, ProviderConfig{BaseURL: "https://x"}.IsEmpty())
	assert.False(t, ProviderConfig{APIKey: "k"}.IsEmpty())
}

func TestProviderConfig_Validate(t *testing.T) {
	// Empty config is not a validation error; it is the blocked state.
	assert.NoError(t, ProviderConfig{}.Validate())

	assert.NoError(t, ProviderConfig{BaseURL: "https://id.example.com", APIKey: "k"}.Validate())
	assert.Error(t, ProviderConfig{APIKey: "k"}.Validate())
	assert.Error(t, ProviderConfig{BaseURL: "ftp://id.example.com"}.Validate())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	want := Default()
	want.AppID = "roundtrip"
	want.Provider = ProviderConfig{BaseURL: "https://id.example.com", APIKey: "k"}

	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
