package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv(EnvPageLimit, "")
	t.Setenv(EnvSearchLimit, "-3")
	t.Setenv(EnvRecommendationLimit, "abc")

	c := Parse()
	be.Equal(t, c.Limits, DefaultLimits())
	be.Equal(t, c.LogLevel, "info")
	be.Equal(t, c.WSAddr, "127.0.0.1:8787")
}

func TestParseOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "key-1")
	t.Setenv(EnvPageLimit, "25")
	t.Setenv(EnvSMTPPassword, "abcd efgh ijkl")
	t.Setenv(EnvSMTPTLS, "true")

	c := Parse()
	be.Equal(t, c.APIKey, "key-1")
	be.Equal(t, c.Limits.Page, 25)
	be.Equal(t, c.SMTP.Password, "abcdefghijkl")
	be.True(t, c.SMTP.TLS)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	be.Err(t, os.WriteFile(path, []byte("CMBRIDGE_USER_ID=user-from-file\nCMBRIDGE_API_KEY=file-key\n"), 0o600), nil)
	t.Setenv(EnvUserID, "")
	os.Unsetenv(EnvUserID)
	t.Setenv(EnvAPIKey, "env-key")

	c, err := Load(path)
	be.Err(t, err, nil)
	be.Equal(t, c.UserID, "user-from-file")
	be.Equal(t, c.APIKey, "env-key")

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	be.True(t, err != nil)
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(`{"dataRestrictions":["notes"],"shouldSyncContactImages":true}`))
	be.Err(t, err, nil)
	be.Equal(t, opts.DataRestrictions, []string{"NOTES"})
	be.True(t, opts.ShouldSyncContactImages)

	_, err = ParseOptions([]byte(`{"dataRestrictions":["EMAILS"]}`))
	be.True(t, err != nil)

	_, err = ParseOptions([]byte(`{`))
	be.True(t, err != nil)
}
