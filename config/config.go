// Package config loads cmbridge settings from the environment, optionally
// seeded from a .env file, and parses the SDK options file.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
	"github.com/spachava753/cmbridge/native"
)

// Environment variable names.
const (
	EnvAPIKey              = "CMBRIDGE_API_KEY"
	EnvUserID              = "CMBRIDGE_USER_ID"
	EnvToken               = "CMBRIDGE_TOKEN"
	EnvLogLevel            = "CMBRIDGE_LOG_LEVEL"
	EnvPageLimit           = "CMBRIDGE_PAGE_LIMIT"
	EnvSearchLimit         = "CMBRIDGE_SEARCH_LIMIT"
	EnvRecommendationLimit = "CMBRIDGE_RECOMMENDATION_LIMIT"
	EnvSMTPAddr            = "CMBRIDGE_SMTP_ADDR"
	EnvSMTPUser            = "CMBRIDGE_SMTP_USER"
	EnvSMTPPassword        = "CMBRIDGE_SMTP_PASSWORD"
	EnvSMTPFrom            = "CMBRIDGE_SMTP_FROM"
	EnvSMTPTLS             = "CMBRIDGE_SMTP_TLS"
	EnvFixturesDB          = "CMBRIDGE_FIXTURES_DB"
	EnvWSAddr              = "CMBRIDGE_WS_ADDR"
)

// DataRestrictionNotes keeps contact notes out of sync.
const DataRestrictionNotes = "NOTES"

// Limits are the defaults applied when a caller passes limit 0.
type Limits struct {
	Page           int
	Search         int
	Recommendation int
}

// DefaultLimits returns the SDK's documented defaults.
func DefaultLimits() Limits {
	return Limits{Page: 10, Search: 20, Recommendation: 10}
}

// SMTP configures invitation delivery.
type SMTP struct {
	Addr     string
	Username string
	Password string
	From     string
	// TLS dials with implicit TLS instead of plain TCP.
	TLS bool
}

// Config is the full cmbridge configuration.
type Config struct {
	APIKey     string
	UserID     string
	Token      string
	LogLevel   string
	Limits     Limits
	SMTP       SMTP
	FixturesDB string
	WSAddr     string
}

// Load reads the given .env files into the process environment and then
// parses it. With no files, a ./.env is loaded when present. Variables
// already set in the environment take precedence over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, pkgerrors.Wrap(err, "loading .env")
		}
		return Parse(), nil
	}
	if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, pkgerrors.Wrapf(err, "loading %s", strings.Join(envFiles, ", "))
	}
	return Parse(), nil
}

// Parse reads the configuration from the process environment.
func Parse() Config {
	defaults := DefaultLimits()
	return Config{
		APIKey:   getString(EnvAPIKey, ""),
		UserID:   getString(EnvUserID, ""),
		Token:    getString(EnvToken, ""),
		LogLevel: getString(EnvLogLevel, "info"),
		Limits: Limits{
			Page:           getPositiveInt(EnvPageLimit, defaults.Page),
			Search:         getPositiveInt(EnvSearchLimit, defaults.Search),
			Recommendation: getPositiveInt(EnvRecommendationLimit, defaults.Recommendation),
		},
		SMTP: SMTP{
			Addr:     getString(EnvSMTPAddr, ""),
			Username: getString(EnvSMTPUser, ""),
			Password: strings.ReplaceAll(getString(EnvSMTPPassword, ""), " ", ""),
			From:     getString(EnvSMTPFrom, ""),
			TLS:      getBool(EnvSMTPTLS, false),
		},
		FixturesDB: getString(EnvFixturesDB, "cmbridge-fixtures.db"),
		WSAddr:     getString(EnvWSAddr, "127.0.0.1:8787"),
	}
}

// ReadOptions reads SDK options from a JSON file.
func ReadOptions(path string) (native.Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return native.Options{}, err
	}
	opts, err := ParseOptions(b)
	if err != nil {
		return native.Options{}, pkgerrors.Wrapf(err, "parsing %s", path)
	}
	return opts, nil
}

// ParseOptions parses SDK options JSON and validates data restrictions.
func ParseOptions(b []byte) (native.Options, error) {
	var opts native.Options
	if err := json.Unmarshal(b, &opts); err != nil {
		return native.Options{}, pkgerrors.Wrap(err, "parsing json")
	}
	for i, r := range opts.DataRestrictions {
		r = strings.ToUpper(strings.TrimSpace(r))
		if r != DataRestrictionNotes {
			return native.Options{}, pkgerrors.Errorf("validating: unknown data restriction %q", opts.DataRestrictions[i])
		}
		opts.DataRestrictions[i] = r
	}
	return opts, nil
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getPositiveInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}
