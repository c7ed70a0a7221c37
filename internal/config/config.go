package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Secret keys, kept identical to the names used by the hosted store dashboard.
const (
	KeyStoreURL = "SUPABASE_URL"
	KeyStoreKey = "SUPABASE_KEY"
)

// DefaultSecretsFile is read when SECRETS_FILE is not set.
const DefaultSecretsFile = ".streamlit/secrets.toml"

const (
	IssueWriteOverwrite = "overwrite"
	IssueWriteGuarded   = "guarded"
)

var (
	ErrSecretsFileMissing = errors.New("secrets file not found")
	ErrSecretMissing      = errors.New("required secret is missing")
)

// Config holds everything the service reads at startup.
type Config struct {
	StoreURL string
	StoreKey string

	Port string

	ProductsTable   string
	CategoriesTable string

	// IssueWriteMode is "overwrite" (read, then blind write) or "guarded"
	// (write only if the quantity is still the one read at selection).
	IssueWriteMode string

	LogLevel  string
	LogFormat string

	SessionTTL time.Duration
}

// Load reads the secrets file at path (DefaultSecretsFile when empty) and
// overlays the process environment. Secrets present in the environment make
// the file optional.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultSecretsFile
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")
	v.SetDefault("PRODUCTS_TABLE", "produkty")
	v.SetDefault("CATEGORIES_TABLE", "kategorie")
	v.SetDefault("ISSUE_WRITE_MODE", IssueWriteOverwrite)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("SESSION_TTL", "30m")

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read secrets file %s: %w", path, err)
		}
	} else if os.Getenv(KeyStoreURL) == "" || os.Getenv(KeyStoreKey) == "" {
		return Config{}, fmt.Errorf("%w: %s", ErrSecretsFileMissing, path)
	}

	cfg := Config{
		StoreURL:        strings.TrimSpace(v.GetString(KeyStoreURL)),
		StoreKey:        strings.TrimSpace(v.GetString(KeyStoreKey)),
		Port:            v.GetString("PORT"),
		ProductsTable:   v.GetString("PRODUCTS_TABLE"),
		CategoriesTable: v.GetString("CATEGORIES_TABLE"),
		IssueWriteMode:  strings.ToLower(v.GetString("ISSUE_WRITE_MODE")),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		SessionTTL:      v.GetDuration("SESSION_TTL"),
	}

	if cfg.StoreURL == "" {
		return Config{}, fmt.Errorf("%w: %s", ErrSecretMissing, KeyStoreURL)
	}
	if cfg.StoreKey == "" {
		return Config{}, fmt.Errorf("%w: %s", ErrSecretMissing, KeyStoreKey)
	}
	if cfg.ProductsTable == "" || cfg.CategoriesTable == "" {
		return Config{}, fmt.Errorf("PRODUCTS_TABLE and CATEGORIES_TABLE must not be empty")
	}
	switch cfg.IssueWriteMode {
	case IssueWriteOverwrite, IssueWriteGuarded:
	default:
		return Config{}, fmt.Errorf("ISSUE_WRITE_MODE must be %q or %q, got %q", IssueWriteOverwrite, IssueWriteGuarded, cfg.IssueWriteMode)
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive")
	}

	return cfg, nil
}

// GuardedIssues reports whether stock issues use a compare-and-swap write.
func (c Config) GuardedIssues() bool {
	return c.IssueWriteMode == IssueWriteGuarded
}
