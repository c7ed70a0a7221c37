package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrUnsupportedEndpoint = errors.New("unsupported store endpoint")

type Options struct {
	// Endpoint is a postgres:// URL, a key=value DSN or a project URL
	// (https://<ref>.supabase.co).
	Endpoint string
	// Key is the access credential. It is used as the password unless the
	// endpoint already carries one.
	Key string
	// Log receives GORM's query log.
	Log logger.Writer
}

// Connect opens the single store handle used for the lifetime of the process.
func Connect(opts Options) (*gorm.DB, error) {
	dsn, err := BuildDSN(opts.Endpoint, opts.Key)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.Discard
	if opts.Log != nil {
		gormLogger = logger.New(opts.Log, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		})
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Supabase transaction pooler rejects prepared statements
	}), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// BuildDSN turns the configured endpoint and access key into a DSN the
// postgres driver accepts.
func BuildDSN(endpoint, key string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", fmt.Errorf("%w: empty endpoint", ErrUnsupportedEndpoint)
	}

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		switch u.Scheme {
		case "postgres", "postgresql":
			if _, hasPassword := u.User.Password(); !hasPassword {
				username := u.User.Username()
				if username == "" {
					username = "postgres"
				}
				u.User = url.UserPassword(username, key)
			}
			return u.String(), nil
		case "http", "https":
			host := u.Hostname()
			ref, found := strings.CutSuffix(host, ".supabase.co")
			if !found || ref == "" || strings.Contains(ref, ".") {
				return "", fmt.Errorf("%w: %s", ErrUnsupportedEndpoint, host)
			}
			return fmt.Sprintf("host=db.%s.supabase.co port=5432 user=postgres password=%s dbname=postgres sslmode=require",
				ref, quoteValue(key)), nil
		}
	}

	if strings.Contains(endpoint, "=") {
		if strings.Contains(endpoint, "password=") {
			return endpoint, nil
		}
		return endpoint + " password=" + quoteValue(key), nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedEndpoint, endpoint)
}

// quoteValue quotes a key=value DSN value.
func quoteValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
