// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Comment store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds all application configuration.
type Config struct {
	// Roster document locations – filesystem paths or http(s) URLs.
	RosterPrimary   string
	RosterSecondary string

	// Comment store. Driver picks which of the connection settings below apply.
	CommentsDriver string
	CommentsLimit  int
	SQLitePath     string

	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// MySQL DSN, e.g. user:pass@tcp(host:3306)/jra?parseTime=true
	MySQLDSN string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg := load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// Read loads configuration without validating it, for tools that only
// need the roster locations.
func Read() *Config {
	return load()
}

func load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("ROSTER_PRIMARY", "real_horse_data.json")
	v.SetDefault("ROSTER_SECONDARY", "/srv/jra/real_horse_data.json")
	v.SetDefault("COMMENTS_DRIVER", DriverSQLite)
	v.SetDefault("COMMENTS_LIMIT", 50)
	v.SetDefault("SQLITE_PATH", "comments.db")
	v.SetDefault("DB_USER", "jra")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "jra")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("DEBUG", false)

	return &Config{
		RosterPrimary:   v.GetString("ROSTER_PRIMARY"),
		RosterSecondary: v.GetString("ROSTER_SECONDARY"),
		CommentsDriver:  strings.ToLower(strings.TrimSpace(v.GetString("COMMENTS_DRIVER"))),
		CommentsLimit:   v.GetInt("COMMENTS_LIMIT"),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DBUser:          v.GetString("DB_USER"),
		DBPass:          v.GetString("DB_PASS"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
		MySQLDSN:        v.GetString("MYSQL_DSN"),
		Debug:           v.GetBool("DEBUG"),
		Port:            v.GetString("PORT"),
		TLSDomains:      splitTrimmed(v.GetString("TLS_DOMAINS")),
	}
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// CommentsDSN returns the connection string for the configured driver.
func (c *Config) CommentsDSN() string {
	switch c.CommentsDriver {
	case DriverPostgres:
		return c.PostgresDSN()
	case DriverMySQL:
		return c.MySQLDSN
	}
	return c.SQLitePath
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	if c.CommentsLimit <= 0 {
		return errors.New("COMMENTS_LIMIT must be positive")
	}
	switch c.CommentsDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH must be set for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" && c.DBPass == "" {
			return errors.New("DATABASE_URL or DB_PASS must be set for the postgres driver")
		}
	case DriverMySQL:
		if c.MySQLDSN == "" {
			return errors.New("MYSQL_DSN must be set for the mysql driver")
		}
	default:
		return fmt.Errorf("unknown COMMENTS_DRIVER %q (want sqlite, postgres or mysql)", c.CommentsDriver)
	}
	if !c.Debug && len(c.TLSDomains) == 0 {
		return errors.New("TLS_DOMAINS must be set unless DEBUG is on")
	}
	return nil
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
