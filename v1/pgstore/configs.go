package pgstore

import (
	"fmt"
	"time"
)

// Config holds connection and behavior settings for a PostgreSQL-backed
// document store. The table name is fixed for the store's lifetime.
type Config struct {
	// Host is the PostgreSQL server host.
	Host string `yaml:"host" env:"PGSTORE_HOST"`

	// Port is the PostgreSQL server port.
	Port string `yaml:"port" env:"PGSTORE_PORT"`

	// User for authentication.
	User string `yaml:"user" env:"PGSTORE_USER"`

	// Password for authentication.
	Password string `yaml:"password" env:"PGSTORE_PASSWORD"`

	// DatabaseName is the database opened at construction.
	DatabaseName string `yaml:"database_name" env:"PGSTORE_DATABASE_NAME"`

	// SSLMode is passed through to the connection string ("disable",
	// "require", "verify-full", ...).
	SSLMode string `yaml:"ssl_mode" env:"PGSTORE_SSL_MODE"`

	// TableName is the table this store is scoped to. It is created on
	// construction when absent.
	TableName string `yaml:"table_name" env:"PGSTORE_TABLE_NAME"`

	// MaxOpenConns bounds the connection pool.
	MaxOpenConns int `yaml:"max_open_conns" env:"PGSTORE_MAX_OPEN_CONNS"`

	// MaxIdleConns bounds idle connections kept in the pool.
	MaxIdleConns int `yaml:"max_idle_conns" env:"PGSTORE_MAX_IDLE_CONNS"`

	// ConnMaxLifetime bounds how long a pooled connection is reused.
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"PGSTORE_CONN_MAX_LIFETIME"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            "5432",
		User:            "postgres",
		DatabaseName:    "postgres",
		SSLMode:         "disable",
		MaxOpenConns:    50,
		MaxIdleConns:    25,
		ConnMaxLifetime: time.Minute,
	}
}

func (c *Config) WithCredentials(user, password string) *Config {
	c.User = user
	c.Password = password
	return c
}

func (c *Config) WithDatabase(name string) *Config {
	c.DatabaseName = name
	return c
}

func (c *Config) WithTable(name string) *Config {
	c.TableName = name
	return c
}

func (c *Config) WithSSLMode(mode string) *Config {
	c.SSLMode = mode
	return c
}

// DSN renders the GORM connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DatabaseName, c.SSLMode)
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.DatabaseName == "" {
		return fmt.Errorf("database name cannot be empty")
	}
	if c.TableName == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	return nil
}
