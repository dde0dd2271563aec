package arango

import (
	"fmt"
	"time"
)

// Config holds connection and behavior settings for an ArangoDB-backed
// document store. Endpoint, database and collection identity are fixed for
// the store's lifetime; reconnecting or switching collections means
// constructing a new store.
//
// Example (programmatic):
//
//	cfg := arango.DefaultConfig()
//	cfg.ConnectionURL = "http://localhost:8529"
//	cfg.DatabaseName = "pipeline"
//	cfg.CollectionName = "documents"
//	cfg.Username = "reader"
//	cfg.Password = os.Getenv("ARANGO_PASSWORD")
//
// Example (builder style):
//
//	cfg := arango.FromConnectionURL("https://arango.internal:8529").
//	    WithDatabase("pipeline").
//	    WithCollection("documents").
//	    WithCredentials("reader", os.Getenv("ARANGO_PASSWORD")).
//	    WithTLSVerification(true)
type Config struct {
	// ConnectionURL is the ArangoDB endpoint, e.g. "http://localhost:8529".
	ConnectionURL string `yaml:"connection_url" env:"ARANGO_CONNECTION_URL"`

	// DatabaseName is the database opened at construction.
	DatabaseName string `yaml:"database_name" env:"ARANGO_DATABASE_NAME"`

	// Username for basic authentication.
	Username string `yaml:"username" env:"ARANGO_USERNAME"`

	// Password for basic authentication.
	Password string `yaml:"password" env:"ARANGO_PASSWORD"`

	// CollectionName is the collection this store is scoped to.
	CollectionName string `yaml:"collection_name" env:"ARANGO_COLLECTION_NAME"`

	// VerifyTLS enables server certificate verification on https
	// endpoints. Defaults to disabled, matching typical in-cluster
	// deployments with self-signed certificates.
	VerifyTLS bool `yaml:"verify_tls" env:"ARANGO_VERIFY_TLS"`

	// ConnectTimeout bounds the health check performed at construction.
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"ARANGO_CONNECT_TIMEOUT"`

	// WriteConcurrency is the number of parallel inserts a batch write may
	// use. Values <= 1 keep writes sequential in input order. Per-item
	// outcome accounting is exact regardless of the setting.
	WriteConcurrency int `yaml:"write_concurrency" env:"ARANGO_WRITE_CONCURRENCY"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		ConnectionURL:    "http://localhost:8529",
		DatabaseName:     "_system",
		VerifyTLS:        false,
		ConnectTimeout:   5 * time.Second,
		WriteConcurrency: 1,
	}
}

// FromConnectionURL returns a default config pre-filled with a specific
// endpoint.
func FromConnectionURL(url string) *Config {
	cfg := DefaultConfig()
	cfg.ConnectionURL = url
	return cfg
}

// Builder-style helpers (optional, ergonomic)

func (c *Config) WithDatabase(name string) *Config {
	c.DatabaseName = name
	return c
}

func (c *Config) WithCollection(name string) *Config {
	c.CollectionName = name
	return c
}

func (c *Config) WithCredentials(username, password string) *Config {
	c.Username = username
	c.Password = password
	return c
}

func (c *Config) WithTLSVerification(enabled bool) *Config {
	c.VerifyTLS = enabled
	return c
}

func (c *Config) WithConnectTimeout(d time.Duration) *Config {
	c.ConnectTimeout = d
	return c
}

func (c *Config) WithWriteConcurrency(n int) *Config {
	c.WriteConcurrency = n
	return c
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	if c.ConnectionURL == "" {
		return fmt.Errorf("connection URL cannot be empty")
	}
	if c.DatabaseName == "" {
		return fmt.Errorf("database name cannot be empty")
	}
	if c.CollectionName == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	return nil
}
