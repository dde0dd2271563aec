package arango

import (
	"context"
	"crypto/tls"
	"fmt"

	driver "github.com/arangodb/go-driver"
	arangohttp "github.com/arangodb/go-driver/http"

	"github.com/docpipe/stores/v1/docstore"
	"github.com/docpipe/stores/v1/observability"
)

//
// ──────────────────────────────────────────────────────────────
//   ARANGODB STORE CLIENT
// ──────────────────────────────────────────────────────────────
//
// This file sets up the long-lived session a Store holds: the HTTP
// connection, the authenticated client, and the database and collection
// handles. All of them are acquired once at construction and kept for the
// store's lifetime; there is no implicit reconnection. The document
// operations themselves live in operations.go.
//

// Logger defines the interface for logging operations in the arango
// package. It allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=client.go -destination=mock_logger.go -package=arango
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Store is a document store backed by a single ArangoDB collection.
// It implements the docstore.Store interface.
//
// A Store owns one session (connection + database + collection handle) for
// its entire lifetime. It holds no other mutable state, so it is safe for
// concurrent use without additional locking.
type Store struct {
	client   driver.Client
	db       driver.Database
	col      driver.Collection
	cfg      *Config
	logger   Logger
	observer observability.Observer
}

// compile-time conformance check
var _ docstore.Store = (*Store)(nil)

// NewStore opens a session against the configured ArangoDB endpoint,
// verifies connectivity with a server version probe, and binds the store to
// its collection. It fails fast with a docstore.ErrConnection-wrapped error
// when the server is unreachable, credentials are rejected, or the database
// or collection does not exist.
//
// Example:
//
//	store, err := arango.NewStore(arango.FromConnectionURL("http://localhost:8529").
//	    WithDatabase("pipeline").
//	    WithCollection("documents").
//	    WithCredentials("reader", secret))
func NewStore(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultConfig().ConnectTimeout
	}

	conn, err := arangohttp.NewConnection(arangohttp.ConnectionConfig{
		Endpoints: []string{cfg.ConnectionURL},
		TLSConfig: &tls.Config{InsecureSkipVerify: !cfg.VerifyTLS},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating connection to %s: %v", docstore.ErrConnection, cfg.ConnectionURL, err)
	}

	client, err := driver.NewClient(driver.ClientConfig{
		Connection:     conn,
		Authentication: driver.BasicAuthentication(cfg.Username, cfg.Password),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: initializing client: %v", docstore.ErrConnection, err)
	}

	s := &Store{
		client: client,
		cfg:    cfg,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if err := s.healthCheck(ctx); err != nil {
		return nil, err
	}

	db, err := client.Database(ctx, cfg.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database %q: %v", docstore.ErrConnection, cfg.DatabaseName, err)
	}
	s.db = db

	col, err := db.Collection(ctx, cfg.CollectionName)
	if err != nil {
		return nil, fmt.Errorf("%w: opening collection %q: %v", docstore.ErrConnection, cfg.CollectionName, err)
	}
	s.col = col

	return s, nil
}

// healthCheck verifies the availability of the ArangoDB server with a
// version probe. It runs during construction and on fx lifecycle start.
func (s *Store) healthCheck(ctx context.Context) error {
	version, err := s.client.Version(ctx)
	if err != nil {
		return fmt.Errorf("%w: health check against %s: %v", docstore.ErrConnection, s.cfg.ConnectionURL, err)
	}

	s.logDebug("arango health check passed", nil, map[string]interface{}{
		"endpoint": s.cfg.ConnectionURL,
		"server":   version.Server,
		"version":  string(version.Version),
	})
	return nil
}

// Collection returns the name of the collection this store is bound to.
func (s *Store) Collection() string {
	return s.cfg.CollectionName
}

// Close releases the store. The underlying HTTP connection keeps no
// persistent resources, so this is currently a no-op; it exists for
// lifecycle symmetry with the other store backends.
func (s *Store) Close() error {
	s.logDebug("closing arango store", nil, nil)
	return nil
}

// WithObserver sets the observer for this store and returns the store for
// method chaining. The observer receives one event per completed operation.
func (s *Store) WithObserver(observer observability.Observer) *Store {
	s.observer = observer
	return s
}

// WithLogger sets the logger for this store and returns the store for
// method chaining.
func (s *Store) WithLogger(logger Logger) *Store {
	s.logger = logger
	return s
}
