package pgstore

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/docpipe/stores/v1/docstore"
	"github.com/docpipe/stores/v1/observability"
)

// Logger defines the interface for logging operations within the pgstore
// package.

//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=pgstore
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// metaMap stores document metadata as a JSONB column.
type metaMap map[string]any

func (m metaMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *metaMap) Scan(src any) error {
	if src == nil {
		*m = metaMap{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: unsupported metadata column type %T", docstore.ErrConversion, src)
	}
	return json.Unmarshal(raw, m)
}

// documentRow is the relational shape of a stored document. The pipeline
// identity is the primary key; it is never nested inside Meta.
type documentRow struct {
	Key     string  `gorm:"column:key;primaryKey"`
	Content *string `gorm:"column:content"`
	Meta    metaMap `gorm:"column:meta;type:jsonb"`
}

// Store is a PostgreSQL-backed document store scoped to a single table.
type Store struct {
	db       *gorm.DB
	cfg      *Config
	logger   Logger
	observer observability.Observer
}

var _ docstore.Store = (*Store)(nil)

// NewStore connects to PostgreSQL, ensures the configured table exists and
// returns a store scoped to it. Connection failures are wrapped with
// docstore.ErrConnection.
func NewStore(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %v: %w", err, docstore.ErrConnection)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database handle: %v: %w", err, docstore.ErrConnection)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Table(cfg.TableName).AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("migrating table %q: %v: %w", cfg.TableName, err, docstore.ErrConnection)
	}

	return &Store{db: db, cfg: cfg}, nil
}

// WithLogger attaches a logger to the store. Returns the store for
// chaining.
func (s *Store) WithLogger(logger Logger) *Store {
	s.logger = logger
	return s
}

// WithObserver attaches an operation observer to the store. Returns the
// store for chaining.
func (s *Store) WithObserver(observer observability.Observer) *Store {
	s.observer = observer
	return s
}

// healthCheck pings the database to verify connectivity.
func (s *Store) healthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting database handle: %v: %w", err, docstore.ErrConnection)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging postgres: %v: %w", err, docstore.ErrConnection)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting database handle: %w", err)
	}
	return sqlDB.Close()
}
