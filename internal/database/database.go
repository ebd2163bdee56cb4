package database

import (
	"fmt"
	"io"
	"sync"
	"time"

	"finbuddy/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Pool is the process-wide database handle. The underlying connection is
// dialed lazily on first use; a failed dial leaves the handle unset so the
// next caller retries a fresh connection instead of reusing a known-bad one.
type Pool struct {
	mu     sync.Mutex
	config *Config
	db     *gorm.DB
}

// NewPool creates a pool for the given configuration without connecting.
func NewPool(config *Config) *Pool {
	return &Pool{config: config}
}

// FromDB wraps an already-open GORM handle. Used by tests to run services
// against an in-memory database.
func FromDB(db *gorm.DB) *Pool {
	return &Pool{db: db}
}

// DB returns the shared GORM handle, connecting on first use.
func (p *Pool) DB() (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  p.config.DSN(),
		PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		// Do not leak the connection opened above; the next caller dials fresh.
		closeConnPool(db)
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	p.db = db
	return p.db, nil
}

func closeConnPool(db *gorm.DB) {
	if closer, ok := db.ConnPool.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Get().Warnf("failed to close database connection: %v", err)
		}
	}
}

// Migrate applies pending SQL migrations from the migrations/ directory.
func (p *Pool) Migrate() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", p.config.URL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}
