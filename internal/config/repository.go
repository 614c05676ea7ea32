package config

import (
	"context"
	"fmt"
	"os"

	"tasklists/internal/repository"
	"tasklists/internal/repository/postgres"
	"tasklists/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment reads TL_ENV, defaulting to production
func GetEnvironment() Environment {
	switch os.Getenv("TL_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env    Environment
	config *Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, cfg *Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, config: cfg}
}

// CreateRepository creates a repository instance based on the current environment.
// The postgres driver is honoured in every environment except testing.
func (rf *RepositoryFactory) CreateRepository(ctx context.Context) (repository.Repository, error) {
	switch rf.env {
	case Testing:
		return CreateTestRepository()
	case Development:
		if rf.config.Database.Driver == DriverPostgres {
			return rf.createPostgresRepository(ctx)
		}
		return rf.openSQLite("tl.db")
	default:
		return CreateRepository(ctx, rf.config)
	}
}

// CreateRepository creates the repository selected by the configuration
func CreateRepository(ctx context.Context, cfg *Config) (repository.Repository, error) {
	rf := &RepositoryFactory{env: Production, config: cfg}
	if cfg.Database.Driver == DriverPostgres {
		return rf.createPostgresRepository(ctx)
	}

	if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return rf.openSQLite(cfg.GetDatabasePath())
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (repository.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}

func (rf *RepositoryFactory) openSQLite(dbPath string) (repository.Repository, error) {
	repo, err := sqlite.New(dbPath,
		sqlite.WithQueryTimeout(rf.config.GetQueryTimeout()),
		sqlite.WithWriteTimeout(rf.config.GetWriteTimeout()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}

func (rf *RepositoryFactory) createPostgresRepository(ctx context.Context) (repository.Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, rf.config.GetQueryTimeout())
	defer cancel()

	repo, err := postgres.Open(ctx, rf.config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres database: %w", err)
	}
	return repo, nil
}
