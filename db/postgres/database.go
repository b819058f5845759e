package postgres

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/quantrkucb/OrderBookVisualiser/config"
)

type Db struct {
	PostgresClient *sql.DB
	logger         zerolog.Logger
}

// ConnectDB opens the journal database, retrying until it answers a ping or
// the attempts run out.
func ConnectDB(cfg config.Postgres, logger zerolog.Logger) (*Db, error) {
	var err error
	for i := 0; i < cfg.MaxAttempts; i++ {
		var db *sql.DB
		db, err = sql.Open("postgres", cfg.DSN())
		if err == nil {
			if err = db.Ping(); err == nil {
				logger.Info().Str("host", cfg.Host).Str("db", cfg.DBName).Msg("connected to postgres journal")
				return &Db{PostgresClient: db, logger: logger}, nil
			}
			db.Close()
		}
		logger.Warn().Err(err).Int("attempt", i+1).Msg("postgres not ready, retrying")
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connect postgres after %d attempts: %w", cfg.MaxAttempts, err)
}

// Stop closes the journal connection.
func (db *Db) Stop() {
	if db.PostgresClient == nil {
		return
	}
	if err := db.PostgresClient.Close(); err != nil {
		db.logger.Error().Err(err).Msg("closing postgres connection")
		return
	}
	db.logger.Info().Msg("postgres connection closed")
}

// InitSchema applies db/postgres/schema.sql. Development convenience; the
// statements are idempotent.
func (db *Db) InitSchema() error {
	schemaPath := filepath.Join("db", "postgres", "schema.sql")
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema file: %w", err)
	}
	if _, err := db.PostgresClient.Exec(string(content)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}
