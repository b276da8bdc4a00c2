package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

// NewConnectSQLite opens a private in-memory sqlite database.
//
// The database lives only as long as its single connection, which the pool
// keeps open for the life of the process. Every call gets a fresh database
// name so two stores never share state.
func NewConnectSQLite(ctx context.Context, log *logger.Logger) (*DB, error) {
	dsn := fmt.Sprintf("file:users-%s?mode=memory&cache=shared", uuid.NewString())

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// one connection: keeps the in-memory database alive and serializes
	// every statement
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}
