package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 25
	connMaxLifetime = 5 * time.Minute
)

// ConnectPostgres opens and pings a pooled Postgres connection.
func ConnectPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// ConnectPostgresWithRetry keeps trying ConnectPostgres until the database
// answers or the attempt budget runs out.
func ConnectPostgresWithRetry(dsn string, attempts int, interval time.Duration) (*sql.DB, error) {
	var db *sql.DB
	err := connectWithRetry("postgres", attempts, interval, func() error {
		var connErr error
		db, connErr = ConnectPostgres(dsn)
		return connErr
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
