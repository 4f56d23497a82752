package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// ConnectMySQL opens and pings a pooled MySQL connection.
func ConnectMySQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
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

// ConnectMySQLWithRetry keeps trying ConnectMySQL until the database answers
// or the attempt budget runs out.
func ConnectMySQLWithRetry(dsn string, attempts int, interval time.Duration) (*sql.DB, error) {
	var db *sql.DB
	err := connectWithRetry("mysql", attempts, interval, func() error {
		var connErr error
		db, connErr = ConnectMySQL(dsn)
		return connErr
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
