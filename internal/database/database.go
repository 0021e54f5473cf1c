package database

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// InitDB initializes the database and ensures the schema is up to date.
// For local databases, dbName is the filename (or ":memory:"). When primaryUrl
// is set, a remote libsql database is used instead.
func InitDB(dbName string, primaryUrl string, authToken string) (*sql.DB, func(), error) {
	if primaryUrl == "" {
		log.Info("Initializing local SQLite database", "name", dbName)
		db, err := sql.Open("sqlite3", dbName)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open local database: %w", err)
		}
		if err = createTables(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to create tables for local db: %w", err)
		}
		teardown := func() {
			db.Close()
		}
		return db, teardown, nil
	}

	log.Info("Initializing Turso database", "url", primaryUrl)
	db, err := sql.Open("libsql", primaryUrl+"?authToken="+authToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db %s: %w", primaryUrl, err)
	}
	if err = createTables(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create tables for remote db: %w", err)
	}
	teardown := func() {
		db.Close()
	}
	return db, teardown, nil
}

func createTables(db *sql.DB) error {
	// seq preserves the source order of the dataset; every read is ordered by it.
	createMatchesTable := `
	CREATE TABLE IF NOT EXISTS matches (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		player1 TEXT NOT NULL DEFAULT '',
		player2 TEXT NOT NULL DEFAULT '',
		goals_player1 TEXT NOT NULL DEFAULT '',
		goals_player2 TEXT NOT NULL DEFAULT '',
		match_date TEXT NOT NULL DEFAULT '',
		tournament_name TEXT NOT NULL DEFAULT ''
	);`

	_, err := db.Exec(createMatchesTable)
	if err != nil {
		return err
	}
	log.Info("Database initialized successfully")
	return nil
}
