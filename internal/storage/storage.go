package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/misterclayt0n/forja/internal/config"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage() *Storage {
	url := config.LoadOrDefault().DB.ConnectionString
	if url == "" {
		// No config file entry, fall back to the environment.
		_ = godotenv.Load()
		url = os.Getenv("TURSO_DATABASE_URL")
	}
	if url == "" {
		fmt.Fprintf(os.Stderr, "No database configured: set connection_string in the config file or TURSO_DATABASE_URL")
		os.Exit(1)
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s", url, err)
		os.Exit(1)
	}

	if err := InitializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v", err)
		os.Exit(1)
	}

	return &Storage{DB: db}
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS lifter_profiles (
            lift TEXT PRIMARY KEY,
            training_max REAL NOT NULL,
            units TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS programs (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            template TEXT NOT NULL,
            units TEXT NOT NULL,
            document TEXT NOT NULL,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS assessments (
            id TEXT PRIMARY KEY,
            kind TEXT NOT NULL,
            result TEXT NOT NULL,
            created_at TEXT NOT NULL
        );
    `)
	return err
}
