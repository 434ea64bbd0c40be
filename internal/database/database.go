package database

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/isdelr/vehicle-registry-be/internal/auth"
	"github.com/isdelr/vehicle-registry-be/internal/models"
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		license_plate TEXT NOT NULL
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}

// Seed inserts the bootstrap users when the users table is empty. It is a
// one-time, idempotent bootstrap: a non-empty table leaves the database
// untouched.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		username string
		password string
		role     models.Role
	}{
		{"editor", "senha123", models.RoleEditor},
		{"admin", "senhaforte", models.RoleAdministrator},
	}

	for _, d := range defaults {
		hash, err := auth.HashPassword(d.password)
		if err != nil {
			return err
		}
		_, err = db.Exec("INSERT INTO users(id, username, password_hash, role) VALUES(?, ?, ?, ?)",
			uuid.New().String(), d.username, hash, d.role)
		if err != nil {
			return err
		}
	}

	log.Info().Msg("Seeded default users")
	return nil
}
