package database

import (
	"database/sql"
	"fmt"
)

// CreateTables creates all required tables in the database. IDs are opaque
// strings generated by the application, and every listing endpoint pages in
// ascending id order, so the primary key is the only index needed.
func CreateTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			profile_picture TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS animals (
			id TEXT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			hours_trained DOUBLE PRECISION NOT NULL,
			owner TEXT NOT NULL REFERENCES users(id),
			date_of_birth TIMESTAMP NOT NULL,
			profile_picture TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS trainings (
			id TEXT PRIMARY KEY,
			date TIMESTAMP NOT NULL,
			description TEXT NOT NULL,
			hours DOUBLE PRECISION NOT NULL,
			animal TEXT NOT NULL REFERENCES animals(id),
			user_id TEXT NOT NULL REFERENCES users(id),
			training_log_video TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
	}

	return nil
}
