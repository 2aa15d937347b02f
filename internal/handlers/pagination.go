package handlers

import (
	"database/sql"
	"strconv"
	"strings"
)

const defaultPageLimit = 10

// parsePageLimit parses the ?limit query parameter. Absent, non-numeric and
// non-positive values silently fall back to the default; API consumers rely
// on that leniency.
func parsePageLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit <= 0 {
		return defaultPageLimit
	}
	return limit
}

// resolveStartAfter validates a resume cursor against the table. A cursor
// that does not resolve to an existing record is dropped and the page starts
// from the beginning, mirroring the established behavior.
func resolveStartAfter(db *sql.DB, table string, startAfterID string) (string, error) {
	if startAfterID == "" {
		return "", nil
	}

	var id string
	err := db.QueryRow(`SELECT id FROM `+table+` WHERE id = $1`, startAfterID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}

	return id, nil
}

// nextCursor returns the identity of the last record on the page, or nil for
// an empty page. A nil cursor is the terminal condition for callers chaining
// pages.
func nextCursor(lastID string, pageLen int) *string {
	if pageLen == 0 {
		return nil
	}
	return &lastID
}
