package models

import "time"

// Training is a single training session log entry. Immutable once created.
type Training struct {
	ID               string    `json:"_id" db:"id"`
	Date             time.Time `json:"date" db:"date"`
	Description      string    `json:"description" db:"description"`
	Hours            float64   `json:"hours" db:"hours"`
	Animal           string    `json:"animal" db:"animal"`
	User             string    `json:"user" db:"user_id"`
	TrainingLogVideo *string   `json:"trainingLogVideo" db:"training_log_video"`
}
