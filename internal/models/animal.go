package models

import "time"

// Animal represents a service animal in training. HoursTrained grows as
// trainings are recorded against the animal.
type Animal struct {
	ID             string    `json:"_id" db:"id"`
	Name           string    `json:"name" db:"name"`
	HoursTrained   float64   `json:"hoursTrained" db:"hours_trained"`
	Owner          string    `json:"owner" db:"owner"`
	DateOfBirth    time.Time `json:"dateOfBirth" db:"date_of_birth"`
	ProfilePicture *string   `json:"profilePicture" db:"profile_picture"`
}
