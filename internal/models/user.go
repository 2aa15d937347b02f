package models

// User represents a registered account. The password column holds a bcrypt
// hash and is never serialized.
type User struct {
	ID             string  `json:"_id" db:"id"`
	FirstName      string  `json:"firstName" db:"first_name"`
	LastName       string  `json:"lastName" db:"last_name"`
	Email          string  `json:"email" db:"email"`
	Password       string  `json:"-" db:"password"`
	ProfilePicture *string `json:"profilePicture" db:"profile_picture"`
}
