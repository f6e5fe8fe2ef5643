package models

import "time"

// User represents a registered account. Accounts are created once at
// registration and never updated or deleted by this service.
type User struct {
	Email     string    `json:"email"      bson:"email"`
	Password  string    `json:"-"          bson:"password"`
	Name      string    `json:"name"       bson:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
