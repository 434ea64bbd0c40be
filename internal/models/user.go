package models

import "time"

// Role is the coarse permission label carried inside a token.
type Role string

const (
	RoleEditor        Role = "Editor"
	RoleAdministrator Role = "Administrator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleEditor || r == RoleAdministrator
}

// User represents a user account in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
