package model

import "time"

// Role distinguishes marketplace parties.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleFarmer   Role = "farmer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known marketplace roles.
func (r Role) Valid() bool {
	switch r {
	case RoleConsumer, RoleFarmer, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered marketplace participant.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
