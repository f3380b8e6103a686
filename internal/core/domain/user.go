package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User models a console operator. Users are seeded once and never created
// or removed through the API.
type User struct {
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"password" bson:"password"`
	Role         string `json:"role"     bson:"role"`
}

// Identity is the caller proven by a session token. Role is the capability
// claimed at issuance; it is not re-checked against the credential store.
type Identity struct {
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
