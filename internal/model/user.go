package model

// Role values stored in users.role and carried in the JWT "role" claim.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User represents a credentialed user.  The stored row carries only the
// bcrypt hash; the Password field exists for the wire contract and is
// always blanked before a user leaves the API.  Token is derived at
// authentication time and never persisted.
//
// Fields:
//  ID           – primary key identifier.
//  Username     – unique login name; serialized as "userName".
//  Password     – wire-only; empty string in every response.
//  PasswordHash – bcrypt hash, never serialized.
//  Role         – "Admin" or "User".
//  Token        – signed JWT attached after a successful authenticate.
type User struct {
	ID           int    `json:"id"`       // users.id
	Username     string `json:"userName"` // users.username
	Password     string `json:"password"`
	PasswordHash string `json:"-"`    // users.password_hash
	Role         string `json:"role"` // users.role
	Token        string `json:"token,omitempty"`
}

// AuthenticationUser is the transient credential pair accepted by the
// authenticate and register endpoints.  It is never persisted as-is.
type AuthenticationUser struct {
	Username string `json:"userName"`
	Password string `json:"password"`
}
