package model

// User represents a provisioned identity. Users are seeded at startup and
// never created or removed at runtime.
type User struct {
	Email    string
	Password string
}

// LoginRequest represents a login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
