package model

import "time"

// Session maps an opaque bearer token to the identity that logged in.
// Sessions live for the lifetime of the process.
type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
}
