package models

// User is a registered account. The username is the primary identifier
// and is immutable after registration.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"` // don’t expose hash
}
