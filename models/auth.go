package models

// AuthUserDetails is the authenticated user placed in the request context by
// the user authentication interceptor
type AuthUserDetails struct {
	ID       string
	Email    string
	Forename string
	Surname  string
}
