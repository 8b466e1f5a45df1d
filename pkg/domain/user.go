package domain

// User is the authenticated account holder as returned by the auth
// endpoints. Token is the bearer token for subsequent requests.
type User struct {
	ID    int
	Name  string
	Email string
	Token string
}
