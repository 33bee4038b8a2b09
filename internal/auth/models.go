package auth

import "time"

// User represents a member of the gift application.
//
// The password hash is never serialized; every response path goes
// through Sanitized.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	BirthDate       string    `json:"birthDate"`
	JoinDate        time.Time `json:"joinDate"`
	MembershipLevel string    `json:"membershipLevel"`
	Points          int       `json:"points"`
	GiftsReceived   int       `json:"giftsReceived"`
	GiftsSent       int       `json:"giftsSent"`
}

// Sanitized returns a copy safe for response payloads.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// Claims describes the validated identity extracted from an access token.
type Claims struct {
	UserID    string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// AuthResult bundles the stored user and the issued bearer token.
type AuthResult struct {
	User  User
	Token string
}
