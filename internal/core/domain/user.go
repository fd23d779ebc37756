package domain

import "time"

// User is an account that owns registered sites. PasswordHash holds a
// bcrypt hash; the plaintext is never stored.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
