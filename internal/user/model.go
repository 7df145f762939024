package user

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
}
