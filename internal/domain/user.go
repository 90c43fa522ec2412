package domain

import "time"

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	FullName     string    `json:"fullName" db:"full_name"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

// UserSummary is the public part of a user returned by the auth endpoints.
type UserSummary struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, FullName: u.FullName}
}
