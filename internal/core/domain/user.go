package domain

import "time"

type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	IsSeller     bool
	CreatedAt    time.Time
}
