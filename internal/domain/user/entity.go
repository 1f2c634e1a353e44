package user

import "time"

// User is an operations back-office account. Admins may manage pay rates and
// drive batch lifecycle transitions; non-admins get read access only.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
