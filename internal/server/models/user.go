package models

import "time"

// User is an account owner. Credential holds the salt+hash encoding produced
// by cryptox and must never leave the user service; public projections carry
// it blanked.
type User struct {
	ID         string
	Email      string
	Credential string
	CreatedAt  time.Time
}
