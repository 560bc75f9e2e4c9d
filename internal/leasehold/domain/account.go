package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type Account struct {
	ID           string
	Role         Role
	Username     string
	Email        string
	PasswordHash string // argon2id PHC string
	FirstName    string
	LastName     string
	Phone        string
	Gender       Gender // empty for bootstrap admins
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
