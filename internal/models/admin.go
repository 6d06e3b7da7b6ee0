package models

import "time"

const RoleAdmin = "admin"

type AdminUser struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
