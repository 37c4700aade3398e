package entity

import "time"

// Roles de usuario de la API.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User usuario de la API (autenticación). El password solo se guarda hasheado.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" | "operador"
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
