package repository

import "github.com/jhoicas/facturacion-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (auth).
type UserRepository interface {
	Create(user *entity.User) error
	// FindByEmail devuelve (nil, nil) si el usuario no existe.
	FindByEmail(email string) (*entity.User, error)
}
