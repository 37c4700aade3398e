package repository

import "github.com/jhoicas/facturacion-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Los Get devuelven (nil, nil) cuando el registro no existe.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByEmail busca por email con comparación exacta (sensible a mayúsculas).
	GetByEmail(email string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	// ListAll devuelve el snapshot completo (reportes del dashboard).
	ListAll() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
