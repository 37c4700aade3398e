package repository

import "github.com/jhoicas/facturacion-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// Los Get devuelven (nil, nil) cuando el registro no existe.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// GetByIDForUpdate lee la factura bloqueando la fila hasta el fin de la
	// transacción (SELECT ... FOR UPDATE). Serializa los pagos por factura:
	// solo tiene sentido llamarlo con un repositorio atado a una tx.
	GetByIDForUpdate(id string) (*entity.Invoice, error)
	// ListAll devuelve el snapshot completo (listados y reportes).
	ListAll() ([]*entity.Invoice, error)
	Delete(id string) error
}
