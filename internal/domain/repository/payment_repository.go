package repository

import "github.com/jhoicas/facturacion-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
// Los pagos son inmutables: no hay Update ni Delete.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByInvoice(invoiceID string) ([]*entity.Payment, error)
	// ListAll devuelve el snapshot completo (reportes del dashboard).
	ListAll() ([]*entity.Payment, error)
	// ExistsByTransactionNumber verifica unicidad global del número de transacción.
	ExistsByTransactionNumber(trxNumber string) (bool, error)
}
