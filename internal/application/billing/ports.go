package billing

import (
	"context"
	"time"

	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// Clock fuente de tiempo inyectable. Los casos de uso nunca llaman
// time.Now directamente para que las reglas de fechas (vencimiento, pagos
// futuros, días de mora) sean deterministas bajo test.
type Clock func() time.Time

// TxRunner ejecuta fn dentro de una transacción con los repositorios de
// pagos atados a la misma tx. Si fn retorna error se hace rollback: un pago
// rechazado nunca queda persistido a medias.
type TxRunner interface {
	RunPayment(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
