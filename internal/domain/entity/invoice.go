package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura.
//
// El monto es inmutable después de la creación y el estado (PENDING, PAID, ...)
// nunca se persiste: se deriva de los pagos asociados en cada lectura
// (ver domain/ledger.DeriveStatus). Invariante: la suma de los pagos de la
// factura nunca supera Amount; se exige al admitir cada pago.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	DueDate    time.Time // solo fecha (medianoche UTC)
	CreatedAt  time.Time
}
