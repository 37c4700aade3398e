package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un pago aplicado contra una factura.
//
// Inmutable una vez creado: no se actualiza ni se reversa parcialmente.
// El número de transacción es único entre todos los pagos del sistema.
type Payment struct {
	ID                string
	InvoiceID         string
	Amount            decimal.Decimal
	PaymentDate       time.Time // solo fecha (medianoche UTC)
	PaymentMethod     string    // texto libre, opcional
	TransactionNumber string
	CreatedAt         time.Time
}
