// Package ledger contiene el núcleo del libro de cobros: las reglas que
// deciden si un pago es admisible, la derivación del estado de una factura a
// partir de sus pagos y la reducción de facturas/pagos a reportes.
//
// Todas las funciones del paquete son puras: reciben snapshots explícitos de
// entidades y no tocan la persistencia. Los casos de uso en
// internal/application son quienes cargan los datos y persisten resultados.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// Status estado derivado de una factura. Nunca se persiste: se recalcula en
// cada lectura a partir del conjunto de pagos vivo y la fecha de vencimiento,
// así no puede quedar desincronizado.
type Status string

const (
	StatusPending       Status = "PENDING"
	StatusPartiallyPaid Status = "PARTIALLY_PAID"
	StatusPaid          Status = "PAID"
	StatusOverdue       Status = "OVERDUE"
)

// TotalPaid suma los montos de los pagos con aritmética decimal exacta.
func TotalPaid(payments []*entity.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// DeriveStatus deriva el estado de una factura desde su conjunto de pagos.
//
// El orden de evaluación importa: una factura pagada por completo nunca es
// OVERDUE aunque la fecha de vencimiento ya haya pasado.
func DeriveStatus(amount decimal.Decimal, dueDate time.Time, payments []*entity.Payment, today time.Time) Status {
	totalPaid := TotalPaid(payments)
	switch {
	case totalPaid.GreaterThanOrEqual(amount):
		return StatusPaid
	case totalPaid.GreaterThan(decimal.Zero):
		return StatusPartiallyPaid
	case DateOnly(dueDate).Before(DateOnly(today)):
		return StatusOverdue
	default:
		return StatusPending
	}
}
