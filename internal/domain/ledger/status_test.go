package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var hoy = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pago(monto int64) *entity.Payment {
	return &entity.Payment{Amount: decimal.NewFromInt(monto)}
}

// ──────────────────────────────────────────────────────────────────────────────
// DeriveStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveStatus_SinPagosYVigente_Pending(t *testing.T) {
	status := ledger.DeriveStatus(decimal.NewFromInt(1000), fecha(2025, 7, 1), nil, hoy)
	assert.Equal(t, ledger.StatusPending, status)
}

func TestDeriveStatus_SinPagosYVencida_Overdue(t *testing.T) {
	status := ledger.DeriveStatus(decimal.NewFromInt(1000), fecha(2025, 6, 1), nil, hoy)
	assert.Equal(t, ledger.StatusOverdue, status)
}

func TestDeriveStatus_PagoParcial_PartiallyPaid(t *testing.T) {
	payments := []*entity.Payment{pago(400)}
	status := ledger.DeriveStatus(decimal.NewFromInt(1000), fecha(2025, 7, 1), payments, hoy)
	assert.Equal(t, ledger.StatusPartiallyPaid, status)
}

// El pago exacto que completa el monto deja la factura en PAID.
func TestDeriveStatus_PagoExacto_Paid(t *testing.T) {
	payments := []*entity.Payment{pago(400), pago(600)}
	status := ledger.DeriveStatus(decimal.NewFromInt(1000), fecha(2025, 7, 1), payments, hoy)
	assert.Equal(t, ledger.StatusPaid, status)
}

// Una factura pagada por completo nunca es OVERDUE aunque ya venció.
func TestDeriveStatus_PagadaYVencida_PaidGanaAOverdue(t *testing.T) {
	payments := []*entity.Payment{pago(1000)}
	status := ledger.DeriveStatus(decimal.NewFromInt(1000), fecha(2025, 1, 1), payments, hoy)
	assert.Equal(t, ledger.StatusPaid, status)
}

// Vence hoy, sin pagos: todavía no está vencida.
func TestDeriveStatus_VenceHoy_Pending(t *testing.T) {
	status := ledger.DeriveStatus(decimal.NewFromInt(1000), hoy, nil, hoy)
	assert.Equal(t, ledger.StatusPending, status)
}

// La derivación es idempotente: mismas entradas, mismo estado.
func TestDeriveStatus_Idempotente(t *testing.T) {
	payments := []*entity.Payment{pago(250)}
	primera := ledger.DeriveStatus(decimal.NewFromInt(1000), fecha(2025, 7, 1), payments, hoy)
	segunda := ledger.DeriveStatus(decimal.NewFromInt(1000), fecha(2025, 7, 1), payments, hoy)
	assert.Equal(t, primera, segunda)
}

// ──────────────────────────────────────────────────────────────────────────────
// TotalPaid
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalPaid_SumaExacta(t *testing.T) {
	payments := []*entity.Payment{
		{Amount: decimal.RequireFromString("0.10")},
		{Amount: decimal.RequireFromString("0.20")},
	}
	assert.True(t, ledger.TotalPaid(payments).Equal(decimal.RequireFromString("0.30")),
		"la suma decimal debe ser exacta, sin error de flotantes")
}

func TestTotalPaid_SinPagos_Cero(t *testing.T) {
	assert.True(t, ledger.TotalPaid(nil).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// DateOnly / DaysBetween
// ──────────────────────────────────────────────────────────────────────────────

func TestDateOnly_NormalizaHoraYZona(t *testing.T) {
	bogota := time.FixedZone("America/Bogota", -5*3600)
	instante := time.Date(2025, 6, 15, 23, 45, 0, 0, bogota)
	assert.Equal(t, fecha(2025, 6, 15), ledger.DateOnly(instante))
}

func TestDaysBetween_DiasCalendario(t *testing.T) {
	assert.Equal(t, 10, ledger.DaysBetween(fecha(2025, 6, 5), hoy))
	assert.Equal(t, 0, ledger.DaysBetween(hoy, hoy))
}
