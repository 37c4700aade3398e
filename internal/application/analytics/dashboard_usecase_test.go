package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/analytics"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: datos de dos clientes con facturas y pagos en meses distintos
// ──────────────────────────────────────────────────────────────────────────────

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedStore(t *testing.T) (*memory.Store, *analytics.DashboardUseCase) {
	t.Helper()
	store := memory.NewStore()

	acme := &entity.Customer{ID: uuid.New().String(), Name: "Acme", Email: "acme@test.io", CreatedAt: fecha(2025, 1, 5)}
	globex := &entity.Customer{ID: uuid.New().String(), Name: "Globex", Email: "globex@test.io", CreatedAt: fecha(2025, 1, 6)}
	require.NoError(t, store.Customers().Create(acme))
	require.NoError(t, store.Customers().Create(globex))

	facturaAcme := &entity.Invoice{ID: "inv-a", CustomerID: acme.ID, Amount: decimal.NewFromInt(1000), DueDate: fecha(2025, 3, 1), CreatedAt: fecha(2025, 1, 10)}
	facturaGlobex := &entity.Invoice{ID: "inv-b", CustomerID: globex.ID, Amount: decimal.NewFromInt(500), DueDate: fecha(2025, 3, 1), CreatedAt: fecha(2025, 2, 10)}
	require.NoError(t, store.Invoices().Create(facturaAcme))
	require.NoError(t, store.Invoices().Create(facturaGlobex))

	pagos := []*entity.Payment{
		{ID: uuid.New().String(), InvoiceID: "inv-a", Amount: decimal.NewFromInt(100), PaymentDate: fecha(2025, 1, 15), TransactionNumber: "TRX-1"},
		{ID: uuid.New().String(), InvoiceID: "inv-a", Amount: decimal.NewFromInt(50), PaymentDate: fecha(2025, 1, 20), TransactionNumber: "TRX-2"},
		{ID: uuid.New().String(), InvoiceID: "inv-b", Amount: decimal.NewFromInt(300), PaymentDate: fecha(2025, 2, 15), TransactionNumber: "TRX-3"},
	}
	for _, p := range pagos {
		require.NoError(t, store.Payments().Create(p))
	}

	uc := analytics.NewDashboardUseCase(store.Customers(), store.Invoices(), store.Payments())
	return store, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_SinVentana(t *testing.T) {
	_, uc := seedStore(t)

	s, err := uc.Summary(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 2, s.TotalCustomers)
	assert.Equal(t, 2, s.TotalInvoices)
	assert.True(t, s.TotalAmountInvoiced.Equal(decimal.NewFromInt(1500)))
	assert.True(t, s.TotalAmountPaid.Equal(decimal.NewFromInt(450)))
	assert.True(t, s.OutstandingBalance.Equal(decimal.NewFromInt(1050)))
}

// Ventana de enero: entran las dos altas de clientes y la factura de Acme,
// pero solo los pagos con fecha de enero.
func TestSummary_VentanaEnero(t *testing.T) {
	_, uc := seedStore(t)

	s, err := uc.Summary(context.Background(), "2025-01-01", "2025-01-31")
	require.NoError(t, err)

	assert.Equal(t, 2, s.TotalCustomers)
	assert.Equal(t, 1, s.TotalInvoices)
	assert.True(t, s.TotalAmountInvoiced.Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.TotalAmountPaid.Equal(decimal.NewFromInt(150)))
	assert.True(t, s.OutstandingBalance.Equal(decimal.NewFromInt(850)))
}

func TestSummary_FechaInvalida(t *testing.T) {
	_, uc := seedStore(t)
	_, err := uc.Summary(context.Background(), "01-01-2025", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// TopCustomers
// ──────────────────────────────────────────────────────────────────────────────

func TestTopCustomers_OrdenDescendente(t *testing.T) {
	_, uc := seedStore(t)

	top, err := uc.TopCustomers(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, top, 2)
	assert.Equal(t, "Globex", top[0].CustomerName)
	assert.True(t, top[0].TotalPaid.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "Acme", top[1].CustomerName)
	assert.True(t, top[1].TotalPaid.Equal(decimal.NewFromInt(150)))
}

func TestTopCustomers_VentanaExcluyePagos(t *testing.T) {
	_, uc := seedStore(t)

	top, err := uc.TopCustomers(context.Background(), "2025-02-01", "2025-02-28")
	require.NoError(t, err)

	require.Len(t, top, 1)
	assert.Equal(t, "Globex", top[0].CustomerName)
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthlyRevenue
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyRevenue_BucketsPorMes(t *testing.T) {
	_, uc := seedStore(t)

	months, err := uc.MonthlyRevenue(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, months, 2)
	assert.Equal(t, "2025-01", months[0].Month)
	assert.True(t, months[0].Total.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "2025-02", months[1].Month)
	assert.True(t, months[1].Total.Equal(decimal.NewFromInt(300)))
}

func TestMonthlyRevenue_StoreVacio(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(store.Customers(), store.Invoices(), store.Payments())

	months, err := uc.MonthlyRevenue(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, months)
}
