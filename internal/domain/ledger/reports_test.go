package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/ledger"
)

func rango(start, end time.Time) ledger.DateRange {
	return ledger.DateRange{Start: &start, End: &end}
}

func cliente(id, name string, createdAt time.Time) *entity.Customer {
	return &entity.Customer{ID: id, Name: name, CreatedAt: createdAt}
}

func factura(id, customerID string, monto int64, dueDate, createdAt time.Time) *entity.Invoice {
	return &entity.Invoice{ID: id, CustomerID: customerID, Amount: decimal.NewFromInt(monto), DueDate: dueDate, CreatedAt: createdAt}
}

func pagoDe(invoiceID string, monto int64, paymentDate time.Time) *entity.Payment {
	return &entity.Payment{InvoiceID: invoiceID, Amount: decimal.NewFromInt(monto), PaymentDate: paymentDate}
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildSummary_SinRango_TodoElHistorico(t *testing.T) {
	customers := []*entity.Customer{
		cliente("c1", "Acme", fecha(2025, 1, 10)),
		cliente("c2", "Globex", fecha(2025, 2, 10)),
	}
	invoices := []*entity.Invoice{
		factura("f1", "c1", 1000, fecha(2025, 3, 1), fecha(2025, 1, 15)),
		factura("f2", "c2", 500, fecha(2025, 3, 1), fecha(2025, 2, 15)),
	}
	payments := []*entity.Payment{
		pagoDe("f1", 300, fecha(2025, 1, 20)),
		pagoDe("f2", 500, fecha(2025, 2, 20)),
	}

	s := ledger.BuildSummary(customers, invoices, payments, ledger.DateRange{})

	assert.Equal(t, 2, s.TotalCustomers)
	assert.Equal(t, 2, s.TotalInvoices)
	assert.True(t, s.TotalAmountInvoiced.Equal(decimal.NewFromInt(1500)))
	assert.True(t, s.TotalAmountPaid.Equal(decimal.NewFromInt(800)))
	assert.True(t, s.OutstandingBalance.Equal(decimal.NewFromInt(700)))
}

// El saldo de la ventana es la resta simple de los totales filtrados: un pago
// dentro de la ventana contra una factura creada fuera de ella produce un
// saldo más bajo que la suma de saldos por factura, y puede ser negativo.
func TestBuildSummary_VentanaAsimetrica(t *testing.T) {
	invoices := []*entity.Invoice{
		factura("f1", "c1", 1000, fecha(2025, 3, 1), fecha(2024, 12, 15)), // fuera de la ventana
	}
	payments := []*entity.Payment{
		pagoDe("f1", 400, fecha(2025, 1, 20)), // dentro de la ventana
	}

	s := ledger.BuildSummary(nil, invoices, payments, rango(fecha(2025, 1, 1), fecha(2025, 1, 31)))

	assert.Equal(t, 0, s.TotalInvoices)
	assert.True(t, s.TotalAmountInvoiced.IsZero())
	assert.True(t, s.TotalAmountPaid.Equal(decimal.NewFromInt(400)))
	assert.True(t, s.OutstandingBalance.Equal(decimal.NewFromInt(-400)),
		"el saldo de la ventana puede ser negativo cuando los pagos superan lo facturado en ella")
}

func TestBuildSummary_RangoInclusivoEnLosBordes(t *testing.T) {
	payments := []*entity.Payment{
		pagoDe("f1", 100, fecha(2025, 1, 1)),
		pagoDe("f1", 200, fecha(2025, 1, 31)),
		pagoDe("f1", 999, fecha(2025, 2, 1)),
	}
	s := ledger.BuildSummary(nil, nil, payments, rango(fecha(2025, 1, 1), fecha(2025, 1, 31)))
	assert.True(t, s.TotalAmountPaid.Equal(decimal.NewFromInt(300)))
}

// ──────────────────────────────────────────────────────────────────────────────
// TopCustomers
// ──────────────────────────────────────────────────────────────────────────────

func TestTopCustomers_Top5DescendenteYEmpateEstable(t *testing.T) {
	customersByID := make(map[string]*entity.Customer)
	invoicesByID := make(map[string]*entity.Invoice)
	var payments []*entity.Payment

	// Siete clientes: c1..c7 pagan 100*i, salvo c6 y c7 que empatan en 650.
	montos := map[string]int64{"c1": 100, "c2": 200, "c3": 300, "c4": 400, "c5": 500, "c6": 650, "c7": 650}
	for _, id := range []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"} {
		customersByID[id] = cliente(id, "Cliente "+id, fecha(2025, 1, 1))
		invID := "f-" + id
		invoicesByID[invID] = factura(invID, id, 10000, fecha(2025, 12, 1), fecha(2025, 1, 1))
		payments = append(payments, pagoDe(invID, montos[id], fecha(2025, 3, 10)))
	}

	top := ledger.TopCustomers(payments, invoicesByID, customersByID, ledger.DateRange{})

	require.Len(t, top, 5, "el ranking se corta en cinco clientes")
	// c6 y c7 empatan: gana c6 por aparecer primero en el recorrido de pagos.
	assert.Equal(t, "c6", top[0].CustomerID)
	assert.Equal(t, "c7", top[1].CustomerID)
	assert.Equal(t, "c5", top[2].CustomerID)
	assert.Equal(t, "c4", top[3].CustomerID)
	assert.Equal(t, "c3", top[4].CustomerID)
	assert.True(t, top[0].TotalPaid.Equal(decimal.NewFromInt(650)))
}

func TestTopCustomers_AgrupaPorClienteDeLaFactura(t *testing.T) {
	customersByID := map[string]*entity.Customer{"c1": cliente("c1", "Acme", fecha(2025, 1, 1))}
	invoicesByID := map[string]*entity.Invoice{
		"f1": factura("f1", "c1", 1000, fecha(2025, 12, 1), fecha(2025, 1, 1)),
		"f2": factura("f2", "c1", 1000, fecha(2025, 12, 1), fecha(2025, 1, 1)),
	}
	payments := []*entity.Payment{
		pagoDe("f1", 300, fecha(2025, 3, 1)),
		pagoDe("f2", 200, fecha(2025, 3, 2)),
	}

	top := ledger.TopCustomers(payments, invoicesByID, customersByID, ledger.DateRange{})

	require.Len(t, top, 1)
	assert.Equal(t, "Acme", top[0].CustomerName)
	assert.True(t, top[0].TotalPaid.Equal(decimal.NewFromInt(500)),
		"los pagos de distintas facturas del mismo cliente se suman")
}

func TestTopCustomers_FiltraPorFechaDePago(t *testing.T) {
	customersByID := map[string]*entity.Customer{"c1": cliente("c1", "Acme", fecha(2025, 1, 1))}
	invoicesByID := map[string]*entity.Invoice{"f1": factura("f1", "c1", 1000, fecha(2025, 12, 1), fecha(2025, 1, 1))}
	payments := []*entity.Payment{
		pagoDe("f1", 300, fecha(2025, 3, 1)),
		pagoDe("f1", 999, fecha(2025, 5, 1)), // fuera de la ventana
	}

	top := ledger.TopCustomers(payments, invoicesByID, customersByID, rango(fecha(2025, 3, 1), fecha(2025, 3, 31)))

	require.Len(t, top, 1)
	assert.True(t, top[0].TotalPaid.Equal(decimal.NewFromInt(300)))
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthlyRevenue
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyRevenue_AgrupaPorMesAscendente(t *testing.T) {
	payments := []*entity.Payment{
		pagoDe("f1", 100, fecha(2025, 1, 10)),
		pagoDe("f1", 50, fecha(2025, 1, 25)),
		pagoDe("f1", 200, fecha(2025, 3, 5)),
		pagoDe("f1", 75, fecha(2024, 12, 31)),
	}

	months := ledger.MonthlyRevenue(payments, ledger.DateRange{})

	require.Len(t, months, 3)
	assert.Equal(t, "2024-12", months[0].Month)
	assert.Equal(t, "2025-01", months[1].Month)
	assert.Equal(t, "2025-03", months[2].Month)
	assert.True(t, months[1].Total.Equal(decimal.NewFromInt(150)))
}

func TestMonthlyRevenue_SinPagos_Vacio(t *testing.T) {
	assert.Empty(t, ledger.MonthlyRevenue(nil, ledger.DateRange{}))
}

// ──────────────────────────────────────────────────────────────────────────────
// OverdueInvoices
// ──────────────────────────────────────────────────────────────────────────────

func TestOverdueInvoices_FilaCompleta(t *testing.T) {
	customersByID := map[string]*entity.Customer{"c1": cliente("c1", "Acme", fecha(2025, 1, 1))}
	invoices := []*entity.Invoice{
		factura("f1", "c1", 1000, hoy.AddDate(0, 0, -10), fecha(2025, 1, 10)),
	}
	paymentsByInvoice := map[string][]*entity.Payment{
		"f1": {pagoDe("f1", 400, fecha(2025, 6, 1))},
	}

	out := ledger.OverdueInvoices(invoices, paymentsByInvoice, customersByID, ledger.OverdueFilter{}, hoy)

	require.Len(t, out, 1)
	row := out[0]
	assert.Equal(t, "FAC-F1", row.InvoiceNumber)
	assert.Equal(t, "Acme", row.CustomerName)
	assert.True(t, row.AmountPaid.Equal(decimal.NewFromInt(400)))
	assert.True(t, row.Balance.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, 10, row.DaysOverdue)
	assert.Equal(t, string(ledger.StatusPartiallyPaid), row.Status)
}

// Una factura vencida pero pagada por completo no aparece en el listado.
func TestOverdueInvoices_PagadaNoAparece(t *testing.T) {
	invoices := []*entity.Invoice{
		factura("f1", "c1", 1000, hoy.AddDate(0, 0, -10), fecha(2025, 1, 10)),
	}
	paymentsByInvoice := map[string][]*entity.Payment{
		"f1": {pagoDe("f1", 1000, fecha(2025, 6, 1))},
	}

	out := ledger.OverdueInvoices(invoices, paymentsByInvoice, nil, ledger.OverdueFilter{}, hoy)
	assert.Empty(t, out)
}

// Vence hoy: todavía no está vencida, DaysOverdue sería cero.
func TestOverdueInvoices_VenceHoyNoAparece(t *testing.T) {
	invoices := []*entity.Invoice{factura("f1", "c1", 1000, hoy, fecha(2025, 1, 10))}
	out := ledger.OverdueInvoices(invoices, nil, nil, ledger.OverdueFilter{}, hoy)
	assert.Empty(t, out)
}

func TestOverdueInvoices_FiltroPorClienteYRango(t *testing.T) {
	invoices := []*entity.Invoice{
		factura("f1", "c1", 1000, hoy.AddDate(0, 0, -5), fecha(2025, 1, 10)),
		factura("f2", "c2", 1000, hoy.AddDate(0, 0, -5), fecha(2025, 1, 10)),
		factura("f3", "c1", 1000, hoy.AddDate(0, 0, -5), fecha(2024, 6, 10)),
	}

	// Filtro por cliente.
	out := ledger.OverdueInvoices(invoices, nil, nil, ledger.OverdueFilter{CustomerID: "c1"}, hoy)
	require.Len(t, out, 2)

	// Filtro por cliente y rango de creación.
	filtro := ledger.OverdueFilter{CustomerID: "c1", Range: rango(fecha(2025, 1, 1), fecha(2025, 1, 31))}
	out = ledger.OverdueInvoices(invoices, nil, nil, filtro, hoy)
	require.Len(t, out, 1)
	assert.Equal(t, ledger.InvoiceNumber("f1"), out[0].InvoiceNumber)
}

// El listado siempre sale en orden ascendente por id de factura.
func TestOverdueInvoices_OrdenReproducible(t *testing.T) {
	invoices := []*entity.Invoice{
		factura("f3", "c1", 100, hoy.AddDate(0, 0, -1), fecha(2025, 1, 1)),
		factura("f1", "c1", 100, hoy.AddDate(0, 0, -1), fecha(2025, 1, 1)),
		factura("f2", "c1", 100, hoy.AddDate(0, 0, -1), fecha(2025, 1, 1)),
	}

	out := ledger.OverdueInvoices(invoices, nil, nil, ledger.OverdueFilter{}, hoy)

	require.Len(t, out, 3)
	assert.Equal(t, ledger.InvoiceNumber("f1"), out[0].InvoiceNumber)
	assert.Equal(t, ledger.InvoiceNumber("f2"), out[1].InvoiceNumber)
	assert.Equal(t, ledger.InvoiceNumber("f3"), out[2].InvoiceNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// InvoiceNumber
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceNumber_Determinista(t *testing.T) {
	id := "a3bb189e-8bf9-3888-9912-ace4e6543002"
	assert.Equal(t, "FAC-A3BB189E", ledger.InvoiceNumber(id))
	assert.Equal(t, ledger.InvoiceNumber(id), ledger.InvoiceNumber(id))
}
