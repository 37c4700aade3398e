package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

const topCustomersLimit = 5 // número de clientes en el widget del dashboard

// Summary totales de la ventana de reporte.
type Summary struct {
	TotalCustomers      int
	TotalInvoices       int
	TotalAmountInvoiced decimal.Decimal
	TotalAmountPaid     decimal.Decimal
	OutstandingBalance  decimal.Decimal
}

// BuildSummary cuenta los clientes y facturas creados dentro de la ventana,
// suma lo facturado sobre esas facturas y lo pagado por fecha de pago.
//
// OutstandingBalance es la resta simple de ambos totales filtrados, no la
// suma de saldos por factura: un pago con fecha dentro de la ventana contra
// una factura creada fuera de ella igual reduce el saldo de la ventana. El
// dashboard histórico se define así y los clientes dependen de ese número.
func BuildSummary(customers []*entity.Customer, invoices []*entity.Invoice, payments []*entity.Payment, r DateRange) Summary {
	s := Summary{
		TotalAmountInvoiced: decimal.Zero,
		TotalAmountPaid:     decimal.Zero,
	}
	for _, c := range customers {
		if r.Contains(c.CreatedAt) {
			s.TotalCustomers++
		}
	}
	for _, inv := range invoices {
		if r.Contains(inv.CreatedAt) {
			s.TotalInvoices++
			s.TotalAmountInvoiced = s.TotalAmountInvoiced.Add(inv.Amount)
		}
	}
	for _, p := range payments {
		if r.Contains(p.PaymentDate) {
			s.TotalAmountPaid = s.TotalAmountPaid.Add(p.Amount)
		}
	}
	s.OutstandingBalance = s.TotalAmountInvoiced.Sub(s.TotalAmountPaid)
	return s
}

// CustomerTotal total pagado por un cliente dentro de la ventana.
type CustomerTotal struct {
	CustomerID   string
	CustomerName string
	TotalPaid    decimal.Decimal
}

// TopCustomers agrupa los pagos de la ventana por el cliente dueño de la
// factura de cada pago, suma por cliente y devuelve los 5 mayores en orden
// descendente. El sort es estable: ante empate de totales gana el cliente
// visto primero en el recorrido de pagos.
func TopCustomers(payments []*entity.Payment, invoicesByID map[string]*entity.Invoice, customersByID map[string]*entity.Customer, r DateRange) []CustomerTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string // ids en orden de primera aparición
	for _, p := range payments {
		if !r.Contains(p.PaymentDate) {
			continue
		}
		inv, ok := invoicesByID[p.InvoiceID]
		if !ok {
			continue
		}
		if _, seen := totals[inv.CustomerID]; !seen {
			order = append(order, inv.CustomerID)
		}
		totals[inv.CustomerID] = totals[inv.CustomerID].Add(p.Amount)
	}

	ranking := make([]CustomerTotal, 0, len(order))
	for _, id := range order {
		name := ""
		if c, ok := customersByID[id]; ok {
			name = c.Name
		}
		ranking = append(ranking, CustomerTotal{CustomerID: id, CustomerName: name, TotalPaid: totals[id]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalPaid.GreaterThan(ranking[j].TotalPaid)
	})
	if len(ranking) > topCustomersLimit {
		ranking = ranking[:topCustomersLimit]
	}
	return ranking
}

// MonthlyTotal total de pagos de un mes calendario.
type MonthlyTotal struct {
	Month string // "YYYY-MM"
	Total decimal.Decimal
}

// MonthlyRevenue agrupa los pagos de la ventana por (año, mes) de la fecha de
// pago y devuelve los buckets en orden ascendente por clave "YYYY-MM".
func MonthlyRevenue(payments []*entity.Payment, r DateRange) []MonthlyTotal {
	buckets := make(map[string]decimal.Decimal)
	for _, p := range payments {
		if !r.Contains(p.PaymentDate) {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", p.PaymentDate.Year(), int(p.PaymentDate.Month()))
		buckets[key] = buckets[key].Add(p.Amount)
	}
	out := make([]MonthlyTotal, 0, len(buckets))
	for key, total := range buckets {
		out = append(out, MonthlyTotal{Month: key, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// OverdueFilter filtros opcionales del listado de facturas vencidas.
// El rango aplica sobre la fecha de creación de la factura, no sobre la de
// vencimiento.
type OverdueFilter struct {
	CustomerID string
	Range      DateRange
}

// OverdueInvoice fila del listado de facturas vencidas.
type OverdueInvoice struct {
	InvoiceNumber string
	CustomerName  string
	Amount        decimal.Decimal
	AmountPaid    decimal.Decimal
	Balance       decimal.Decimal
	DueDate       string // "YYYY-MM-DD"
	DaysOverdue   int    // siempre >= 1 para las filas incluidas
	Status        string
}

// OverdueInvoices lista las facturas con fecha de vencimiento anterior a hoy
// cuyo estado derivado no sea PAID, aplicando los filtros opcionales. El
// resultado va en orden ascendente por id de factura para que el listado sea
// reproducible.
func OverdueInvoices(invoices []*entity.Invoice, paymentsByInvoice map[string][]*entity.Payment, customersByID map[string]*entity.Customer, filter OverdueFilter, today time.Time) []OverdueInvoice {
	sorted := make([]*entity.Invoice, len(invoices))
	copy(sorted, invoices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var out []OverdueInvoice
	for _, inv := range sorted {
		payments := paymentsByInvoice[inv.ID]
		status := DeriveStatus(inv.Amount, inv.DueDate, payments, today)
		if !DateOnly(inv.DueDate).Before(DateOnly(today)) || status == StatusPaid {
			continue
		}
		if filter.CustomerID != "" && inv.CustomerID != filter.CustomerID {
			continue
		}
		if !filter.Range.Contains(inv.CreatedAt) {
			continue
		}
		paid := TotalPaid(payments)
		name := ""
		if c, ok := customersByID[inv.CustomerID]; ok {
			name = c.Name
		}
		out = append(out, OverdueInvoice{
			InvoiceNumber: InvoiceNumber(inv.ID),
			CustomerName:  name,
			Amount:        inv.Amount,
			AmountPaid:    paid,
			Balance:       inv.Amount.Sub(paid),
			DueDate:       DateOnly(inv.DueDate).Format(time.DateOnly),
			DaysOverdue:   DaysBetween(inv.DueDate, today),
			Status:        string(status),
		})
	}
	return out
}

// InvoiceNumber deriva el número de factura visible desde el id: prefijo
// "FAC-" más los primeros 8 caracteres hex del uuid, en mayúsculas. Es
// determinista: el mismo id siempre produce el mismo número.
func InvoiceNumber(id string) string {
	hex := strings.ReplaceAll(id, "-", "")
	if len(hex) > 8 {
		hex = hex[:8]
	}
	return "FAC-" + strings.ToUpper(hex)
}
