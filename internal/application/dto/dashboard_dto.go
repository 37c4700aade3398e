package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Todos los totales respetan la ventana [start_date, end_date] si se envía.
type DashboardSummaryDTO struct {
	TotalCustomers      int             `json:"total_customers"`
	TotalInvoices       int             `json:"total_invoices"`
	TotalAmountInvoiced decimal.Decimal `json:"total_amount_invoiced"`
	TotalAmountPaid     decimal.Decimal `json:"total_amount_paid"`
	// OutstandingBalance = TotalAmountInvoiced - TotalAmountPaid sobre los
	// conjuntos filtrados (no es la suma de saldos por factura).
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// TopCustomerDTO fila de GET /api/dashboard/top-customers.
type TopCustomerDTO struct {
	CustomerName string          `json:"customer_name"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
}

// MonthlyRevenueDTO fila de GET /api/dashboard/monthly-revenue.
type MonthlyRevenueDTO struct {
	Month string          `json:"month"` // "YYYY-MM"
	Total decimal.Decimal `json:"total"`
}
