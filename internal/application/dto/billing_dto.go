package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id.
type UpdateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// DueDate en formato "YYYY-MM-DD".
type CreateInvoiceRequest struct {
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    string          `json:"due_date"`
}

// InvoiceResponse factura con su estado derivado y saldo.
// Status se calcula en cada lectura; nunca viene de la base de datos.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    string          `json:"due_date"`
	Status     string          `json:"status"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CreatePaymentRequest body para POST /api/payments.
// PaymentDate en formato "YYYY-MM-DD".
type CreatePaymentRequest struct {
	InvoiceID         string          `json:"invoice_id"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentDate       string          `json:"payment_date"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	TransactionNumber string          `json:"transaction_number"`
}

// PaymentResponse pago en respuestas.
type PaymentResponse struct {
	ID                string          `json:"id"`
	InvoiceID         string          `json:"invoice_id"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentDate       string          `json:"payment_date"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	TransactionNumber string          `json:"transaction_number"`
	CreatedAt         time.Time       `json:"created_at"`
}

// OverdueInvoiceResponse fila de GET /api/invoices/overdue.
type OverdueInvoiceResponse struct {
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	Amount        decimal.Decimal `json:"amount"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Balance       decimal.Decimal `json:"balance"`
	DueDate       string          `json:"due_date"`
	DaysOverdue   int             `json:"days_overdue"`
	Status        string          `json:"status"`
}
