package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// Códigos de razón para violaciones de reglas de negocio. Van en el cuerpo de
// la respuesta HTTP para que los clientes puedan distinguirlas por máquina.
const (
	ReasonInvalidInvoice       = "INVALID_INVOICE"
	ReasonInvalidCustomer      = "INVALID_CUSTOMER"
	ReasonInvalidAmount        = "INVALID_AMOUNT"
	ReasonMissingPaymentDate   = "MISSING_PAYMENT_DATE"
	ReasonFuturePaymentDate    = "FUTURE_PAYMENT_DATE"
	ReasonMissingTransaction   = "MISSING_TRANSACTION_NUMBER"
	ReasonDuplicateTransaction = "DUPLICATE_TRANSACTION_NUMBER"
	ReasonOverpayment          = "OVERPAYMENT"
	ReasonDueDateNotFuture     = "DUE_DATE_NOT_FUTURE"
)

// RuleError violación de una regla de negocio, con código verificable por
// máquina. Envuelve domain.ErrValidation para errors.Is.
type RuleError struct {
	Reason  string
	Message string
}

func (e *RuleError) Error() string { return e.Message }
func (e *RuleError) Unwrap() error { return domain.ErrValidation }

// PaymentCandidate datos de un pago que se quiere admitir (aún sin persistir).
// El cero de decimal.Decimal y de time.Time representan "sin valor".
type PaymentCandidate struct {
	Amount            decimal.Decimal
	PaymentDate       time.Time
	TransactionNumber string
}

// ValidatePayment decide si un pago candidato es admisible contra la factura
// y su historial actual de pagos. Evalúa las reglas en orden fijo y corta en
// la primera violación; el orden determina qué error se reporta.
//
// Función de decisión pura, sin efectos secundarios: el caller persiste el
// pago solo si el resultado es nil, y es responsable de que la lectura de
// existing, la consulta de txNumberTaken y la escritura ocurran dentro de la
// misma frontera transaccional (ver application/billing.PaymentUseCase).
//
// txNumberTaken indica si el número de transacción del candidato ya existe
// entre todos los pagos del sistema; lo aporta el repositorio.
func ValidatePayment(candidate PaymentCandidate, invoice *entity.Invoice, existing []*entity.Payment, txNumberTaken bool, today time.Time) error {
	if invoice == nil {
		return &RuleError{Reason: ReasonInvalidInvoice, Message: "la factura referenciada no existe"}
	}
	if !candidate.Amount.GreaterThan(decimal.Zero) {
		return &RuleError{Reason: ReasonInvalidAmount, Message: "el monto del pago debe ser positivo"}
	}
	if candidate.PaymentDate.IsZero() {
		return &RuleError{Reason: ReasonMissingPaymentDate, Message: "la fecha de pago es requerida"}
	}
	if DateOnly(candidate.PaymentDate).After(DateOnly(today)) {
		return &RuleError{Reason: ReasonFuturePaymentDate, Message: "la fecha de pago no puede ser futura"}
	}
	if strings.TrimSpace(candidate.TransactionNumber) == "" {
		return &RuleError{Reason: ReasonMissingTransaction, Message: "el número de transacción es requerido"}
	}
	if txNumberTaken {
		return &RuleError{Reason: ReasonDuplicateTransaction, Message: "el número de transacción ya existe"}
	}
	// Comparación decimal exacta: el pago que completa el monto justo se acepta.
	if TotalPaid(existing).Add(candidate.Amount).GreaterThan(invoice.Amount) {
		return &RuleError{Reason: ReasonOverpayment, Message: "el pago más los pagos previos excede el monto de la factura"}
	}
	return nil
}

// ValidateNewInvoice reglas de creación de una factura.
//
// La fecha de vencimiento debe ser estrictamente posterior a mañana: se
// rechaza cuando dueDate < today+2 días, es decir "mañana" se rechaza y
// "pasado mañana" se acepta.
func ValidateNewInvoice(customerExists bool, amount decimal.Decimal, dueDate time.Time, today time.Time) error {
	if !customerExists {
		return &RuleError{Reason: ReasonInvalidCustomer, Message: "la factura requiere un cliente existente"}
	}
	if !amount.GreaterThan(decimal.Zero) {
		return &RuleError{Reason: ReasonInvalidAmount, Message: "el monto de la factura debe ser positivo"}
	}
	if dueDate.IsZero() || DateOnly(dueDate).Before(DateOnly(today).AddDate(0, 0, 2)) {
		return &RuleError{Reason: ReasonDueDateNotFuture, Message: "la fecha de vencimiento debe ser al menos dos días en el futuro"}
	}
	return nil
}
