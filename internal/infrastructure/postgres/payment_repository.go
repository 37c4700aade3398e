package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
// Los pagos son inmutables: solo INSERT y SELECT.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, invoice_id, amount, payment_date, payment_method, transaction_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceID, payment.Amount, payment.PaymentDate,
		payment.PaymentMethod, payment.TransactionNumber, payment.CreatedAt,
	)
	if err != nil {
		// El índice único de transaction_number respalda en DB lo que el
		// validador ya chequeó dentro de la transacción.
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `
		SELECT id, invoice_id, amount, payment_date, payment_method, transaction_number, created_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.InvoiceID, &p.Amount, &p.PaymentDate, &p.PaymentMethod, &p.TransactionNumber, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByInvoice lista los pagos de una factura.
func (r *PaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, invoice_id, amount, payment_date, payment_method, transaction_number, created_at
		FROM payments WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payments by invoice: %w", err)
	}
	return scanPayments(rows)
}

// ListAll devuelve todos los pagos (snapshot para reportes).
func (r *PaymentRepo) ListAll() ([]*entity.Payment, error) {
	query := `
		SELECT id, invoice_id, amount, payment_date, payment_method, transaction_number, created_at
		FROM payments ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all payments: %w", err)
	}
	return scanPayments(rows)
}

// ExistsByTransactionNumber verifica unicidad global del número de transacción.
func (r *PaymentRepo) ExistsByTransactionNumber(trxNumber string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM payments WHERE transaction_number = $1)`, trxNumber,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists transaction number: %w", err)
	}
	return exists, nil
}

func scanPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Amount, &p.PaymentDate, &p.PaymentMethod, &p.TransactionNumber, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
