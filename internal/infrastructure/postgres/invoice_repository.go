package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.DueDate, invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, due_date, created_at
		FROM invoices WHERE id = $1`
	return scanInvoice(r.q.QueryRow(context.Background(), query, id), "get invoice")
}

// GetByIDForUpdate obtiene la factura bloqueando la fila hasta el fin de la
// transacción. Es el punto que serializa los pagos concurrentes por factura:
// leer pagos actuales, validar y escribir ocurre bajo este lock.
func (r *InvoiceRepo) GetByIDForUpdate(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, due_date, created_at
		FROM invoices WHERE id = $1 FOR UPDATE`
	return scanInvoice(r.q.QueryRow(context.Background(), query, id), "get invoice for update")
}

// ListAll devuelve todas las facturas, ascendente por id.
func (r *InvoiceRepo) ListAll() ([]*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, due_date, created_at
		FROM invoices ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.DueDate, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Delete elimina una factura por ID. El use case verifica antes que no tenga
// pagos; aquí no se re-chequea.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row, op string) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.DueDate, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}
