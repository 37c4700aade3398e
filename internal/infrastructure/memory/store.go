// Package memory implementa los repositorios en memoria: desarrollo local y
// tests sin PostgreSQL. Un Store comparte el mutex entre todos los
// repositorios, así el TxRunner serializa leer-validar-escribir igual que el
// lock de fila de la implementación PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// Store contenedor de los datos en memoria.
type Store struct {
	mu        sync.Mutex
	customers map[string]*entity.Customer
	invoices  map[string]*entity.Invoice
	payments  map[string]*entity.Payment
	users     map[string]*entity.User
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		customers: make(map[string]*entity.Customer),
		invoices:  make(map[string]*entity.Invoice),
		payments:  make(map[string]*entity.Payment),
		users:     make(map[string]*entity.User),
	}
}

// Customers devuelve el repositorio de clientes.
func (s *Store) Customers() repository.CustomerRepository { return &customerRepo{s} }

// Invoices devuelve el repositorio de facturas.
func (s *Store) Invoices() repository.InvoiceRepository { return &invoiceRepo{s} }

// Payments devuelve el repositorio de pagos.
func (s *Store) Payments() repository.PaymentRepository { return &paymentRepo{s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// ── TxRunner ──────────────────────────────────────────────────────────────────

var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner serializa los registros de pago con el mutex del Store: equivale
// al SELECT ... FOR UPDATE de la implementación PostgreSQL en un solo nodo.
// No hay rollback: fn debe validar todo antes de escribir, que es exactamente
// el contrato del caso de uso de pagos.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// RunPayment ejecuta fn con el lock del store tomado.
func (r *TxRunner) RunPayment(_ context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(&invoiceRepo{store: r.store, locked: true}, &paymentRepo{store: r.store, locked: true})
}

// lock toma el mutex salvo que el caller ya lo tenga (dentro de RunPayment).
func lock(s *Store, held bool) func() {
	if held {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// ── Customers ─────────────────────────────────────────────────────────────────

type customerRepo struct {
	store *Store
}

func (r *customerRepo) Create(customer *entity.Customer) error {
	defer lock(r.store, false)()
	for _, c := range r.store.customers {
		if c.Email == customer.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *customer
	r.store.customers[customer.ID] = &cp
	return nil
}

func (r *customerRepo) GetByID(id string) (*entity.Customer, error) {
	defer lock(r.store, false)()
	if c, ok := r.store.customers[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *customerRepo) GetByEmail(email string) (*entity.Customer, error) {
	defer lock(r.store, false)()
	for _, c := range r.store.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *customerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	all, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *customerRepo) ListAll() ([]*entity.Customer, error) {
	defer lock(r.store, false)()
	out := make([]*entity.Customer, 0, len(r.store.customers))
	for _, c := range r.store.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *customerRepo) Update(customer *entity.Customer) error {
	defer lock(r.store, false)()
	if _, ok := r.store.customers[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, c := range r.store.customers {
		if c.ID != customer.ID && c.Email == customer.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *customer
	r.store.customers[customer.ID] = &cp
	return nil
}

func (r *customerRepo) Delete(id string) error {
	defer lock(r.store, false)()
	delete(r.store.customers, id)
	// Cascada: facturas del cliente y pagos de esas facturas.
	for invID, inv := range r.store.invoices {
		if inv.CustomerID != id {
			continue
		}
		delete(r.store.invoices, invID)
		for payID, p := range r.store.payments {
			if p.InvoiceID == invID {
				delete(r.store.payments, payID)
			}
		}
	}
	return nil
}

// ── Invoices ──────────────────────────────────────────────────────────────────

type invoiceRepo struct {
	store  *Store
	locked bool
}

func (r *invoiceRepo) Create(invoice *entity.Invoice) error {
	defer lock(r.store, r.locked)()
	cp := *invoice
	r.store.invoices[invoice.ID] = &cp
	return nil
}

func (r *invoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	defer lock(r.store, r.locked)()
	if inv, ok := r.store.invoices[id]; ok {
		cp := *inv
		return &cp, nil
	}
	return nil, nil
}

// GetByIDForUpdate en memoria equivale a GetByID: el lock por factura lo da
// el mutex del TxRunner.
func (r *invoiceRepo) GetByIDForUpdate(id string) (*entity.Invoice, error) {
	return r.GetByID(id)
}

func (r *invoiceRepo) ListAll() ([]*entity.Invoice, error) {
	defer lock(r.store, r.locked)()
	out := make([]*entity.Invoice, 0, len(r.store.invoices))
	for _, inv := range r.store.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *invoiceRepo) Delete(id string) error {
	defer lock(r.store, r.locked)()
	delete(r.store.invoices, id)
	return nil
}

// ── Payments ──────────────────────────────────────────────────────────────────

type paymentRepo struct {
	store  *Store
	locked bool
}

func (r *paymentRepo) Create(payment *entity.Payment) error {
	defer lock(r.store, r.locked)()
	for _, p := range r.store.payments {
		if p.TransactionNumber == payment.TransactionNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *payment
	r.store.payments[payment.ID] = &cp
	return nil
}

func (r *paymentRepo) GetByID(id string) (*entity.Payment, error) {
	defer lock(r.store, r.locked)()
	if p, ok := r.store.payments[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *paymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	defer lock(r.store, r.locked)()
	var out []*entity.Payment
	for _, p := range r.store.payments {
		if p.InvoiceID == invoiceID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *paymentRepo) ListAll() ([]*entity.Payment, error) {
	defer lock(r.store, r.locked)()
	out := make([]*entity.Payment, 0, len(r.store.payments))
	for _, p := range r.store.payments {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *paymentRepo) ExistsByTransactionNumber(trxNumber string) (bool, error) {
	defer lock(r.store, r.locked)()
	for _, p := range r.store.payments {
		if p.TransactionNumber == trxNumber {
			return true, nil
		}
	}
	return false, nil
}

// ── Users ─────────────────────────────────────────────────────────────────────

type userRepo struct {
	store *Store
}

func (r *userRepo) Create(user *entity.User) error {
	defer lock(r.store, false)()
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.store.users[user.ID] = &cp
	return nil
}

func (r *userRepo) FindByEmail(email string) (*entity.User, error) {
	defer lock(r.store, false)()
	for _, u := range r.store.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
