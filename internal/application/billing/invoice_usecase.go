package billing

import (
	"github.com/google/uuid"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/ledger"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso para facturas: creación, lectura con estado
// derivado, eliminación y listado de vencidas.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	paymentRepo  repository.PaymentRepository
	now          Clock
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository, paymentRepo repository.PaymentRepository, now Clock) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		now:          now,
	}
}

// Create crea una factura. El cliente debe existir, el monto ser positivo y
// la fecha de vencimiento al menos dos días en el futuro (las reglas viven en
// domain/ledger.ValidateNewInvoice).
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	dueDate, err := parseDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	today := uc.now()
	if err := ledger.ValidateNewInvoice(customer != nil, in.Amount, dueDate, today); err != nil {
		return nil, err
	}
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		DueDate:    ledger.DateOnly(dueDate),
		CreatedAt:  today,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return uc.toInvoiceResponse(invoice, nil), nil
}

// GetByID obtiene una factura con su estado derivado, total pagado y saldo.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.paymentRepo.ListByInvoice(id)
	if err != nil {
		return nil, err
	}
	return uc.toInvoiceResponse(invoice, payments), nil
}

// List lista todas las facturas con sus estados derivados. Los pagos se leen
// una sola vez y se agrupan en memoria.
func (uc *InvoiceUseCase) List() ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListAll()
	if err != nil {
		return nil, err
	}
	byInvoice := groupPaymentsByInvoice(payments)
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, uc.toInvoiceResponse(inv, byInvoice[inv.ID]))
	}
	return out, nil
}

// Delete elimina una factura. Solo es posible mientras su conjunto de pagos
// esté vacío; con pagos devuelve domain.ErrHasPayments.
func (uc *InvoiceUseCase) Delete(id string) error {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	payments, err := uc.paymentRepo.ListByInvoice(id)
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return domain.ErrHasPayments
	}
	return uc.invoiceRepo.Delete(id)
}

// Overdue lista las facturas vencidas no pagadas, con filtros opcionales por
// cliente y por rango de fecha de creación.
func (uc *InvoiceUseCase) Overdue(customerID, startDate, endDate string) ([]*dto.OverdueInvoiceResponse, error) {
	dateRange, err := ParseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListAll()
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.ListAll()
	if err != nil {
		return nil, err
	}
	customersByID := make(map[string]*entity.Customer, len(customers))
	for _, c := range customers {
		customersByID[c.ID] = c
	}
	filter := ledger.OverdueFilter{CustomerID: customerID, Range: dateRange}
	rows := ledger.OverdueInvoices(invoices, groupPaymentsByInvoice(payments), customersByID, filter, uc.now())
	out := make([]*dto.OverdueInvoiceResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &dto.OverdueInvoiceResponse{
			InvoiceNumber: row.InvoiceNumber,
			CustomerName:  row.CustomerName,
			Amount:        row.Amount,
			AmountPaid:    row.AmountPaid,
			Balance:       row.Balance,
			DueDate:       row.DueDate,
			DaysOverdue:   row.DaysOverdue,
			Status:        row.Status,
		})
	}
	return out, nil
}

func (uc *InvoiceUseCase) toInvoiceResponse(inv *entity.Invoice, payments []*entity.Payment) *dto.InvoiceResponse {
	paid := ledger.TotalPaid(payments)
	status := ledger.DeriveStatus(inv.Amount, inv.DueDate, payments, uc.now())
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		Number:     ledger.InvoiceNumber(inv.ID),
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		DueDate:    ledger.DateOnly(inv.DueDate).Format("2006-01-02"),
		Status:     string(status),
		AmountPaid: paid,
		Balance:    inv.Amount.Sub(paid),
		CreatedAt:  inv.CreatedAt,
	}
}

func groupPaymentsByInvoice(payments []*entity.Payment) map[string][]*entity.Payment {
	byInvoice := make(map[string][]*entity.Payment)
	for _, p := range payments {
		byInvoice[p.InvoiceID] = append(byInvoice[p.InvoiceID], p)
	}
	return byInvoice
}

// ParseRange interpreta los extremos opcionales de una ventana de fechas.
func ParseRange(startDate, endDate string) (ledger.DateRange, error) {
	var r ledger.DateRange
	if startDate != "" {
		start, err := parseDate(startDate)
		if err != nil {
			return r, err
		}
		r.Start = &start
	}
	if endDate != "" {
		end, err := parseDate(endDate)
		if err != nil {
			return r, err
		}
		r.End = &end
	}
	return r, nil
}
