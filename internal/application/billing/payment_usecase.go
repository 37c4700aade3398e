package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/ledger"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// PaymentUseCase registra y consulta pagos.
//
// Record corre dentro de una transacción con la fila de la factura bloqueada
// (GetByIDForUpdate): leer los pagos actuales, validar y escribir ocurre de
// forma atómica por factura. Sin ese lock, dos pagos concurrentes podrían
// pasar la validación contra el mismo total y sobrepagar la factura.
type PaymentUseCase struct {
	txRunner    TxRunner
	paymentRepo repository.PaymentRepository
	now         Clock
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(txRunner TxRunner, paymentRepo repository.PaymentRepository, now Clock) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, paymentRepo: paymentRepo, now: now}
}

// Record admite y persiste un pago contra una factura. Delega la decisión en
// domain/ledger.ValidatePayment; si alguna regla falla no se persiste nada.
func (uc *PaymentUseCase) Record(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	paymentDate, err := parseDate(in.PaymentDate)
	if err != nil {
		return nil, err
	}
	today := uc.now()

	var stored *entity.Payment
	err = uc.txRunner.RunPayment(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		invoice, err := invoiceRepo.GetByIDForUpdate(in.InvoiceID)
		if err != nil {
			return err
		}
		var existing []*entity.Payment
		var txTaken bool
		if invoice != nil {
			if existing, err = paymentRepo.ListByInvoice(invoice.ID); err != nil {
				return err
			}
			if in.TransactionNumber != "" {
				if txTaken, err = paymentRepo.ExistsByTransactionNumber(in.TransactionNumber); err != nil {
					return err
				}
			}
		}
		candidate := ledger.PaymentCandidate{
			Amount:            in.Amount,
			PaymentDate:       paymentDate,
			TransactionNumber: in.TransactionNumber,
		}
		if err := ledger.ValidatePayment(candidate, invoice, existing, txTaken, today); err != nil {
			return err
		}
		payment := &entity.Payment{
			ID:                uuid.New().String(),
			InvoiceID:         invoice.ID,
			Amount:            in.Amount,
			PaymentDate:       ledger.DateOnly(paymentDate),
			PaymentMethod:     in.PaymentMethod,
			TransactionNumber: in.TransactionNumber,
			CreatedAt:         today,
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		stored = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(stored), nil
}

// GetByID obtiene un pago por id.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentResponse(payment), nil
}

// List lista todos los pagos.
func (uc *PaymentUseCase) List() ([]*dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		Amount:            p.Amount,
		PaymentDate:       ledger.DateOnly(p.PaymentDate).Format("2006-01-02"),
		PaymentMethod:     p.PaymentMethod,
		TransactionNumber: p.TransactionNumber,
		CreatedAt:         p.CreatedAt,
	}
}
