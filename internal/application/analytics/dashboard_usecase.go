// Package analytics contiene los casos de uso del Dashboard Financiero:
// resumen de totales, top de clientes y revenue mensual.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/ledger"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// DashboardUseCase genera los reportes del dashboard sobre snapshots
// completos de clientes, facturas y pagos.
//
// Las reducciones viven en domain/ledger y son puras; aquí solo se cargan
// los snapshots (en paralelo) y se mapean los resultados a DTOs. Los
// reportes no exigen más que consistencia eventual frente a escrituras
// concurrentes de pagos.
type DashboardUseCase struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(customerRepo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) *DashboardUseCase {
	return &DashboardUseCase{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
	}
}

// Summary resumen de la ventana [startDate, endDate] (extremos opcionales,
// formato "YYYY-MM-DD").
func (uc *DashboardUseCase) Summary(ctx context.Context, startDate, endDate string) (*dto.DashboardSummaryDTO, error) {
	dateRange, err := billing.ParseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	snap, err := uc.loadSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	s := ledger.BuildSummary(snap.customers, snap.invoices, snap.payments, dateRange)
	return &dto.DashboardSummaryDTO{
		TotalCustomers:      s.TotalCustomers,
		TotalInvoices:       s.TotalInvoices,
		TotalAmountInvoiced: s.TotalAmountInvoiced,
		TotalAmountPaid:     s.TotalAmountPaid,
		OutstandingBalance:  s.OutstandingBalance,
	}, nil
}

// TopCustomers los 5 clientes con más pagos dentro de la ventana.
func (uc *DashboardUseCase) TopCustomers(ctx context.Context, startDate, endDate string) ([]*dto.TopCustomerDTO, error) {
	dateRange, err := billing.ParseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	snap, err := uc.loadSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	invoicesByID := make(map[string]*entity.Invoice, len(snap.invoices))
	for _, inv := range snap.invoices {
		invoicesByID[inv.ID] = inv
	}
	customersByID := make(map[string]*entity.Customer, len(snap.customers))
	for _, c := range snap.customers {
		customersByID[c.ID] = c
	}
	ranking := ledger.TopCustomers(snap.payments, invoicesByID, customersByID, dateRange)
	out := make([]*dto.TopCustomerDTO, 0, len(ranking))
	for _, r := range ranking {
		out = append(out, &dto.TopCustomerDTO{CustomerName: r.CustomerName, TotalPaid: r.TotalPaid})
	}
	return out, nil
}

// MonthlyRevenue totales de pagos por mes calendario dentro de la ventana,
// ascendente por clave "YYYY-MM".
func (uc *DashboardUseCase) MonthlyRevenue(ctx context.Context, startDate, endDate string) ([]*dto.MonthlyRevenueDTO, error) {
	dateRange, err := billing.ParseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("dashboard: pagos: %w", err)
	}
	buckets := ledger.MonthlyRevenue(payments, dateRange)
	out := make([]*dto.MonthlyRevenueDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, &dto.MonthlyRevenueDTO{Month: b.Month, Total: b.Total})
	}
	return out, nil
}

type snapshots struct {
	customers []*entity.Customer
	invoices  []*entity.Invoice
	payments  []*entity.Payment
}

// loadSnapshots carga los tres snapshots en paralelo (tres goroutines, una
// por repositorio).
func (uc *DashboardUseCase) loadSnapshots(ctx context.Context) (*snapshots, error) {
	type customersResult struct {
		list []*entity.Customer
		err  error
	}
	type invoicesResult struct {
		list []*entity.Invoice
		err  error
	}
	type paymentsResult struct {
		list []*entity.Payment
		err  error
	}

	customersCh := make(chan customersResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	paymentsCh := make(chan paymentsResult, 1)

	go func() {
		list, err := uc.customerRepo.ListAll()
		customersCh <- customersResult{list, err}
	}()
	go func() {
		list, err := uc.invoiceRepo.ListAll()
		invoicesCh <- invoicesResult{list, err}
	}()
	go func() {
		list, err := uc.paymentRepo.ListAll()
		paymentsCh <- paymentsResult{list, err}
	}()

	customers := <-customersCh
	invoices := <-invoicesCh
	payments := <-paymentsCh

	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", customers.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", invoices.err)
	}
	if payments.err != nil {
		return nil, fmt.Errorf("dashboard: pagos: %w", payments.err)
	}
	return &snapshots{customers: customers.list, invoices: invoices.list, payments: payments.list}, nil
}
