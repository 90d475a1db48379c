package invoices

import (
	"context"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type invoiceUsecase struct {
	InvoiceRepository contracts.InvoiceRepository
	Log               *zap.Logger
}

var (
	invoiceUsecaseInstance contracts.InvoiceUsecase
	onceInvoiceUsecase     sync.Once
)

func NewInvoiceUsecase(invoiceRepository contracts.InvoiceRepository, logger *zap.Logger) contracts.InvoiceUsecase {
	onceInvoiceUsecase.Do(func() {
		invoiceUsecaseInstance = &invoiceUsecase{
			InvoiceRepository: invoiceRepository,
			Log:               logger,
		}
	})
	return invoiceUsecaseInstance
}

// FindAllSales serves the staff sales report, a flat view over invoices and
// their line items.
func (uc *invoiceUsecase) FindAllSales(ctx context.Context, sessionData string, pagination *requests.Pagination) ([]responses.Invoice, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("invoiceUsecase.FindAllSales called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsStaffRole() {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	invoices, err := uc.InvoiceRepository.FindInvoiceSalesView(ctx, pagination.PageSize, offset)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("invoiceUsecase.FindAllSales succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("invoice_row_count", len(invoices)),
	)
	return invoices, nil
}
