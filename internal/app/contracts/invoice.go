package contracts

import (
	"context"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type InvoiceUsecase interface {
	FindAllSales(ctx context.Context, sessionData string, pagination *requests.Pagination) ([]responses.Invoice, error)
}

type InvoiceRepository interface {
	FindInvoiceSalesView(ctx context.Context, limit, offset int) ([]responses.Invoice, error)
}
