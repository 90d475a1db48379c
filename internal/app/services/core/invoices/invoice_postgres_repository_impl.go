package invoices

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/queries"

	"go.uber.org/zap"
)

const (
	unknownPatientLabel = "Unknown Patient"
	unknownDentistLabel = "Unknown Dentist"
	unknownServiceLabel = "Unknown Service"
)

type invoicePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	invoicePostgresRepositoryInstance contracts.InvoiceRepository
	onceInvoicePostgresRepository     sync.Once
)

func NewInvoicePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.InvoiceRepository {
	onceInvoicePostgresRepository.Do(func() {
		invoicePostgresRepositoryInstance = &invoicePostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return invoicePostgresRepositoryInstance
}

// FindInvoiceSalesView returns the flattened sales rows. Missing relations
// from the LEFT joins render as fixed fallback labels so the report never
// shows empty cells.
func (r *invoicePostgresRepository) FindInvoiceSalesView(ctx context.Context, limit, offset int) ([]responses.Invoice, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetInvoiceSalesView, limit, offset)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	invoices := make([]responses.Invoice, 0)
	for rows.Next() {
		var invoice responses.Invoice
		var patientFirst, patientLast, dentistFirst, dentistLast, serviceName sql.NullString
		err := rows.Scan(
			&invoice.ID,
			&patientFirst, &patientLast,
			&dentistFirst, &dentistLast,
			&serviceName,
			&invoice.Price,
			&invoice.Quantity,
			&invoice.Date,
			&invoice.Total,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		invoice.PatientName = buildPersonName(patientFirst, patientLast, unknownPatientLabel)
		invoice.DentistName = buildPersonName(dentistFirst, dentistLast, unknownDentistLabel)
		invoice.ServiceName = serviceName.String
		if invoice.ServiceName == "" {
			invoice.ServiceName = unknownServiceLabel
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return invoices, nil
}

func buildPersonName(first, last sql.NullString, fallback string) string {
	name := strings.TrimSpace(first.String + " " + last.String)
	if name == "" {
		return fallback
	}
	return name
}
