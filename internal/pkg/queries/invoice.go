package queries

const (
	// GetInvoiceSalesView flattens the invoice/appointment/patient/dentist/
	// service join into one row per line item. Joins are LEFT so a missing
	// relation surfaces as NULL and the usecase substitutes a fallback label.
	GetInvoiceSalesView = `
		SELECT
			i.id,
			pu.first_name, pu.last_name,
			du.first_name, du.last_name,
			sv.name,
			ii.price,
			ii.quantity,
			i.issued_at::text,
			i.total
		FROM invoices i
		JOIN invoice_items ii ON ii.invoice_id = i.id
		LEFT JOIN appointments a ON a.id = i.appointment_id
		LEFT JOIN patients p ON p.id = a.patient_id
		LEFT JOIN users pu ON pu.id = p.user_id
		LEFT JOIN staff d ON d.id = i.dentist_id
		LEFT JOIN users du ON du.id = d.user_id
		LEFT JOIN services sv ON sv.id = ii.service_id
		ORDER BY i.issued_at DESC, i.id
		LIMIT $1 OFFSET $2
	`
)
