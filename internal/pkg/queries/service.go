package queries

const (
	GetAllActiveServices = `
		SELECT id, name, price, unit, type, status
		FROM services
		WHERE status = 'active' AND deleted_at IS NULL
		ORDER BY name
	`

	GetServiceByID = `
		SELECT id, name, price, unit, type, status
		FROM services
		WHERE id = $1 AND deleted_at IS NULL
	`
)
