package queries

const (
	InsertStaff = `
		INSERT INTO staff (user_id, position)
		VALUES ($1, $2)
		RETURNING id
	`

	GetStaffByUserID = `
		SELECT id, user_id, position, created_at, updated_at
		FROM staff
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	GetAllStaff = `
		SELECT s.id, s.user_id, u.first_name, u.last_name, u.email, u.contact_number, u.role, s.position
		FROM staff s
		JOIN users u ON u.id = s.user_id
		WHERE s.deleted_at IS NULL AND u.deleted_at IS NULL
		ORDER BY u.first_name, u.last_name
	`
)
