package queries

const (
	InsertPatient = `
		INSERT INTO patients (user_id, birth_date, address)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id
	`

	GetPatientByUserID = `
		SELECT id, user_id, COALESCE(birth_date::text, ''), COALESCE(address, ''), created_at, updated_at
		FROM patients
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	GetPatientByID = `
		SELECT id, user_id, COALESCE(birth_date::text, ''), COALESCE(address, ''), created_at, updated_at
		FROM patients
		WHERE id = $1 AND deleted_at IS NULL
	`

	UpdatePatientProfile = `
		UPDATE patients
		SET birth_date = NULLIF($1, '')::date, address = $2, updated_at = NOW()
		WHERE user_id = $3 AND deleted_at IS NULL
	`
)
