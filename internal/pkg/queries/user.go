package queries

const (
	InsertUser = `
		INSERT INTO users (email, password, first_name, last_name, contact_number, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	GetUserByEmail = `
		SELECT id, email, password, first_name, last_name, contact_number, role, COALESCE(profile_picture_url, ''), created_at, updated_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`

	GetUserByID = `
		SELECT id, email, password, first_name, last_name, contact_number, role, COALESCE(profile_picture_url, ''), created_at, updated_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`

	UpdateUserProfile = `
		UPDATE users
		SET first_name = $1, last_name = $2, contact_number = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
	`

	UpdateUserProfilePicture = `
		UPDATE users
		SET profile_picture_url = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
	`
)
