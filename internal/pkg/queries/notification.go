package queries

const (
	InsertNotification = `
		INSERT INTO notifications (user_id, type, payload)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	GetNotificationsByUserID = `
		SELECT id, user_id, type, payload, is_read, created_at, updated_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	// The user_id predicate keeps one user from acknowledging another
	// user's notification.
	MarkNotificationRead = `
		UPDATE notifications
		SET is_read = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	GetStaffUserIDs = `
		SELECT u.id
		FROM users u
		JOIN staff s ON s.user_id = u.id
		WHERE u.deleted_at IS NULL AND s.deleted_at IS NULL
	`
)
