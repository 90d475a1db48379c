package queries

const (
	UpsertToothCondition = `
		INSERT INTO tooth_conditions (patient_id, tooth_number, condition, notes, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (patient_id, tooth_number)
		DO UPDATE SET condition = EXCLUDED.condition, notes = EXCLUDED.notes, recorded_by = EXCLUDED.recorded_by, updated_at = NOW()
		RETURNING id
	`

	GetToothConditionsByPatientID = `
		SELECT id, patient_id, tooth_number, condition, COALESCE(notes, ''), recorded_by, created_at, updated_at
		FROM tooth_conditions
		WHERE patient_id = $1
		ORDER BY tooth_number
	`
)
