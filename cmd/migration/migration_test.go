package migration

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRunReportsFailure(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	db.Close()

	applied, err := Run(db)

	assert.Error(t, err, "a failing migration run must surface as an error, not exit the process")
	assert.Zero(t, applied)
}
