package utils

import (
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// ParseSessionData decodes the session JSON stored in Redis into a Session model.
func ParseSessionData(sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseSessionData(err)
	}
	return session, nil
}
