package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	data map[string]string
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", exceptions.ErrRedisGetNoData(fmt.Errorf("no data"), key)
	}
	return value, nil
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(payload)
	return nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, ok := f.data[key]; ok {
		return false, nil
	}
	return true, f.Set(ctx, key, value, exp)
}

func newTestMiddlewares(redisRepo *fakeRedisRepository) *Middlewares {
	return NewMiddlewares(redisRepo, &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}, zap.NewNop())
}

func TestAuthenticate(t *testing.T) {
	redisRepo := &fakeRedisRepository{data: map[string]string{}}
	middlewares := newTestMiddlewares(redisRepo)

	session := &models.Session{
		SessionID: "session-abc",
		UserID:    "user-1",
		PatientID: "patient-1",
		Role:      constvars.ClinicRolePatient,
	}
	err := redisRepo.Set(context.Background(), constvars.RedisSessionKeyPrefix+session.SessionID, session, time.Hour)
	assert.NoError(t, err)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		assert.True(t, ok, "session data should be set in context")
		assert.NotEmpty(t, sessionData)

		sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
		assert.True(t, ok, "session id should be set in context")
		assert.Equal(t, "session-abc", sessionID)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := utils.GenerateJWT(session.SessionID, "test-secret", time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Revoked Session", func(t *testing.T) {
		token, err := utils.GenerateJWT("session-gone", "test-secret", time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/users/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "deleted session should revoke the token")
	})
}

func TestRequireStaff(t *testing.T) {
	middlewares := newTestMiddlewares(&fakeRedisRepository{data: map[string]string{}})

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	buildRequest := func(session *models.Session) *http.Request {
		req := httptest.NewRequest("GET", "/api/v1/invoices", nil)
		payload, _ := json.Marshal(session)
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, string(payload))
		return req.WithContext(ctx)
	}

	t.Run("Staff Session", func(t *testing.T) {
		req := buildRequest(&models.Session{
			SessionID: "s1",
			UserID:    "user-2",
			StaffID:   "staff-1",
			Role:      constvars.ClinicRoleDentist,
		})

		rr := httptest.NewRecorder()
		middlewares.RequireStaff(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Patient Session", func(t *testing.T) {
		req := buildRequest(&models.Session{
			SessionID: "s2",
			UserID:    "user-3",
			PatientID: "patient-2",
			Role:      constvars.ClinicRolePatient,
		})

		rr := httptest.NewRecorder()
		middlewares.RequireStaff(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("No Session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/invoices", nil)

		rr := httptest.NewRecorder()
		middlewares.RequireStaff(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
