package middlewares

import (
	"context"
	"net/http"
	"strings"

	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
)

// Authenticate verifies the bearer token and loads the Redis session it
// points at. Deleting the session server-side is enough to revoke a token,
// because the JWT carries nothing but the session id.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.RedisRepository.Get(r.Context(), constvars.RedisSessionKeyPrefix+sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireStaff gates staff-only routes. It must run after Authenticate.
func (m *Middlewares) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		if !ok || sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
			return
		}

		session, err := utils.ParseSessionData(sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !session.IsStaffRole() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
