package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/pkg/entity"
	"github.com/limbo/vital/pkg/httputil"
)

type ctxKey int

const (
	requestIDContextKey ctxKey = iota
	loggerContextKey
	userContextKey
	sessionIDContextKey
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()
		w.Header().Set("X-Request-ID", reqID)
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(userContextKey).(*entity.User)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context()).With(slog.String("uid", user.ID.String()))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionMiddleware resolves the session cookie into an identity when it can.
// Requests without a valid session pass through anonymous.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context())
		claims, err := s.tokenService.ParseToken(cookie.Value)
		if err != nil {
			logger.Warn("session cookie rejected", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}
		sessionID, err := uuid.Parse(claims.ID)
		if err != nil {
			logger.Warn("invalid session id in token claims")
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), sessionIDContextKey, sessionID)
		user, err := s.authService.CurrentIdentity(ctx, sessionID)
		if err != nil {
			if !errors.Is(err, errorvalues.ErrUnauthenticated) {
				logger.Error("resolving session error", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resolving session", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		ctx = context.WithValue(ctx, userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) RequireSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := GetUserFromContext(r); err != nil {
			GetLoggerFromCtx(r.Context()).Warn("unauthorized request")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetUserFromContext(r *http.Request) (*entity.User, error) {
	user, ok := r.Context().Value(userContextKey).(*entity.User)
	if !ok || user == nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	return user, nil
}

func GetSessionIDFromContext(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(sessionIDContextKey).(uuid.UUID)
	return id, ok
}
