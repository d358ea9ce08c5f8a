package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/vital/internal/service"
	"github.com/limbo/vital/pkg/entity"
	"github.com/limbo/vital/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type VerifyResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type ReferralResponse struct {
	Success bool `json:"success"`
	Points  int  `json:"points"`
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst)
}

func (s *Server) IssueNonce(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.NonceRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("issuing nonce error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	nonce, err := s.authService.IssueChallenge(ctx, req.WalletAddress)
	if err != nil {
		writeServiceError(w, logger, "issuing nonce", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"nonce": nonce})
	logger.Info("nonce issued")
}

func (s *Server) Verify(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.VerifyRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("verification error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, session, err := s.authService.VerifyResponse(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "verification", err)
		return
	}
	token, err := s.tokenService.GenerateToken(session)
	if err != nil {
		logger.Error("verification error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating session", nil)
		return
	}
	http.SetCookie(w, s.sessionCookie(token, int(s.opts.SessionTTL.Seconds())))
	httputil.WriteJSONResponse(w, http.StatusOK, VerifyResponse{
		Token: "session_cookie_used",
		User:  user,
	})
	logger.Info("wallet verified", slog.String("uid", user.ID.String()))
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		httputil.WriteNull(w, http.StatusUnauthorized)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	withCode, err := s.pointsService.EnsureReferralCode(ctx, user)
	if err != nil {
		// the identity is still valid without a code
		logger.Error("ensuring referral code error", slog.String("error", err.Error()))
		withCode = user
	}
	httputil.WriteJSONResponse(w, http.StatusOK, withCode)
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if sessionID, ok := GetSessionIDFromContext(r); ok {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		if err := s.authService.Logout(ctx, sessionID); err != nil {
			writeServiceError(w, logger, "logout", err)
			return
		}
	}
	http.SetCookie(w, s.sessionCookie("", -1))
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "Logged out"})
	logger.Info("logged out")
}

func (s *Server) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	var req service.ProfileUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("profile update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	updated, err := s.profileService.UpdateProfile(ctx, user.ID, &req)
	if err != nil {
		writeServiceError(w, logger, "profile update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("profile updated")
}

func (s *Server) GetPoints(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	balance, err := s.pointsService.GetBalance(ctx, user.ID)
	if err != nil {
		writeServiceError(w, logger, "getting points", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, balance)
}

func (s *Server) ApplyReferral(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	var req service.ReferralRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("referral error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	balance, err := s.pointsService.ApplyReferral(ctx, user.ID, req.ReferralCode)
	if err != nil {
		writeServiceError(w, logger, "referral", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ReferralResponse{
		Success: true,
		Points:  balance.Points,
	})
	logger.Info("referral applied")
}
