package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/internal/metrics"
	"github.com/limbo/vital/internal/repository"
	"github.com/limbo/vital/pkg/entity"
	"github.com/limbo/vital/pkg/walletsig"
)

type AuthService struct {
	users      repository.UsersRepositoryI
	sessions   repository.SessionsRepositoryI
	sessionTTL time.Duration
	clock      Clock
}

func NewAuthService(usersRepo repository.UsersRepositoryI, sessionsRepo repository.SessionsRepositoryI, sessionTTL time.Duration, clock Clock) *AuthService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	if sessionsRepo == nil {
		log.Fatal("provided nil sessionsRepo")
	}
	return &AuthService{
		users:      usersRepo,
		sessions:   sessionsRepo,
		sessionTTL: sessionTTL,
		clock:      clock,
	}
}

func (as *AuthService) IssueChallenge(ctx context.Context, walletAddress string) (string, error) {
	wallet, err := normalizeWallet(walletAddress)
	if err != nil {
		return "", err
	}
	nonce, err := newNonce()
	if err != nil {
		return "", err
	}
	if _, err = as.users.UpsertNonce(ctx, wallet, nonce); err != nil {
		return "", errors.New("users repository error: " + err.Error())
	}
	return nonce, nil
}

func (as *AuthService) VerifyResponse(ctx context.Context, req *VerifyRequest) (*entity.User, *entity.Session, error) {
	if err := checkRequest(req); err != nil {
		return nil, nil, err
	}
	wallet, err := normalizeWallet(req.WalletAddress)
	if err != nil {
		return nil, nil, err
	}
	user, err := as.users.FindByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			metrics.RecordVerification(false)
			return nil, nil, errorvalues.ErrUserNotFound
		}
		return nil, nil, errors.New("users repository error: " + err.Error())
	}

	// The signed nonce is consumed before the signature is even looked at,
	// so neither a good nor a bad signature can be presented twice.
	next, err := newNonce()
	if err != nil {
		return nil, nil, err
	}
	if err = as.users.RotateNonce(ctx, user.ID, user.Nonce, next); err != nil {
		if errors.Is(err, errorvalues.ErrNonceConsumed) {
			metrics.RecordVerification(false)
			return nil, nil, errorvalues.ErrInvalidSignature
		}
		return nil, nil, errors.New("users repository error: " + err.Error())
	}
	signed := user.Nonce
	user.Nonce = next

	recovered, err := walletsig.RecoverAddress(signed, req.Signature)
	if err != nil || !walletsig.SameAddress(recovered, wallet) {
		metrics.RecordVerification(false)
		return nil, nil, errorvalues.ErrInvalidSignature
	}

	now := as.clock.Now()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(as.sessionTTL),
	}
	if err = as.sessions.Create(ctx, session); err != nil {
		return nil, nil, errors.New("sessions repository error: " + err.Error())
	}
	metrics.RecordVerification(true)
	return user, session, nil
}

func (as *AuthService) CurrentIdentity(ctx context.Context, sessionID uuid.UUID) (*entity.User, error) {
	session, err := as.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, errorvalues.ErrUnauthenticated
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	user, err := as.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrIdentityNotFound) {
			return nil, errorvalues.ErrUnauthenticated
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}

func (as *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := as.sessions.Delete(ctx, sessionID); err != nil {
		return errors.New("sessions repository error: " + err.Error())
	}
	return nil
}

func (as *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := as.sessions.DeleteExpired(ctx, as.clock.Now())
	if err != nil {
		return 0, errors.New("sessions repository error: " + err.Error())
	}
	return n, nil
}
