package service

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/internal/metrics"
	"github.com/limbo/vital/internal/repository"
	"github.com/limbo/vital/pkg/entity"
)

const (
	RedeemThreshold    = 10000
	pointsPerRedeemOne = 1000
	redeemUnit         = 10

	referralPrefix     = "VITAL"
	referralSuffixLen  = 4
	referralAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referralMaxRetries = 5
)

type PointsService struct {
	tx    repository.TxManagerI
	users repository.UsersRepositoryI
}

func NewPointsService(tx repository.TxManagerI, usersRepo repository.UsersRepositoryI) *PointsService {
	if tx == nil || usersRepo == nil {
		log.Fatal("provided nil dependency for pointsService")
	}
	return &PointsService{
		tx:    tx,
		users: usersRepo,
	}
}

// BalanceOf reports points of user with redemption eligibility.
func BalanceOf(user *entity.User) *entity.Balance {
	return &entity.Balance{
		Points:      user.Points,
		Streak:      user.CurrentStreak,
		CanRedeem:   user.Points >= RedeemThreshold,
		RedeemValue: user.Points / pointsPerRedeemOne * redeemUnit,
	}
}

func (ps *PointsService) GetBalance(ctx context.Context, uid uuid.UUID) (*entity.Balance, error) {
	user, err := ps.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrIdentityNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return BalanceOf(user), nil
}

func (ps *PointsService) AddPoints(ctx context.Context, uid uuid.UUID, amount int) error {
	if amount < 0 {
		return errorvalues.ErrNegativeAmount
	}
	if err := ps.users.AddPoints(ctx, uid, amount); err != nil {
		if errors.Is(err, errorvalues.ErrIdentityNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	metrics.RecordPoints("manual", amount)
	return nil
}

func (ps *PointsService) ApplyReferral(ctx context.Context, uid uuid.UUID, code string) (*entity.Balance, error) {
	if err := checkRequest(&ReferralRequest{ReferralCode: code}); err != nil {
		return nil, err
	}
	code = strings.ToUpper(code)
	var balance *entity.Balance
	err := ps.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := ps.users.FindByIDForUpdate(ctx, uid)
		if err != nil {
			return err
		}
		if user.ReferredBy != nil {
			return errorvalues.ErrReferralUsed
		}
		referrer, err := ps.users.FindByReferralCode(ctx, code)
		if err != nil {
			return err
		}
		if referrer.ID == user.ID {
			return errorvalues.ErrSelfReferral
		}
		if err = ps.users.AddPoints(ctx, user.ID, ReferralPoints); err != nil {
			return err
		}
		if err = ps.users.AddPoints(ctx, referrer.ID, ReferralPoints); err != nil {
			return err
		}
		if err = ps.users.SetReferredBy(ctx, user.ID, code); err != nil {
			return err
		}
		user.Points += ReferralPoints
		balance = BalanceOf(user)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrReferralUsed),
			errors.Is(err, errorvalues.ErrReferrerNotFound),
			errors.Is(err, errorvalues.ErrSelfReferral),
			errors.Is(err, errorvalues.ErrIdentityNotFound):
			return nil, err
		}
		return nil, errors.New("applying referral error: " + err.Error())
	}
	metrics.RecordPoints("referral", 2*ReferralPoints)
	return balance, nil
}

func (ps *PointsService) EnsureReferralCode(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.ReferralCode != nil {
		return user, nil
	}
	for range referralMaxRetries {
		code, err := newReferralCode(user.ID)
		if err != nil {
			return nil, err
		}
		err = ps.users.SetReferralCode(ctx, user.ID, code)
		switch {
		case err == nil:
			user.ReferralCode = &code
			return user, nil
		case errors.Is(err, errorvalues.ErrReferralTaken):
			continue
		case errors.Is(err, errorvalues.ErrReferralCodeSet):
			// generated concurrently by another request
			return ps.users.FindByID(ctx, user.ID)
		default:
			return nil, errors.New("users repository error: " + err.Error())
		}
	}
	return nil, errors.New("referral code generation: too many collisions")
}

func newReferralCode(uid uuid.UUID) (string, error) {
	var b strings.Builder
	b.WriteString(referralPrefix)
	b.WriteString(strings.ToUpper(strings.ReplaceAll(uid.String(), "-", "")[:6]))
	alphabetLen := big.NewInt(int64(len(referralAlphabet)))
	for range referralSuffixLen {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", errors.New("reading random referral suffix error: " + err.Error())
		}
		b.WriteByte(referralAlphabet[n.Int64()])
	}
	return b.String(), nil
}
