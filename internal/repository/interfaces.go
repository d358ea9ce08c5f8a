package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/vital/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Inserts an identity for wallet with the given nonce, or overwrites the
	// nonce of the existing one. Returns the identity id
	UpsertNonce(ctx context.Context, wallet, nonce string) (uuid.UUID, error)
	// Looks up user by its lower-cased wallet address
	FindByWallet(ctx context.Context, wallet string) (*entity.User, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Same as FindByID but locks the row until the surrounding transaction ends
	FindByIDForUpdate(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	FindByReferralCode(ctx context.Context, code string) (*entity.User, error)
	// Replaces the nonce only if it still equals current. A concurrent
	// rotation makes it fail with ErrNonceConsumed
	RotateNonce(ctx context.Context, uid uuid.UUID, current, next string) error
	// Writes profile fields, scores and questionnaire of user
	UpdateProfile(ctx context.Context, user *entity.User) (*entity.User, error)
	// Increments points balance by amount
	AddPoints(ctx context.Context, uid uuid.UUID, amount int) error
	UpdateStreak(ctx context.Context, uid uuid.UUID, streak int, lastTaskDate time.Time) error
	// Sets referral code only if none is set yet
	SetReferralCode(ctx context.Context, uid uuid.UUID, code string) error
	// Sets referred_by only if it is still empty
	SetReferredBy(ctx context.Context, uid uuid.UUID, code string) error
}

type SessionsRepositoryI interface {
	Create(ctx context.Context, session *entity.Session) error
	// Returns the session if it exists and hasn't expired
	Get(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// Deletes session, missing session is not an error
	Delete(ctx context.Context, id uuid.UUID) error
	// Deletes sessions expired before the given moment, returns how many
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type TasksRepositoryI interface {
	ListByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]*entity.Task, error)
	// Inserts the templates for (uid, date), skipping types that already exist
	CreateBatch(ctx context.Context, uid uuid.UUID, date time.Time, templates []entity.TaskTemplate) error
	// Loads a task and locks it until the surrounding transaction ends
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Writes current and completed of the task
	Update(ctx context.Context, task *entity.Task) error
}

type SymptomsRepositoryI interface {
	Create(ctx context.Context, symptom *entity.Symptom) (*entity.Symptom, error)
	// Lists user's symptoms, newest first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Symptom, error)
}

type RemindersRepositoryI interface {
	Create(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error)
	// Lists user's reminders ordered by datetime
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error)
	// Flips completed of the reminder owned by uid
	Toggle(ctx context.Context, id, uid uuid.UUID) (*entity.Reminder, error)
}

type TxManagerI interface {
	// Runs fn in one transaction. Repositories called with the ctx passed to
	// fn join that transaction
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
