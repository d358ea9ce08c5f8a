package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/internal/repository"
	"github.com/limbo/vital/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumnNames = []string{
	"id", "wallet_address", "nonce", "name", "age", "gender", "height", "weight", "bmi", "lifestyle",
	"allergies", "past_diseases", "current_conditions", "physical_score", "mental_score", "overall_score",
	"questionnaire", "points", "current_streak", "last_task_date", "referral_code", "referred_by", "created_at",
}

func userRow(u *entity.User, questionnaire []byte) []any {
	return []any{
		u.ID, u.WalletAddress, u.Nonce, u.Name, u.Age, u.Gender, u.Height, u.Weight, u.BMI, u.Lifestyle,
		u.Allergies, u.PastDiseases, u.CurrentConditions, u.PhysicalScore, u.MentalScore, u.OverallScore,
		questionnaire, u.Points, u.CurrentStreak, u.LastTaskDate, u.ReferralCode, u.ReferredBy, u.CreatedAt,
	}
}

func testUser() *entity.User {
	name := "alice"
	code := "VITALABCDEF1234"
	return &entity.User{
		ID:            uuid.New(),
		WalletAddress: "0x2c7536e3605d9c16a7a3d7b1898e529396a65c23",
		Nonce:         "deadbeef",
		Name:          &name,
		PhysicalScore: 50,
		MentalScore:   50,
		OverallScore:  50,
		Points:        120,
		CurrentStreak: 3,
		ReferralCode:  &code,
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestUpsertNonce(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	wallet := "0x2c7536e3605d9c16a7a3d7b1898e529396a65c23"
	query := regexp.QuoteMeta(`INSERT INTO users (wallet_address, nonce) VALUES ($1, $2)
	ON CONFLICT (wallet_address) DO UPDATE SET nonce = EXCLUDED.nonce RETURNING id;`)
	t.Run("upserted", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectQuery(query).
			WithArgs(wallet, "n1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		result, err := repo.UpsertNonce(ctx, wallet, "n1")
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(wallet, "n2").
			WillReturnError(errors.New("db error"))
		_, err := repo.UpsertNonce(ctx, wallet, "n2")
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindByWallet(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := testUser()
	query := `SELECT (.+) FROM users WHERE wallet_address = \$1;`
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.WalletAddress).
			WillReturnRows(pgxmock.NewRows(userColumnNames).AddRow(userRow(user, nil)...))
		result, err := repo.FindByWallet(ctx, user.WalletAddress)
		require.NoError(t, err)
		assert.Equal(t, user, result)
	})
	t.Run("questionnaire decoded", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.WalletAddress).
			WillReturnRows(pgxmock.NewRows(userColumnNames).AddRow(userRow(user, []byte(`{"stressLevel":4,"mood":"stable"}`))...))
		result, err := repo.FindByWallet(ctx, user.WalletAddress)
		require.NoError(t, err)
		require.NotNil(t, result.Questionnaire)
		assert.Equal(t, 4, *result.Questionnaire.StressLevel)
		assert.Equal(t, "stable", result.Questionnaire.Mood)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.WalletAddress).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByWallet(ctx, user.WalletAddress)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.WalletAddress).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByWallet(ctx, user.WalletAddress)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestFindByIDForUpdate(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := testUser()
	query := `SELECT (.+) FROM users WHERE id = \$1 FOR UPDATE;`
	t.Run("locked", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows(userColumnNames).AddRow(userRow(user, nil)...))
		result, err := repo.FindByIDForUpdate(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Points, result.Points)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByIDForUpdate(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrIdentityNotFound)
	})
}

func TestFindByReferralCode(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	query := `SELECT (.+) FROM users WHERE referral_code = \$1;`
	conn.ExpectQuery(query).
		WithArgs("VITALNOPE").
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.FindByReferralCode(ctx, "VITALNOPE")
	assert.ErrorIs(t, err, errorvalues.ErrReferrerNotFound)
	assert.ErrorIs(t, err, errorvalues.ErrNotFound)
}

func TestRotateNonce(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`UPDATE users SET nonce = $1 WHERE id = $2 AND nonce = $3;`)
	t.Run("rotated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("fresh", uid, "stale").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.RotateNonce(ctx, uid, "stale", "fresh"))
	})
	t.Run("already rotated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("fresh", uid, "stale").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.RotateNonce(ctx, uid, "stale", "fresh")
		assert.ErrorIs(t, err, errorvalues.ErrNonceConsumed)
		assert.ErrorIs(t, err, errorvalues.ErrAuth)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("fresh", uid, "stale").
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.RotateNonce(ctx, uid, "stale", "fresh"))
	})
}

func TestAddPoints(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`UPDATE users SET points = points + $1 WHERE id = $2;`)
	t.Run("added", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(10, uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.AddPoints(ctx, uid, 10))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(10, uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.AddPoints(ctx, uid, 10), errorvalues.ErrIdentityNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(10, uid).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.AddPoints(ctx, uid, 10))
	})
}

func TestUpdateStreak(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	conn.ExpectExec(regexp.QuoteMeta(`UPDATE users SET current_streak = $1, last_task_date = $2 WHERE id = $3;`)).
		WithArgs(7, today, uid).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdateStreak(ctx, uid, 7, today))
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestSetReferralCode(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	code := "VITAL1A2B3CXY9Z"
	query := regexp.QuoteMeta(`UPDATE users SET referral_code = $1 WHERE id = $2 AND referral_code IS NULL;`)
	t.Run("set", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(code, uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetReferralCode(ctx, uid, code))
	})
	t.Run("already set", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(code, uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.SetReferralCode(ctx, uid, code), errorvalues.ErrReferralCodeSet)
	})
	t.Run("unique violation", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(code, uid).
			WillReturnError(&pgconn.PgError{
				Code: "23505",
			})
		assert.ErrorIs(t, repo.SetReferralCode(ctx, uid, code), errorvalues.ErrReferralTaken)
	})
}

func TestSetReferredBy(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`UPDATE users SET referred_by = $1 WHERE id = $2 AND referred_by IS NULL;`)
	t.Run("set", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("VITALX", uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetReferredBy(ctx, uid, "VITALX"))
	})
	t.Run("already referred", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("VITALX", uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.SetReferredBy(ctx, uid, "VITALX")
		assert.ErrorIs(t, err, errorvalues.ErrReferralUsed)
		assert.ErrorIs(t, err, errorvalues.ErrConflict)
	})
}
