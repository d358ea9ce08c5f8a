package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/pkg/entity"
)

const userColumns = `id, wallet_address, nonce, name, age, gender, height, weight, bmi, lifestyle,
	allergies, past_diseases, current_conditions, physical_score, mental_score, overall_score,
	questionnaire, points, current_streak, last_task_date, referral_code, referred_by, created_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) UpsertNonce(ctx context.Context, wallet, nonce string) (uuid.UUID, error) {
	var id uuid.UUID
	row := querier(ctx, ur.conn).QueryRow(ctx, `INSERT INTO users (wallet_address, nonce) VALUES ($1, $2)
	ON CONFLICT (wallet_address) DO UPDATE SET nonce = EXCLUDED.nonce RETURNING id;`, wallet, nonce)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, errors.New("upserting nonce error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindByWallet(ctx context.Context, wallet string) (*entity.User, error) {
	row := querier(ctx, ur.conn).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE wallet_address = $1;`, wallet)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by wallet error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := querier(ctx, ur.conn).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrIdentityNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByIDForUpdate(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := querier(ctx, ur.conn).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrIdentityNotFound
		}
		return nil, errors.New("locking user error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	row := querier(ctx, ur.conn).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE referral_code = $1;`, code)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReferrerNotFound
		}
		return nil, errors.New("searching user by referral code error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) RotateNonce(ctx context.Context, uid uuid.UUID, current, next string) error {
	ct, err := querier(ctx, ur.conn).Exec(ctx, `UPDATE users SET nonce = $1 WHERE id = $2 AND nonce = $3;`, next, uid, current)
	if err != nil {
		return errors.New("rotating nonce error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNonceConsumed
	}
	return nil
}

func (ur *UsersRepository) UpdateProfile(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	var questionnaire []byte
	if user.Questionnaire != nil {
		var err error
		questionnaire, err = sonic.Marshal(user.Questionnaire)
		if err != nil {
			return nil, errors.New("marshalling questionnaire error: " + err.Error())
		}
	}
	row := querier(ctx, ur.conn).QueryRow(ctx, `UPDATE users SET name = $1, age = $2, gender = $3, height = $4,
	weight = $5, bmi = $6, lifestyle = $7, allergies = $8, past_diseases = $9, current_conditions = $10,
	physical_score = $11, mental_score = $12, overall_score = $13, questionnaire = $14
	WHERE id = $15 RETURNING `+userColumns+`;`,
		user.Name,
		user.Age,
		user.Gender,
		user.Height,
		user.Weight,
		user.BMI,
		user.Lifestyle,
		user.Allergies,
		user.PastDiseases,
		user.CurrentConditions,
		user.PhysicalScore,
		user.MentalScore,
		user.OverallScore,
		questionnaire,
		user.ID,
	)
	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrIdentityNotFound
		}
		return nil, errors.New("updating profile error: " + err.Error())
	}
	return updated, nil
}

func (ur *UsersRepository) AddPoints(ctx context.Context, uid uuid.UUID, amount int) error {
	ct, err := querier(ctx, ur.conn).Exec(ctx, `UPDATE users SET points = points + $1 WHERE id = $2;`, amount, uid)
	if err != nil {
		return errors.New("adding points error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrIdentityNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateStreak(ctx context.Context, uid uuid.UUID, streak int, lastTaskDate time.Time) error {
	ct, err := querier(ctx, ur.conn).Exec(ctx, `UPDATE users SET current_streak = $1, last_task_date = $2 WHERE id = $3;`,
		streak,
		lastTaskDate,
		uid,
	)
	if err != nil {
		return errors.New("updating streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrIdentityNotFound
	}
	return nil
}

func (ur *UsersRepository) SetReferralCode(ctx context.Context, uid uuid.UUID, code string) error {
	ct, err := querier(ctx, ur.conn).Exec(ctx, `UPDATE users SET referral_code = $1 WHERE id = $2 AND referral_code IS NULL;`, code, uid)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrReferralTaken
			}
		}
		return errors.New("setting referral code error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReferralCodeSet
	}
	return nil
}

func (ur *UsersRepository) SetReferredBy(ctx context.Context, uid uuid.UUID, code string) error {
	ct, err := querier(ctx, ur.conn).Exec(ctx, `UPDATE users SET referred_by = $1 WHERE id = $2 AND referred_by IS NULL;`, code, uid)
	if err != nil {
		return errors.New("setting referred_by error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReferralUsed
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		user          entity.User
		questionnaire []byte
	)
	err := row.Scan(
		&user.ID,
		&user.WalletAddress,
		&user.Nonce,
		&user.Name,
		&user.Age,
		&user.Gender,
		&user.Height,
		&user.Weight,
		&user.BMI,
		&user.Lifestyle,
		&user.Allergies,
		&user.PastDiseases,
		&user.CurrentConditions,
		&user.PhysicalScore,
		&user.MentalScore,
		&user.OverallScore,
		&questionnaire,
		&user.Points,
		&user.CurrentStreak,
		&user.LastTaskDate,
		&user.ReferralCode,
		&user.ReferredBy,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(questionnaire) > 0 {
		var q entity.Questionnaire
		if err = sonic.Unmarshal(questionnaire, &q); err != nil {
			return nil, errors.New("unmarshalling questionnaire: " + err.Error())
		}
		user.Questionnaire = &q
	}
	return &user, nil
}
