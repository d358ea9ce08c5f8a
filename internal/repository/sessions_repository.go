package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/pkg/entity"
)

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepoWithConn(conn PgConnection) *SessionsRepository {
	mustPing(conn, "sessionsRepo")
	return &SessionsRepository{
		conn: conn,
	}
}

func (sr *SessionsRepository) Create(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return errors.New("session is nil")
	}
	_, err := querier(ctx, sr.conn).Exec(ctx, `INSERT INTO sessions (id, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4);`,
		session.ID,
		session.UserID,
		session.CreatedAt,
		session.ExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Foreign key violation
			case "23503":
				return errorvalues.ErrIdentityNotFound
			}
		}
		return errors.New("creating session db error: " + err.Error())
	}
	return nil
}

func (sr *SessionsRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	session := entity.Session{ID: id}
	row := querier(ctx, sr.conn).QueryRow(ctx, `SELECT user_id, created_at, expires_at FROM sessions WHERE id = $1 AND expires_at > now();`, id)
	if err := row.Scan(&session.UserID, &session.CreatedAt, &session.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting session error: " + err.Error())
	}
	return &session, nil
}

func (sr *SessionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := querier(ctx, sr.conn).Exec(ctx, `DELETE FROM sessions WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting session error: " + err.Error())
	}
	return nil
}

func (sr *SessionsRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	ct, err := querier(ctx, sr.conn).Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1;`, before)
	if err != nil {
		return 0, errors.New("deleting expired sessions error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
