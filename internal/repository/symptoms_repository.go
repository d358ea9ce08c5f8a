package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/pkg/entity"
)

type SymptomsRepository struct {
	conn PgConnection
}

func NewSymptomsRepoWithConn(conn PgConnection) *SymptomsRepository {
	mustPing(conn, "symptomsRepo")
	return &SymptomsRepository{
		conn: conn,
	}
}

func (sr *SymptomsRepository) Create(ctx context.Context, symptom *entity.Symptom) (*entity.Symptom, error) {
	if symptom == nil {
		return nil, errors.New("symptom is nil")
	}
	created := *symptom
	row := querier(ctx, sr.conn).QueryRow(ctx, `INSERT INTO symptoms (user_id, description, severity, duration, ai_analysis, risk_level)
	VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
		symptom.UserID,
		symptom.Description,
		symptom.Severity,
		symptom.Duration,
		symptom.AIAnalysis,
		symptom.RiskLevel,
	)
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Foreign key violation
			case "23503":
				return nil, errorvalues.ErrIdentityNotFound
			}
		}
		return nil, errors.New("creating symptom db error: " + err.Error())
	}
	return &created, nil
}

func (sr *SymptomsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Symptom, error) {
	rows, err := querier(ctx, sr.conn).Query(ctx, `SELECT id, user_id, description, severity, duration, ai_analysis, risk_level, created_at
	FROM symptoms WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing symptoms error: " + err.Error())
	}
	defer rows.Close()
	symptoms := make([]*entity.Symptom, 0)
	for rows.Next() {
		var s entity.Symptom
		if err = rows.Scan(&s.ID, &s.UserID, &s.Description, &s.Severity, &s.Duration, &s.AIAnalysis, &s.RiskLevel, &s.CreatedAt); err != nil {
			return nil, errors.New("scanning symptom error: " + err.Error())
		}
		symptoms = append(symptoms, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("iterating symptoms error: " + err.Error())
	}
	return symptoms, nil
}
