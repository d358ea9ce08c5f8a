package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/internal/repository"
	"github.com/limbo/vital/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSymptom(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewSymptomsRepoWithConn(conn)
	symptom := &entity.Symptom{
		UserID:      uuid.New(),
		Description: "headache",
		Severity:    8,
		Duration:    2,
		AIAnalysis:  "Rest and hydrate.",
		RiskLevel:   entity.RiskHigh,
	}
	query := regexp.QuoteMeta(`INSERT INTO symptoms (user_id, description, severity, duration, ai_analysis, risk_level)
	VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`)
	args := []interface{}{symptom.UserID, symptom.Description, symptom.Severity, symptom.Duration, symptom.AIAnalysis, symptom.RiskLevel}
	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		at := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, at))
		created, err := repo.Create(ctx, symptom)
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.Equal(t, at, created.CreatedAt)
		assert.Equal(t, entity.RiskHigh, created.RiskLevel)
		assert.Equal(t, uuid.Nil, symptom.ID)
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{
				Code: "23503",
			})
		_, err := repo.Create(ctx, symptom)
		assert.ErrorIs(t, err, errorvalues.ErrIdentityNotFound)
	})
	t.Run("nil symptom", func(t *testing.T) {
		_, err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestListSymptoms(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewSymptomsRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`SELECT id, user_id, description, severity, duration, ai_analysis, risk_level, created_at
	FROM symptoms WHERE user_id = $1 ORDER BY created_at DESC;`)
	cols := []string{"id", "user_id", "description", "severity", "duration", "ai_analysis", "risk_level", "created_at"}
	t.Run("newest first", func(t *testing.T) {
		newer, older := uuid.New(), uuid.New()
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(newer, uid, "cough", 3, 1, "Drink warm fluids.", entity.RiskLow, time.Date(2026, 5, 11, 8, 0, 0, 0, time.UTC)).
				AddRow(older, uid, "fever", 6, 2, "Monitor temperature.", entity.RiskMedium, time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)))
		symptoms, err := repo.ListByUser(ctx, uid)
		require.NoError(t, err)
		require.Len(t, symptoms, 2)
		assert.Equal(t, newer, symptoms[0].ID)
		assert.Equal(t, entity.RiskMedium, symptoms[1].RiskLevel)
	})
	t.Run("empty", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(cols))
		symptoms, err := repo.ListByUser(ctx, uid)
		require.NoError(t, err)
		assert.NotNil(t, symptoms)
		assert.Empty(t, symptoms)
	})
	t.Run("query error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnError(errors.New("conn reset"))
		_, err := repo.ListByUser(ctx, uid)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
