package repository_test

import (
	"context"
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

func TestCreateReminder(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewRemindersRepoWithConn(conn)
	dosage := "200mg"
	reminder := &entity.Reminder{
		UserID:   uuid.New(),
		Type:     entity.ReminderMedicine,
		Title:    "Ibuprofen",
		Datetime: time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC),
		Dosage:   &dosage,
	}
	query := regexp.QuoteMeta(`INSERT INTO reminders (user_id, type, title, datetime, dosage)
	VALUES ($1, $2, $3, $4, $5) RETURNING id, completed;`)
	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectQuery(query).
			WithArgs(reminder.UserID, reminder.Type, reminder.Title, reminder.Datetime, reminder.Dosage).
			WillReturnRows(pgxmock.NewRows([]string{"id", "completed"}).AddRow(id, false))
		created, err := repo.Create(ctx, reminder)
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.Equal(t, "Ibuprofen", created.Title)
		assert.Equal(t, uuid.Nil, reminder.ID)
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(reminder.UserID, reminder.Type, reminder.Title, reminder.Datetime, reminder.Dosage).
			WillReturnError(&pgconn.PgError{
				Code: "23503",
			})
		_, err := repo.Create(ctx, reminder)
		assert.ErrorIs(t, err, errorvalues.ErrIdentityNotFound)
	})
}

func TestToggleReminder(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewRemindersRepoWithConn(conn)
	id, uid := uuid.New(), uuid.New()
	query := regexp.QuoteMeta(`UPDATE reminders SET completed = NOT completed
	WHERE id = $1 AND user_id = $2 RETURNING id, user_id, type, title, datetime, dosage, completed;`)
	t.Run("toggled", func(t *testing.T) {
		when := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
		conn.ExpectQuery(query).
			WithArgs(id, uid).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "type", "title", "datetime", "dosage", "completed"}).
				AddRow(id, uid, entity.ReminderDoctor, "Checkup", when, (*string)(nil), true))
		r, err := repo.Toggle(ctx, id, uid)
		require.NoError(t, err)
		assert.True(t, r.Completed)
		assert.Nil(t, r.Dosage)
	})
	t.Run("foreign or missing", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(id, uid).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Toggle(ctx, id, uid)
		assert.ErrorIs(t, err, errorvalues.ErrReminderNotFound)
	})
}

func TestListSymptoms(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewSymptomsRepoWithConn(conn)
	uid := uuid.New()
	newer := entity.Symptom{ID: uuid.New(), UserID: uid, Description: "headache", Severity: 8, Duration: 2,
		AIAnalysis: "rest", RiskLevel: entity.RiskHigh, CreatedAt: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)}
	older := entity.Symptom{ID: uuid.New(), UserID: uid, Description: "cough", Severity: 3, Duration: 5,
		AIAnalysis: "tea", RiskLevel: entity.RiskLow, CreatedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
	conn.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, description, severity, duration, ai_analysis, risk_level, created_at
	FROM symptoms WHERE user_id = $1 ORDER BY created_at DESC;`)).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "description", "severity", "duration", "ai_analysis", "risk_level", "created_at"}).
			AddRow(newer.ID, newer.UserID, newer.Description, newer.Severity, newer.Duration, newer.AIAnalysis, newer.RiskLevel, newer.CreatedAt).
			AddRow(older.ID, older.UserID, older.Description, older.Severity, older.Duration, older.AIAnalysis, older.RiskLevel, older.CreatedAt))
	symptoms, err := repo.ListByUser(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Symptom{&newer, &older}, symptoms)
}

func TestCreateSymptom(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewSymptomsRepoWithConn(conn)
	symptom := &entity.Symptom{UserID: uuid.New(), Description: "fever", Severity: 6, Duration: 1,
		AIAnalysis: "hydrate", RiskLevel: entity.RiskMedium}
	id, at := uuid.New(), time.Now().UTC()
	conn.ExpectQuery(regexp.QuoteMeta(`INSERT INTO symptoms (user_id, description, severity, duration, ai_analysis, risk_level)
	VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`)).
		WithArgs(symptom.UserID, symptom.Description, symptom.Severity, symptom.Duration, symptom.AIAnalysis, symptom.RiskLevel).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, at))
	created, err := repo.Create(ctx, symptom)
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, at, created.CreatedAt)
	assert.Equal(t, entity.RiskMedium, created.RiskLevel)
}
