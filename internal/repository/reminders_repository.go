package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/pkg/entity"
)

type RemindersRepository struct {
	conn PgConnection
}

func NewRemindersRepoWithConn(conn PgConnection) *RemindersRepository {
	mustPing(conn, "remindersRepo")
	return &RemindersRepository{
		conn: conn,
	}
}

func (rr *RemindersRepository) Create(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	if reminder == nil {
		return nil, errors.New("reminder is nil")
	}
	created := *reminder
	row := querier(ctx, rr.conn).QueryRow(ctx, `INSERT INTO reminders (user_id, type, title, datetime, dosage)
	VALUES ($1, $2, $3, $4, $5) RETURNING id, completed;`,
		reminder.UserID,
		reminder.Type,
		reminder.Title,
		reminder.Datetime,
		reminder.Dosage,
	)
	if err := row.Scan(&created.ID, &created.Completed); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Foreign key violation
			case "23503":
				return nil, errorvalues.ErrIdentityNotFound
			}
		}
		return nil, errors.New("creating reminder db error: " + err.Error())
	}
	return &created, nil
}

func (rr *RemindersRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error) {
	rows, err := querier(ctx, rr.conn).Query(ctx, `SELECT id, user_id, type, title, datetime, dosage, completed
	FROM reminders WHERE user_id = $1 ORDER BY datetime;`, uid)
	if err != nil {
		return nil, errors.New("listing reminders error: " + err.Error())
	}
	defer rows.Close()
	reminders := make([]*entity.Reminder, 0)
	for rows.Next() {
		var r entity.Reminder
		if err = rows.Scan(&r.ID, &r.UserID, &r.Type, &r.Title, &r.Datetime, &r.Dosage, &r.Completed); err != nil {
			return nil, errors.New("scanning reminder error: " + err.Error())
		}
		reminders = append(reminders, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("iterating reminders error: " + err.Error())
	}
	return reminders, nil
}

func (rr *RemindersRepository) Toggle(ctx context.Context, id, uid uuid.UUID) (*entity.Reminder, error) {
	var r entity.Reminder
	row := querier(ctx, rr.conn).QueryRow(ctx, `UPDATE reminders SET completed = NOT completed
	WHERE id = $1 AND user_id = $2 RETURNING id, user_id, type, title, datetime, dosage, completed;`, id, uid)
	if err := row.Scan(&r.ID, &r.UserID, &r.Type, &r.Title, &r.Datetime, &r.Dosage, &r.Completed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReminderNotFound
		}
		return nil, errors.New("toggling reminder error: " + err.Error())
	}
	return &r, nil
}
