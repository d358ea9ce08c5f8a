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

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	mustPing(conn, "tasksRepo")
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) ListByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]*entity.Task, error) {
	rows, err := querier(ctx, tr.conn).Query(ctx, `SELECT id, user_id, date, type, target, current, completed
	FROM tasks WHERE user_id = $1 AND date = $2 ORDER BY type;`, uid, date)
	if err != nil {
		return nil, errors.New("listing tasks error: " + err.Error())
	}
	defer rows.Close()
	tasks := make([]*entity.Task, 0, 4)
	for rows.Next() {
		var task entity.Task
		if err = rows.Scan(&task.ID, &task.UserID, &task.Date, &task.Type, &task.Target, &task.Current, &task.Completed); err != nil {
			return nil, errors.New("scanning task error: " + err.Error())
		}
		tasks = append(tasks, &task)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("iterating tasks error: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) CreateBatch(ctx context.Context, uid uuid.UUID, date time.Time, templates []entity.TaskTemplate) error {
	if len(templates) == 0 {
		return nil
	}
	q := querier(ctx, tr.conn)
	for _, tmpl := range templates {
		_, err := q.Exec(ctx, `INSERT INTO tasks (user_id, date, type, target) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date, type) DO NOTHING;`, uid, date, tmpl.Type, tmpl.Target)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				// Foreign key violation
				case "23503":
					return errorvalues.ErrIdentityNotFound
				}
			}
			return errors.New("creating task error: " + err.Error())
		}
	}
	return nil
}

func (tr *TasksRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task := entity.Task{ID: id}
	row := querier(ctx, tr.conn).QueryRow(ctx, `SELECT user_id, date, type, target, current, completed
	FROM tasks WHERE id = $1 FOR UPDATE;`, id)
	if err := row.Scan(&task.UserID, &task.Date, &task.Type, &task.Target, &task.Current, &task.Completed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("locking task error: " + err.Error())
	}
	return &task, nil
}

func (tr *TasksRepository) Update(ctx context.Context, task *entity.Task) error {
	if task == nil {
		return errors.New("task is nil")
	}
	ct, err := querier(ctx, tr.conn).Exec(ctx, `UPDATE tasks SET current = $1, completed = $2 WHERE id = $3;`,
		task.Current,
		task.Completed,
		task.ID,
	)
	if err != nil {
		return errors.New("updating task error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}
