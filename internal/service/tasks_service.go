package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/internal/metrics"
	"github.com/limbo/vital/internal/repository"
	"github.com/limbo/vital/pkg/entity"
)

// DefaultTaskTemplates is the batch created for a user's day.
var DefaultTaskTemplates = []entity.TaskTemplate{
	{Type: entity.TaskSteps, Target: 10000},
	{Type: entity.TaskWater, Target: 2500},
	{Type: entity.TaskSleep, Target: 8},
	{Type: entity.TaskExercise, Target: 30},
}

type TasksService struct {
	tx    repository.TxManagerI
	tasks repository.TasksRepositoryI
	users repository.UsersRepositoryI
	clock Clock
}

func NewTasksService(tx repository.TxManagerI, tasksRepo repository.TasksRepositoryI, usersRepo repository.UsersRepositoryI, clock Clock) *TasksService {
	if tx == nil || tasksRepo == nil || usersRepo == nil {
		log.Fatal("provided nil dependency for tasksService")
	}
	return &TasksService{
		tx:    tx,
		tasks: tasksRepo,
		users: usersRepo,
		clock: clock,
	}
}

func (ts *TasksService) ListTasks(ctx context.Context, uid uuid.UUID, date string) ([]*entity.Task, error) {
	day := ts.clock.Today()
	if date != "" {
		parsed, err := time.Parse(entity.DateLayout, date)
		if err != nil {
			return nil, errorvalues.ErrInvalidDate
		}
		day = parsed
	}
	tasks, err := ts.tasks.ListByUserAndDate(ctx, uid, day)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) GenerateDailyTasks(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error) {
	today := ts.clock.Today()
	if err := ts.tasks.CreateBatch(ctx, uid, today, DefaultTaskTemplates); err != nil {
		if errors.Is(err, errorvalues.ErrIdentityNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	tasks, err := ts.tasks.ListByUserAndDate(ctx, uid, today)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) UpdateTask(ctx context.Context, uid, taskID uuid.UUID, req *UpdateTaskRequest) (*entity.Task, *entity.TaskReward, error) {
	if err := checkRequest(req); err != nil {
		return nil, nil, err
	}
	var (
		task   *entity.Task
		reward *entity.TaskReward
	)
	err := ts.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		task, err = ts.tasks.GetByIDForUpdate(ctx, taskID)
		if err != nil {
			return err
		}
		if task.UserID != uid {
			return errorvalues.ErrTaskNotFound
		}
		wasCompleted := task.Completed
		if req.Current != nil {
			task.Current = *req.Current
		}
		if req.Completed != nil {
			task.Completed = *req.Completed
		}
		if err = ts.tasks.Update(ctx, task); err != nil {
			return err
		}
		if wasCompleted || !task.Completed {
			return nil
		}
		reward, err = ts.awardCompletion(ctx, uid)
		return err
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) || errors.Is(err, errorvalues.ErrIdentityNotFound) {
			return nil, nil, errorvalues.ErrTaskNotFound
		}
		return nil, nil, errors.New("updating task error: " + err.Error())
	}
	if reward != nil {
		metrics.RecordPoints("task", reward.Points)
		metrics.RecordPoints("streak_bonus", reward.Bonus)
	}
	return task, reward, nil
}

// awardCompletion must run inside the task's transaction. The user row is
// locked so concurrent completions for one user apply one after another.
func (ts *TasksService) awardCompletion(ctx context.Context, uid uuid.UUID) (*entity.TaskReward, error) {
	user, err := ts.users.FindByIDForUpdate(ctx, uid)
	if err != nil {
		return nil, err
	}
	today := ts.clock.Today()
	streak, moved := NextStreak(user.CurrentStreak, user.LastTaskDate, today)
	reward := &entity.TaskReward{
		Points: TaskCompletionPoints,
		Streak: streak,
	}
	if moved {
		reward.Bonus = StreakBonus(streak)
	}
	if err = ts.users.AddPoints(ctx, uid, reward.Points+reward.Bonus); err != nil {
		return nil, err
	}
	if err = ts.users.UpdateStreak(ctx, uid, streak, today); err != nil {
		return nil, err
	}
	return reward, nil
}
