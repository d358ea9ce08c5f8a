package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/internal/repository/mocks"
	"github.com/limbo/vital/internal/service"
	"github.com/limbo/vital/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tasksFixture struct {
	svc   *service.TasksService
	tx    *mocks.MockTxManagerI
	tasks *mocks.MockTasksRepositoryI
	users *mocks.MockUsersRepositoryI
}

func newTasksFixture(t *testing.T) tasksFixture {
	ctrl := gomock.NewController(t)
	f := tasksFixture{
		tx:    mocks.NewMockTxManagerI(ctrl),
		tasks: mocks.NewMockTasksRepositoryI(ctrl),
		users: mocks.NewMockUsersRepositoryI(ctrl),
	}
	f.svc = service.NewTasksService(f.tx, f.tasks, f.users, testClock())
	return f
}

func TestListTasks(t *testing.T) {
	uid := uuid.New()
	t.Run("today by default", func(t *testing.T) {
		f := newTasksFixture(t)
		f.tasks.EXPECT().ListByUserAndDate(gomock.Any(), uid, day(0)).Return([]*entity.Task{}, nil)
		tasks, err := f.svc.ListTasks(context.Background(), uid, "")
		assert.NoError(t, err)
		assert.Empty(t, tasks)
	})
	t.Run("explicit date", func(t *testing.T) {
		f := newTasksFixture(t)
		f.tasks.EXPECT().ListByUserAndDate(gomock.Any(), uid, day(-3)).Return([]*entity.Task{{Type: entity.TaskWater}}, nil)
		tasks, err := f.svc.ListTasks(context.Background(), uid, "2025-03-07")
		assert.NoError(t, err)
		assert.Len(t, tasks, 1)
	})
	t.Run("bad date", func(t *testing.T) {
		f := newTasksFixture(t)
		_, err := f.svc.ListTasks(context.Background(), uid, "07.03.2025")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
}

func TestGenerateDailyTasks(t *testing.T) {
	uid := uuid.New()
	t.Run("creates default batch", func(t *testing.T) {
		f := newTasksFixture(t)
		f.tasks.EXPECT().CreateBatch(gomock.Any(), uid, day(0), service.DefaultTaskTemplates).Return(nil)
		f.tasks.EXPECT().ListByUserAndDate(gomock.Any(), uid, day(0)).Return(make([]*entity.Task, 4), nil)
		tasks, err := f.svc.GenerateDailyTasks(context.Background(), uid)
		assert.NoError(t, err)
		assert.Len(t, tasks, 4)
	})
	t.Run("unknown user", func(t *testing.T) {
		f := newTasksFixture(t)
		f.tasks.EXPECT().CreateBatch(gomock.Any(), uid, day(0), gomock.Any()).Return(errorvalues.ErrIdentityNotFound)
		_, err := f.svc.GenerateDailyTasks(context.Background(), uid)
		assert.ErrorIs(t, err, errorvalues.ErrIdentityNotFound)
	})
}

func TestUpdateTaskCompletionAwards(t *testing.T) {
	uid := uuid.New()
	testCases := []struct {
		name         string
		streak       int
		lastTaskDate *time.Time
		wantStreak   int
		wantPoints   int
		wantBonus    int
	}{
		{name: "first completion ever", streak: 0, lastTaskDate: nil, wantStreak: 1, wantPoints: 10},
		{name: "week streak reached", streak: 6, lastTaskDate: ptr(day(-1)), wantStreak: 7, wantPoints: 10, wantBonus: 50},
		{name: "month streak reached", streak: 29, lastTaskDate: ptr(day(-1)), wantStreak: 30, wantPoints: 10, wantBonus: 100},
		{name: "gap resets streak", streak: 12, lastTaskDate: ptr(day(-3)), wantStreak: 1, wantPoints: 10},
		{name: "same day keeps streak without bonus", streak: 7, lastTaskDate: ptr(day(0)), wantStreak: 7, wantPoints: 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newTasksFixture(t)
			taskID := uuid.New()
			runTx(f.tx)
			f.tasks.EXPECT().GetByIDForUpdate(gomock.Any(), taskID).Return(&entity.Task{
				ID: taskID, UserID: uid, Date: day(0), Type: entity.TaskSteps, Target: 10000,
			}, nil)
			f.tasks.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			f.users.EXPECT().FindByIDForUpdate(gomock.Any(), uid).Return(&entity.User{
				ID: uid, CurrentStreak: tc.streak, LastTaskDate: tc.lastTaskDate,
			}, nil)
			f.users.EXPECT().AddPoints(gomock.Any(), uid, tc.wantPoints+tc.wantBonus).Return(nil)
			f.users.EXPECT().UpdateStreak(gomock.Any(), uid, tc.wantStreak, day(0)).Return(nil)

			task, reward, err := f.svc.UpdateTask(context.Background(), uid, taskID, &service.UpdateTaskRequest{
				Current:   ptr(10000),
				Completed: ptr(true),
			})
			require.NoError(t, err)
			assert.True(t, task.Completed)
			assert.Equal(t, 10000, task.Current)
			assert.Equal(t, &entity.TaskReward{Points: tc.wantPoints, Bonus: tc.wantBonus, Streak: tc.wantStreak}, reward)
		})
	}
}

func TestUpdateTaskSameDayTwice(t *testing.T) {
	// Two completions on one day from a 6 day streak earn 10+50 then 10.
	uid := uuid.New()
	f := newTasksFixture(t)
	user := &entity.User{ID: uid, CurrentStreak: 6, LastTaskDate: ptr(day(-1))}
	tx := f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
	tx.Times(2)
	f.tasks.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*entity.Task, error) {
			return &entity.Task{ID: id, UserID: uid, Date: day(0)}, nil
		}).Times(2)
	f.tasks.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.users.EXPECT().FindByIDForUpdate(gomock.Any(), uid).DoAndReturn(
		func(context.Context, uuid.UUID) (*entity.User, error) {
			copied := *user
			return &copied, nil
		}).Times(2)
	var credited []int
	f.users.EXPECT().AddPoints(gomock.Any(), uid, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, amount int) error {
			credited = append(credited, amount)
			user.Points += amount
			return nil
		}).Times(2)
	f.users.EXPECT().UpdateStreak(gomock.Any(), uid, gomock.Any(), day(0)).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, streak int, date time.Time) error {
			user.CurrentStreak = streak
			user.LastTaskDate = &date
			return nil
		}).Times(2)

	for range 2 {
		_, _, err := f.svc.UpdateTask(context.Background(), uid, uuid.New(), &service.UpdateTaskRequest{Completed: ptr(true)})
		require.NoError(t, err)
	}
	assert.Equal(t, []int{60, 10}, credited)
	assert.Equal(t, 70, user.Points)
	assert.Equal(t, 7, user.CurrentStreak)
}

func TestUpdateTaskNoAward(t *testing.T) {
	uid := uuid.New()
	taskID := uuid.New()
	t.Run("already completed", func(t *testing.T) {
		f := newTasksFixture(t)
		runTx(f.tx)
		f.tasks.EXPECT().GetByIDForUpdate(gomock.Any(), taskID).Return(&entity.Task{ID: taskID, UserID: uid, Completed: true}, nil)
		f.tasks.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		task, reward, err := f.svc.UpdateTask(context.Background(), uid, taskID, &service.UpdateTaskRequest{Completed: ptr(true)})
		require.NoError(t, err)
		assert.True(t, task.Completed)
		assert.Nil(t, reward)
	})
	t.Run("progress only", func(t *testing.T) {
		f := newTasksFixture(t)
		runTx(f.tx)
		f.tasks.EXPECT().GetByIDForUpdate(gomock.Any(), taskID).Return(&entity.Task{ID: taskID, UserID: uid}, nil)
		f.tasks.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		task, reward, err := f.svc.UpdateTask(context.Background(), uid, taskID, &service.UpdateTaskRequest{Current: ptr(1200)})
		require.NoError(t, err)
		assert.Equal(t, 1200, task.Current)
		assert.False(t, task.Completed)
		assert.Nil(t, reward)
	})
	t.Run("uncompleting", func(t *testing.T) {
		f := newTasksFixture(t)
		runTx(f.tx)
		f.tasks.EXPECT().GetByIDForUpdate(gomock.Any(), taskID).Return(&entity.Task{ID: taskID, UserID: uid, Completed: true}, nil)
		f.tasks.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		task, reward, err := f.svc.UpdateTask(context.Background(), uid, taskID, &service.UpdateTaskRequest{Completed: ptr(false)})
		require.NoError(t, err)
		assert.False(t, task.Completed)
		assert.Nil(t, reward)
	})
}

func TestUpdateTaskErrors(t *testing.T) {
	uid := uuid.New()
	taskID := uuid.New()
	t.Run("foreign task", func(t *testing.T) {
		f := newTasksFixture(t)
		runTx(f.tx)
		f.tasks.EXPECT().GetByIDForUpdate(gomock.Any(), taskID).Return(&entity.Task{ID: taskID, UserID: uuid.New()}, nil)
		_, _, err := f.svc.UpdateTask(context.Background(), uid, taskID, &service.UpdateTaskRequest{Completed: ptr(true)})
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
	t.Run("missing task", func(t *testing.T) {
		f := newTasksFixture(t)
		runTx(f.tx)
		f.tasks.EXPECT().GetByIDForUpdate(gomock.Any(), taskID).Return(nil, errorvalues.ErrTaskNotFound)
		_, _, err := f.svc.UpdateTask(context.Background(), uid, taskID, &service.UpdateTaskRequest{Completed: ptr(true)})
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
	t.Run("negative progress", func(t *testing.T) {
		f := newTasksFixture(t)
		_, _, err := f.svc.UpdateTask(context.Background(), uid, taskID, &service.UpdateTaskRequest{Current: ptr(-1)})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("points write fails", func(t *testing.T) {
		f := newTasksFixture(t)
		runTx(f.tx)
		f.tasks.EXPECT().GetByIDForUpdate(gomock.Any(), taskID).Return(&entity.Task{ID: taskID, UserID: uid}, nil)
		f.tasks.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		f.users.EXPECT().FindByIDForUpdate(gomock.Any(), uid).Return(&entity.User{ID: uid}, nil)
		f.users.EXPECT().AddPoints(gomock.Any(), uid, 10).Return(errors.New("connection reset"))
		_, _, err := f.svc.UpdateTask(context.Background(), uid, taskID, &service.UpdateTaskRequest{Completed: ptr(true)})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
}
