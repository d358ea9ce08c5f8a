package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/internal/repository"
	"github.com/limbo/vital/pkg/entity"
)

type RemindersService struct {
	repo repository.RemindersRepositoryI
}

func NewRemindersService(remindersRepo repository.RemindersRepositoryI) *RemindersService {
	if remindersRepo == nil {
		log.Fatal("provided nil remindersRepo")
	}
	return &RemindersService{
		repo: remindersRepo,
	}
}

func (rs *RemindersService) CreateReminder(ctx context.Context, uid uuid.UUID, req *CreateReminderRequest) (*entity.Reminder, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	when, err := time.Parse(time.RFC3339, req.Datetime)
	if err != nil {
		return nil, errorvalues.ValidationFailed("datetime must be RFC3339")
	}
	reminder, err := rs.repo.Create(ctx, &entity.Reminder{
		UserID:   uid,
		Type:     entity.ReminderType(req.Type),
		Title:    req.Title,
		Datetime: when.UTC(),
		Dosage:   req.Dosage,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrIdentityNotFound) {
			return nil, err
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return reminder, nil
}

func (rs *RemindersService) ListReminders(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error) {
	reminders, err := rs.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return reminders, nil
}

func (rs *RemindersService) ToggleReminder(ctx context.Context, uid, id uuid.UUID) (*entity.Reminder, error) {
	reminder, err := rs.repo.Toggle(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReminderNotFound) {
			return nil, err
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return reminder, nil
}
