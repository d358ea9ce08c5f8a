package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/internal/repository"
	"github.com/limbo/vital/pkg/entity"
)

type ProfileService struct {
	tx    repository.TxManagerI
	users repository.UsersRepositoryI
}

func NewProfileService(tx repository.TxManagerI, usersRepo repository.UsersRepositoryI) *ProfileService {
	if tx == nil || usersRepo == nil {
		log.Fatal("provided nil dependency for profileService")
	}
	return &ProfileService{
		tx:    tx,
		users: usersRepo,
	}
}

func (ps *ProfileService) UpdateProfile(ctx context.Context, uid uuid.UUID, req *ProfileUpdateRequest) (*entity.User, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	var updated *entity.User
	err := ps.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := ps.users.FindByIDForUpdate(ctx, uid)
		if err != nil {
			return err
		}
		applyProfileUpdate(user, req)
		updated, err = ps.users.UpdateProfile(ctx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrIdentityNotFound) {
			return nil, err
		}
		return nil, errors.New("updating profile error: " + err.Error())
	}
	return updated, nil
}

// applyProfileUpdate merges set fields of req into user and recomputes the
// derived ones.
func applyProfileUpdate(user *entity.User, req *ProfileUpdateRequest) {
	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Height != nil {
		user.Height = req.Height
	}
	if req.Weight != nil {
		user.Weight = req.Weight
	}
	if req.Lifestyle != nil {
		user.Lifestyle = req.Lifestyle
	}
	if req.Allergies != nil {
		user.Allergies = req.Allergies
	}
	if req.PastDiseases != nil {
		user.PastDiseases = req.PastDiseases
	}
	if req.CurrentConditions != nil {
		user.CurrentConditions = req.CurrentConditions
	}
	if user.Height != nil && user.Weight != nil {
		bmi := BMI(*user.Height, *user.Weight)
		user.BMI = &bmi
	}
	if req.Questionnaire != nil {
		user.Questionnaire = req.Questionnaire
		scores := ScoreQuestionnaire(req.Questionnaire)
		user.PhysicalScore = scores.Physical
		user.MentalScore = scores.Mental
		user.OverallScore = scores.Overall
	}
}
