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
	svcmocks "github.com/limbo/vital/internal/service/mocks"
	"github.com/limbo/vital/pkg/aiclient"
	"github.com/limbo/vital/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type symptomsFixture struct {
	svc      *service.SymptomsService
	symptoms *mocks.MockSymptomsRepositoryI
	users    *mocks.MockUsersRepositoryI
	ai       *svcmocks.MockAICompleter
}

func newSymptomsFixture(t *testing.T) symptomsFixture {
	ctrl := gomock.NewController(t)
	f := symptomsFixture{
		symptoms: mocks.NewMockSymptomsRepositoryI(ctrl),
		users:    mocks.NewMockUsersRepositoryI(ctrl),
		ai:       svcmocks.NewMockAICompleter(ctrl),
	}
	f.svc = service.NewSymptomsService(f.symptoms, f.users, f.ai)
	return f
}

// storeSymptom makes Create echo the symptom back with generated fields.
func storeSymptom(repo *mocks.MockSymptomsRepositoryI) {
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *entity.Symptom) (*entity.Symptom, error) {
			stored := *s
			stored.ID = uuid.New()
			stored.CreatedAt = time.Now()
			return &stored, nil
		})
}

func TestRiskFor(t *testing.T) {
	want := map[int]entity.RiskLevel{
		1: entity.RiskLow, 4: entity.RiskLow,
		5: entity.RiskMedium, 7: entity.RiskMedium,
		8: entity.RiskHigh, 10: entity.RiskHigh,
	}
	for severity, risk := range want {
		assert.Equal(t, risk, service.RiskFor(severity), severity)
	}
}

func TestCreateSymptom(t *testing.T) {
	uid := uuid.New()

	t.Run("with ai analysis", func(t *testing.T) {
		f := newSymptomsFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Age: ptr(34)}, nil)
		f.ai.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req aiclient.CompletionRequest) (string, error) {
				assert.Contains(t, req.Message, "headache")
				assert.Contains(t, req.System, "Age: 34")
				return "Rest in a dark room.", nil
			})
		storeSymptom(f.symptoms)

		symptom, err := f.svc.CreateSymptom(context.Background(), uid, &service.CreateSymptomRequest{
			Description: "headache", Severity: 8, Duration: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.RiskHigh, symptom.RiskLevel)
		assert.Equal(t, "Rest in a dark room.", symptom.AIAnalysis)
		assert.Equal(t, uid, symptom.UserID)
	})
	t.Run("fallback analysis", func(t *testing.T) {
		f := newSymptomsFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errors.New("db down"))
		f.ai.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", aiclient.ErrUnavailable)
		storeSymptom(f.symptoms)

		symptom, err := f.svc.CreateSymptom(context.Background(), uid, &service.CreateSymptomRequest{
			Description: "sore throat", Severity: 3, Duration: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.RiskLow, symptom.RiskLevel)
		assert.Equal(t, "Based on your symptom of sore throat, it is recommended to rest and hydrate. Consult a doctor if it persists.", symptom.AIAnalysis)
	})
	t.Run("invalid request", func(t *testing.T) {
		f := newSymptomsFixture(t)
		requests := []*service.CreateSymptomRequest{
			{Description: "ab", Severity: 5, Duration: 1},
			{Description: "cough", Severity: 0, Duration: 1},
			{Description: "cough", Severity: 11, Duration: 1},
			{Description: "cough", Severity: 5, Duration: 0},
		}
		for _, req := range requests {
			_, err := f.svc.CreateSymptom(context.Background(), uid, req)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		}
	})
}

func TestListSymptoms(t *testing.T) {
	f := newSymptomsFixture(t)
	uid := uuid.New()
	f.symptoms.EXPECT().ListByUser(gomock.Any(), uid).Return([]*entity.Symptom{{UserID: uid}}, nil)
	symptoms, err := f.svc.ListSymptoms(context.Background(), uid)
	assert.NoError(t, err)
	assert.Len(t, symptoms, 1)
}
