package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/internal/metrics"
	"github.com/limbo/vital/internal/repository"
	"github.com/limbo/vital/pkg/aiclient"
	"github.com/limbo/vital/pkg/entity"
)

const symptomSystemPrompt = `You are a preventive healthcare assistant reviewing a logged symptom.
Give two or three short sentences of practical guidance. Never diagnose or prescribe.
Say when the user should see a doctor.

USER MEDICAL CONTEXT:
%s`

const symptomMaxTokens = 200

type SymptomsService struct {
	symptoms repository.SymptomsRepositoryI
	users    repository.UsersRepositoryI
	ai       AICompleter
}

func NewSymptomsService(symptomsRepo repository.SymptomsRepositoryI, usersRepo repository.UsersRepositoryI, ai AICompleter) *SymptomsService {
	if symptomsRepo == nil || usersRepo == nil || ai == nil {
		log.Fatal("provided nil dependency for symptomsService")
	}
	return &SymptomsService{
		symptoms: symptomsRepo,
		users:    usersRepo,
		ai:       ai,
	}
}

// RiskFor maps severity to a risk tier.
func RiskFor(severity int) entity.RiskLevel {
	switch {
	case severity > 7:
		return entity.RiskHigh
	case severity > 4:
		return entity.RiskMedium
	default:
		return entity.RiskLow
	}
}

func symptomFallback(description string) string {
	return fmt.Sprintf("Based on your symptom of %s, it is recommended to rest and hydrate. Consult a doctor if it persists.", description)
}

func (ss *SymptomsService) CreateSymptom(ctx context.Context, uid uuid.UUID, req *CreateSymptomRequest) (*entity.Symptom, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	symptom := &entity.Symptom{
		UserID:      uid,
		Description: req.Description,
		Severity:    req.Severity,
		Duration:    req.Duration,
		RiskLevel:   RiskFor(req.Severity),
		AIAnalysis:  ss.analyze(ctx, uid, req),
	}
	created, err := ss.symptoms.Create(ctx, symptom)
	if err != nil {
		if errors.Is(err, errorvalues.ErrIdentityNotFound) {
			return nil, err
		}
		return nil, errors.New("symptoms repository error: " + err.Error())
	}
	return created, nil
}

func (ss *SymptomsService) analyze(ctx context.Context, uid uuid.UUID, req *CreateSymptomRequest) string {
	var user *entity.User
	if u, err := ss.users.FindByID(ctx, uid); err == nil {
		user = u
	}
	analysis, err := ss.ai.Complete(ctx, aiclient.CompletionRequest{
		System: fmt.Sprintf(symptomSystemPrompt, medicalContext(user)),
		Message: fmt.Sprintf("Symptom: %s\nSeverity: %d/10\nDuration: %d day(s)",
			req.Description, req.Severity, req.Duration),
		MaxTokens: symptomMaxTokens,
	})
	if err != nil {
		logAIFailure(ctx, "symptom analysis failed", err)
		metrics.RecordAIFallback("symptom")
		return symptomFallback(req.Description)
	}
	return analysis
}

func (ss *SymptomsService) ListSymptoms(ctx context.Context, uid uuid.UUID) ([]*entity.Symptom, error) {
	symptoms, err := ss.symptoms.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("symptoms repository error: " + err.Error())
	}
	return symptoms, nil
}
