package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/vital/pkg/aiclient"
	"github.com/limbo/vital/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type NonceRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet_address"`
}

type VerifyRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet_address"`
	Signature     string `json:"signature" validate:"required,max=140"`
}

type ProfileUpdateRequest struct {
	Name              *string               `json:"name" validate:"omitempty,min=1,max=100"`
	Age               *int                  `json:"age" validate:"omitempty,min=1,max=120"`
	Gender            *string               `json:"gender" validate:"omitempty,oneof=male female non-binary prefer-not-to-say"`
	Height            *int                  `json:"height" validate:"omitempty,min=50,max=250"`
	Weight            *int                  `json:"weight" validate:"omitempty,min=10,max=400"`
	Lifestyle         *string               `json:"lifestyle" validate:"omitempty,oneof=student corporate active retired other"`
	Allergies         *string               `json:"allergies" validate:"omitempty,max=1000"`
	PastDiseases      *string               `json:"pastDiseases" validate:"omitempty,max=2000"`
	CurrentConditions *string               `json:"currentConditions" validate:"omitempty,max=2000"`
	Questionnaire     *entity.Questionnaire `json:"questionnaire"`
}

type UpdateTaskRequest struct {
	Current   *int  `json:"current" validate:"omitempty,min=0,max=1000000"`
	Completed *bool `json:"completed"`
}

type CreateSymptomRequest struct {
	Description string `json:"description" validate:"required,min=3,max=1000"`
	Severity    int    `json:"severity" validate:"required,min=1,max=10"`
	Duration    int    `json:"duration" validate:"required,min=1,max=3650"`
}

type CreateReminderRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=200"`
	Type     string  `json:"type" validate:"required,oneof=medicine doctor test"`
	Datetime string  `json:"datetime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Dosage   *string `json:"dosage" validate:"omitempty,max=100"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type ImageAnalysisRequest struct {
	// Data URL or https URL of the picture
	Image   string `json:"image" validate:"required,max=10000000"`
	Context string `json:"context" validate:"max=1000"`
}

type ReferralRequest struct {
	ReferralCode string `json:"referralCode" validate:"required,alphanum,max=32"`
}

type AuthServiceI interface {
	// Validates wallet address, creates identity if needed and rotates its nonce.
	// Returns the nonce the wallet has to sign
	IssueChallenge(ctx context.Context, walletAddress string) (string, error)
	// Checks signature over the stored nonce. The nonce is rotated on every
	// attempt. On success a new session is bound to the identity
	VerifyResponse(ctx context.Context, req *VerifyRequest) (*entity.User, *entity.Session, error)
	// Resolves the identity bound to session
	CurrentIdentity(ctx context.Context, sessionID uuid.UUID) (*entity.User, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type TasksServiceI interface {
	// Lists tasks for date (YYYY-MM-DD), empty date means today
	ListTasks(ctx context.Context, uid uuid.UUID, date string) ([]*entity.Task, error)
	// Creates the default batch for today if missing, returns today's tasks
	GenerateDailyTasks(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error)
	// Applies update and, on a false->true completion, awards points and advances streak
	UpdateTask(ctx context.Context, uid, taskID uuid.UUID, req *UpdateTaskRequest) (*entity.Task, *entity.TaskReward, error)
}

type PointsServiceI interface {
	GetBalance(ctx context.Context, uid uuid.UUID) (*entity.Balance, error)
	AddPoints(ctx context.Context, uid uuid.UUID, amount int) error
	// Credits both sides of a referral once per identity
	ApplyReferral(ctx context.Context, uid uuid.UUID, code string) (*entity.Balance, error)
	// Generates referral code for user if it has none
	EnsureReferralCode(ctx context.Context, user *entity.User) (*entity.User, error)
}

type ProfileServiceI interface {
	UpdateProfile(ctx context.Context, uid uuid.UUID, req *ProfileUpdateRequest) (*entity.User, error)
}

type SymptomsServiceI interface {
	CreateSymptom(ctx context.Context, uid uuid.UUID, req *CreateSymptomRequest) (*entity.Symptom, error)
	ListSymptoms(ctx context.Context, uid uuid.UUID) ([]*entity.Symptom, error)
}

type RemindersServiceI interface {
	CreateReminder(ctx context.Context, uid uuid.UUID, req *CreateReminderRequest) (*entity.Reminder, error)
	ListReminders(ctx context.Context, uid uuid.UUID) ([]*entity.Reminder, error)
	ToggleReminder(ctx context.Context, uid, id uuid.UUID) (*entity.Reminder, error)
}

type ChatServiceI interface {
	// Returns assistant reply. Only request validation can fail, AI errors
	// turn into a fallback reply
	Reply(ctx context.Context, uid uuid.UUID, req *ChatRequest) (string, error)
	AnalyzeImage(ctx context.Context, uid uuid.UUID, req *ImageAnalysisRequest) (string, error)
}

type AICompleter interface {
	Complete(ctx context.Context, req aiclient.CompletionRequest) (string, error)
}
