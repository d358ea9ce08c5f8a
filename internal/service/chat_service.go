package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/limbo/vital/internal/metrics"
	"github.com/limbo/vital/internal/repository"
	"github.com/limbo/vital/pkg/aiclient"
	"github.com/limbo/vital/pkg/entity"
)

const (
	ChatFallback       = "Please describe your health concern and I'll provide focused guidance."
	ChatEmptyReply     = "Could you describe your concern more specifically?"
	ImageFallback      = "Image analysis is temporarily unavailable. Please describe your concern in text instead.\n\nDisclaimer: This is NOT a medical diagnosis."
	ImageEmptyReply    = "Unable to analyze this image. Please try with a clearer photo."
	defaultImagePrompt = "Please analyze this image for any health concerns."

	chatMaxTokens  = 200
	imageMaxTokens = 300
)

const chatSystemPrompt = `You are a precise preventive healthcare assistant.

RESPONSE STRUCTURE:
1. DIRECT ANSWER to the main problem first (1-2 sentences max)
2. Secondary guidance ONLY if directly relevant
3. End with "Consult a doctor if symptoms persist" ONLY for concerning symptoms

STRICT RULES:
- Problem-first approach: address the core issue immediately
- NO generic wellness advice unless specifically asked
- NEVER diagnose or prescribe medications
- Keep total response under 50 words unless complex question
- Be warm but efficient

USER MEDICAL CONTEXT:
%s`

const imageSystemPrompt = `You are a medical image analysis assistant for preliminary health guidance only.

RESPONSE FORMAT:
1. **Observation**: brief description of what you see (1 sentence)
2. **Possible Condition**: most likely explanation (1 sentence)
3. **Recommended Action**: what the user should do next (1 sentence)

DISCLAIMER (always include):
"This is NOT a medical diagnosis. Please consult a healthcare professional for accurate evaluation."

RULES:
- Be observational, not diagnostic
- Focus on visible symptoms only
- Suggest professional consultation for anything concerning
- Consider user context: Age %s, Allergies: %s`

type ChatService struct {
	ai    AICompleter
	users repository.UsersRepositoryI
}

func NewChatService(ai AICompleter, usersRepo repository.UsersRepositoryI) *ChatService {
	if ai == nil || usersRepo == nil {
		log.Fatal("provided nil dependency for chatService")
	}
	return &ChatService{
		ai:    ai,
		users: usersRepo,
	}
}

func (cs *ChatService) Reply(ctx context.Context, uid uuid.UUID, req *ChatRequest) (string, error) {
	if err := checkRequest(req); err != nil {
		return "", err
	}
	user := cs.lookupUser(ctx, uid)
	reply, err := cs.ai.Complete(ctx, aiclient.CompletionRequest{
		System:    fmt.Sprintf(chatSystemPrompt, medicalContext(user)),
		Message:   req.Message,
		MaxTokens: chatMaxTokens,
	})
	switch {
	case errors.Is(err, aiclient.ErrEmptyResponse):
		return ChatEmptyReply, nil
	case err != nil:
		logAIFailure(ctx, "chat completion failed", err)
		metrics.RecordAIFallback("chat")
		return ChatFallback, nil
	}
	return reply, nil
}

func (cs *ChatService) AnalyzeImage(ctx context.Context, uid uuid.UUID, req *ImageAnalysisRequest) (string, error) {
	if err := checkRequest(req); err != nil {
		return "", err
	}
	user := cs.lookupUser(ctx, uid)
	prompt := strings.TrimSpace(req.Context)
	if prompt == "" {
		prompt = defaultImagePrompt
	}
	age, allergies := "unknown", "none known"
	if user != nil {
		if user.Age != nil {
			age = fmt.Sprint(*user.Age)
		}
		if user.Allergies != nil && *user.Allergies != "" {
			allergies = *user.Allergies
		}
	}
	analysis, err := cs.ai.Complete(ctx, aiclient.CompletionRequest{
		System:    fmt.Sprintf(imageSystemPrompt, age, allergies),
		Message:   prompt,
		ImageURL:  req.Image,
		MaxTokens: imageMaxTokens,
	})
	switch {
	case errors.Is(err, aiclient.ErrEmptyResponse):
		return ImageEmptyReply, nil
	case err != nil:
		logAIFailure(ctx, "image analysis failed", err)
		metrics.RecordAIFallback("image")
		return ImageFallback, nil
	}
	return analysis, nil
}

// lookupUser loads profile context for prompts. A failed lookup only makes
// the prompt less specific.
func (cs *ChatService) lookupUser(ctx context.Context, uid uuid.UUID) *entity.User {
	user, err := cs.users.FindByID(ctx, uid)
	if err != nil {
		slog.WarnContext(ctx, "loading user for prompt failed", slog.String("error", err.Error()))
		return nil
	}
	return user
}

func logAIFailure(ctx context.Context, msg string, err error) {
	if errors.Is(err, aiclient.ErrUnavailable) {
		return
	}
	slog.WarnContext(ctx, msg, slog.String("error", err.Error()))
}

func medicalContext(user *entity.User) string {
	if user == nil {
		user = &entity.User{PhysicalScore: baseScore, MentalScore: baseScore}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "- Age: %s, Gender: %s\n", intOr(user.Age, "unknown"), strOr(user.Gender, "unknown"))
	fmt.Fprintf(&b, "- Health Scores: Physical %d/100, Mental %d/100\n", user.PhysicalScore, user.MentalScore)
	fmt.Fprintf(&b, "- Lifestyle: %s\n", strOr(user.Lifestyle, "not specified"))
	fmt.Fprintf(&b, "- Known Allergies: %s\n", strOr(user.Allergies, "none reported"))
	fmt.Fprintf(&b, "- Past Conditions: %s\n", strOr(user.PastDiseases, "none reported"))
	fmt.Fprintf(&b, "- Current Conditions: %s", strOr(user.CurrentConditions, "none reported"))
	return b.String()
}

func strOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func intOr(v *int, fallback string) string {
	if v == nil {
		return fallback
	}
	return fmt.Sprint(*v)
}
