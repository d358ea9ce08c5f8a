package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/limbo/vital/internal/service"
	"github.com/limbo/vital/pkg/httputil"
)

// AI calls get longer than plain requests.
const aiRequestTimeout = 45 * time.Second

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ImageAnalysisResponse struct {
	Analysis string `json:"analysis"`
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// nonNil keeps empty lists rendered as [] instead of null.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tasks, err := s.tasksService.ListTasks(ctx, user.ID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, logger, "listing tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, nonNil(tasks))
}

func (s *Server) GenerateTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tasks, err := s.tasksService.GenerateDailyTasks(ctx, user.ID)
	if err != nil {
		writeServiceError(w, logger, "generating tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, nonNil(tasks))
	logger.Info("daily tasks ensured")
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	id, err := pathID(r)
	if err != nil {
		logger.Warn("task update error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req service.UpdateTaskRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Warn("task update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, reward, err := s.tasksService.UpdateTask(ctx, user.ID, id, &req)
	if err != nil {
		writeServiceError(w, logger, "task update", err)
		return
	}
	if reward != nil {
		logger.Info("task completed",
			slog.Int("points", reward.Points),
			slog.Int("bonus", reward.Bonus),
			slog.Int("streak", reward.Streak))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) CreateSymptom(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	var req service.CreateSymptomRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("symptom creation error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), aiRequestTimeout)
	defer cancel()
	symptom, err := s.symptomsService.CreateSymptom(ctx, user.ID, &req)
	if err != nil {
		writeServiceError(w, logger, "symptom creation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, symptom)
	logger.Info("symptom logged", slog.String("risk", string(symptom.RiskLevel)))
}

func (s *Server) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	symptoms, err := s.symptomsService.ListSymptoms(ctx, user.ID)
	if err != nil {
		writeServiceError(w, logger, "listing symptoms", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, nonNil(symptoms))
}

func (s *Server) CreateReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	var req service.CreateReminderRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("reminder creation error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminder, err := s.remindersService.CreateReminder(ctx, user.ID, &req)
	if err != nil {
		writeServiceError(w, logger, "reminder creation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, reminder)
	logger.Info("reminder created")
}

func (s *Server) ListReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminders, err := s.remindersService.ListReminders(ctx, user.ID)
	if err != nil {
		writeServiceError(w, logger, "listing reminders", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, nonNil(reminders))
}

func (s *Server) ToggleReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	id, err := pathID(r)
	if err != nil {
		logger.Warn("reminder toggle error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reminder id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminder, err := s.remindersService.ToggleReminder(ctx, user.ID, id)
	if err != nil {
		writeServiceError(w, logger, "reminder toggle", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reminder)
}

func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	var req service.ChatRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("chat error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), aiRequestTimeout)
	defer cancel()
	reply, err := s.chatService.Reply(ctx, user.ID, &req)
	if err != nil {
		writeServiceError(w, logger, "chat", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ChatResponse{Reply: reply})
}

func (s *Server) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, _ := GetUserFromContext(r)
	var req service.ImageAnalysisRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("image analysis error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), aiRequestTimeout)
	defer cancel()
	analysis, err := s.chatService.AnalyzeImage(ctx, user.ID, &req)
	if err != nil {
		writeServiceError(w, logger, "image analysis", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ImageAnalysisResponse{Analysis: analysis})
}

