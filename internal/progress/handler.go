package progress

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/auth"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	outcomeID := chi.URLParam(r, "id")
	if outcomeID == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	var dto RecordProgressDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quarter, err := whygo.ParseQuarter(dto.Quarter)
	if err != nil {
		http.Error(w, "quarter must be one of Q1, Q2, Q3, Q4", http.StatusBadRequest)
		return
	}
	if dto.Actual == "" {
		http.Error(w, "actual required", http.StatusBadRequest)
		return
	}

	outcome, err := h.service.RecordActual(r.Context(), RecordActualInput{
		OutcomeID:  outcomeID,
		Quarter:    quarter,
		Actual:     whygo.ParseActual(dto.Actual),
		RecordedBy: claims.PersonID,
		Notes:      dto.Notes,
		Blocker:    dto.Blocker,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrOutcomeNotFound):
			http.Error(w, "outcome not found", http.StatusNotFound)
		case errors.Is(err, ErrGoalArchived):
			http.Error(w, "goal is archived", http.StatusConflict)
		default:
			log.WithError(err).Error("Failed to record progress")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	status := outcome.StatusFor(quarter)
	var statusOut *whygo.Status
	if status != whygo.StatusNone {
		statusOut = &status
	}
	config.JSON(w, http.StatusOK, RecordProgressResponse{
		Outcome: *outcome,
		Quarter: quarter,
		Target:  outcome.TargetFor(quarter),
		Actual:  outcome.ActualFor(quarter),
		Status:  statusOut,
	})
}

func (h *Handler) OutcomeHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	outcomeID := chi.URLParam(r, "id")
	if outcomeID == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	history, err := h.service.OutcomeHistory(r.Context(), outcomeID)
	if err != nil {
		if errors.Is(err, ErrOutcomeNotFound) {
			http.Error(w, "outcome not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load outcome history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, history)
}
