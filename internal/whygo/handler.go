package whygo

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/auth"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CompanyDashboard(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.CompanyDashboard())
}

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.ListDepartments())
}

func (h *Handler) DepartmentDashboard(w http.ResponseWriter, r *http.Request) {
	deptID := chi.URLParam(r, "id")
	if deptID == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}
	config.JSON(w, http.StatusOK, h.service.DepartmentDashboard(deptID))
}

func (h *Handler) ListIndividualGoals(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personId")
	if personID == "" {
		http.Error(w, "person id required", http.StatusBadRequest)
		return
	}
	goals := h.service.IndividualGoalsForPerson(personID)
	if goals == nil {
		goals = []IndividualWhyGO{}
	}
	config.JSON(w, http.StatusOK, goals)
}

func (h *Handler) CreateIndividualGoal(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateIndividualGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.PersonID == "" {
		dto.PersonID = claims.PersonID
	}

	goal, err := h.service.CreateIndividualGoal(r.Context(), dto)
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			config.JSON(w, http.StatusBadRequest, map[string]any{"errors": validationErr.Messages})
		case errors.Is(err, ErrGoalExists):
			http.Error(w, "goal already exists", http.StatusConflict)
		default:
			log.WithError(err).Error("Failed to create individual goal")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, goal)
}

func (h *Handler) ApproveIndividualGoal(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	goalID := chi.URLParam(r, "id")
	if goalID == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	goal, err := h.service.ApproveIndividualGoal(r.Context(), claims.PersonID, goalID)
	if err != nil {
		switch {
		case errors.Is(err, ErrApprovalDenied):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, ErrGoalNotFound):
			http.Error(w, "goal not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to approve goal")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, goal)
}

func (h *Handler) GetOutcome(w http.ResponseWriter, r *http.Request) {
	outcomeID := chi.URLParam(r, "id")
	if outcomeID == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	details, err := h.service.OutcomeDetails(outcomeID)
	if err != nil {
		if errors.Is(err, ErrOutcomeNotFound) {
			http.Error(w, "outcome not found", http.StatusNotFound)
			return
		}
		config.WithContext(r.Context()).WithError(err).Error("Failed to load outcome")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, details)
}
