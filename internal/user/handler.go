package user

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
	service      Service
	whygoService whygo.Service
	settings     *config.Settings
}

func NewHandler(service Service, whygoService whygo.Service, settings *config.Settings) *Handler {
	return &Handler{service: service, whygoService: whygoService, settings: settings}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	person, err := h.service.Login(r.Context(), dto.Email)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			http.Error(w, "email not found", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Login failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateJWT(person.ID, string(person.Level), h.settings.TokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.settings.TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	config.JSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		PersonID:    person.ID,
		Name:        person.Name,
		Level:       string(person.Level),
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	h.writeProfile(w, r, claims.PersonID)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")
	if personID == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}
	h.writeProfile(w, r, personID)
}

func (h *Handler) writeProfile(w http.ResponseWriter, r *http.Request, personID string) {
	log := config.WithContext(r.Context())

	profile, err := h.service.GetProfile(personID)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			http.Error(w, "person not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load profile")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, profile)
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	person, err := h.service.UpdateProfile(r.Context(), claims.PersonID, dto)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			http.Error(w, "person not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to update profile")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, person)
}

// PersonOutcomes lists every outcome the person owns across all goal tiers.
func (h *Handler) PersonOutcomes(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")
	if personID == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	outcomes := h.whygoService.OutcomesForPerson(personID)
	if outcomes == nil {
		outcomes = []whygo.Outcome{}
	}
	config.JSON(w, http.StatusOK, outcomes)
}
