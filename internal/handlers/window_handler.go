package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

// ScheduleSource yields the schedule snapshot handlers pass into window
// operations.
type ScheduleSource interface {
	Current() entity.ScheduleConfig
}

type WindowHandler struct {
	window   contract.WindowService
	intake   contract.IntakeService
	schedule ScheduleSource
	token    string
	log      zerolog.Logger
}

func New(window contract.WindowService, intake contract.IntakeService, schedule ScheduleSource, token string, log zerolog.Logger) *WindowHandler {
	return &WindowHandler{
		window:   window,
		intake:   intake,
		schedule: schedule,
		token:    token,
		log:      log.With().Str("component", "handlers").Logger(),
	}
}

type submitRequest struct {
	Respondent string `json:"respondent"`
	Payload    string `json:"payload"`
}

type submitResponse struct {
	ID          int64     `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type statusResponse struct {
	Accepting     bool       `json:"accepting"`
	ResponseCount int        `json:"response_count"`
	ResponseLimit *int       `json:"response_limit,omitempty"`
	NextOpen      *time.Time `json:"next_open,omitempty"`
	NextClose     *time.Time `json:"next_close,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleSubmit receives a form submission and records it if the window is
// open.
func (h *WindowHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.authorized(r) {
		h.respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Respondent) == "" {
		h.respondError(w, http.StatusBadRequest, "respondent is required")
		return
	}

	sub, err := h.intake.Submit(r.Context(), req.Respondent, req.Payload)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrWindowClosed):
			h.respondError(w, http.StatusForbidden, "submission window is closed")
		case errors.Is(err, entity.ErrFormNotFound):
			h.respondError(w, http.StatusNotFound, "form not found")
		default:
			h.log.Error().Err(err).Msg("failed to record submission")
			h.respondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.respondJSON(w, http.StatusCreated, submitResponse{
		ID:          sub.ID,
		SubmittedAt: sub.SubmittedAt,
	})
}

// HandleStatus reports whether the window is open and when the next edges
// fire.
func (h *WindowHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	status, err := h.window.Status(h.schedule.Current(), time.Now())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read window status")
		h.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := statusResponse{
		Accepting:     status.Accepting,
		ResponseCount: status.ResponseCount,
		ResponseLimit: status.ResponseLimit,
	}
	if !status.NextOpen.IsZero() {
		next := status.NextOpen
		resp.NextOpen = &next
	}
	if !status.NextClose.IsZero() {
		next := status.NextClose
		resp.NextClose = &next
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// HandleOpen opens the window immediately, outside the weekly schedule.
func (h *WindowHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	h.handleOverride(w, r, h.window.Open, "window opened")
}

// HandleClose closes the window immediately, outside the weekly schedule.
func (h *WindowHandler) HandleClose(w http.ResponseWriter, r *http.Request) {
	h.handleOverride(w, r, h.window.Close, "window closed")
}

func (h *WindowHandler) handleOverride(w http.ResponseWriter, r *http.Request, action func(entity.ScheduleConfig) error, message string) {
	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !h.authorized(r) {
		h.respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	if err := action(h.schedule.Current()); err != nil {
		h.log.Error().Err(err).Str("action", message).Msg("manual override failed")
		h.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": message})
}

func (h *WindowHandler) authorized(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	given := r.Header.Get("X-Form-Token")
	return subtle.ConstantTimeCompare([]byte(given), []byte(h.token)) == 1
}

func (h *WindowHandler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *WindowHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, errorResponse{Error: message})
}
