package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// SpeakerRequest is the request body for speaker create and update.
type SpeakerRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (s SpeakerRequest) Validate() []string {
	if s.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

// SpeakerSuccessResponse is the success envelope for single-speaker endpoints.
type SpeakerSuccessResponse struct {
	Data  *domain.Speaker `json:"data"`
	Error *h.APIError     `json:"error"`
}

// SpeakerListSuccessResponse is the success envelope for speaker list endpoints.
type SpeakerListSuccessResponse struct {
	Data  []*domain.Speaker `json:"data"`
	Error *h.APIError       `json:"error"`
}

type SpeakerController struct {
	Logger   *slog.Logger
	Service  domain.SpeakerService
	Sessions domain.SessionService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService, sessions domain.SessionService) *SpeakerController {
	return &SpeakerController{
		Logger:   logger,
		Service:  svc,
		Sessions: sessions,
	}
}

// CreateSpeaker godoc
// @Summary Create a speaker
// @Description Create a speaker owned by the authenticated caller.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SpeakerRequest true "Speaker data"
// @Success 201 {object} controllers.SpeakerSuccessResponse "data contains the created speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [post]
func (c *SpeakerController) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req SpeakerRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	speaker, err := c.Service.CreateSpeaker(r.Context(), profileID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, speaker)
}

// UpdateSpeaker godoc
// @Summary Update a speaker
// @Description Rename a speaker. Only the owner may update.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param speakerID path string true "Speaker ID (UUID)"
// @Param body body SpeakerRequest true "Speaker data"
// @Success 200 {object} controllers.SpeakerSuccessResponse "data contains the updated speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID} [put]
func (c *SpeakerController) UpdateSpeaker(w http.ResponseWriter, r *http.Request) {
	speakerID, ok := pathID(w, r, "speakerID")
	if !ok {
		return
	}
	var req SpeakerRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	speaker, err := c.Service.UpdateSpeaker(r.Context(), speakerID, profileID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "speaker not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, speaker)
}

// GetSpeaker godoc
// @Summary Get a speaker by ID
// @Description Returns a single speaker. Public.
// @Tags speakers
// @Produce json
// @Param speakerID path string true "Speaker ID (UUID)"
// @Success 200 {object} controllers.SpeakerSuccessResponse "data contains the speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID} [get]
func (c *SpeakerController) GetSpeaker(w http.ResponseWriter, r *http.Request) {
	speakerID, ok := pathID(w, r, "speakerID")
	if !ok {
		return
	}
	speaker, err := c.Service.GetSpeaker(r.Context(), speakerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "speaker not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, speaker)
}

// ListSpeakers godoc
// @Summary List all speakers
// @Description Returns every speaker, ordered by name. Public.
// @Tags speakers
// @Produce json
// @Success 200 {object} controllers.SpeakerListSuccessResponse "data is an array of speakers"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.ListSpeakers(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, speakers)
}

// ListSessionsBySpeaker godoc
// @Summary List a speaker's sessions across all conferences
// @Description Returns every session the speaker appears in, regardless of conference. Public.
// @Tags speakers
// @Produce json
// @Param speakerID path string true "Speaker ID (UUID)"
// @Success 200 {object} controllers.SessionListSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID}/sessions [get]
func (c *SpeakerController) ListSessionsBySpeaker(w http.ResponseWriter, r *http.Request) {
	speakerID, ok := pathID(w, r, "speakerID")
	if !ok {
		return
	}
	sessions, err := c.Sessions.ListSessionsBySpeaker(r.Context(), speakerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "speaker not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}
