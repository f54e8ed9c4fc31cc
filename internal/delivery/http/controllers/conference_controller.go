package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	h "conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

// CreateConferenceRequest is the request body for POST /conferences. Name is
// required; missing city and topics get server defaults.
type CreateConferenceRequest struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Topics       []string   `json:"topics"`
	City         string     `json:"city"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	MaxAttendees int        `json:"max_attendees"`
}

// Validate implements Validator.
func (c CreateConferenceRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must be non-negative")
	}
	return errs
}

// UpdateConferenceRequest is the request body for PUT /conferences/{conferenceID}.
// All fields optional; omitted fields are unchanged.
type UpdateConferenceRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Topics       []string   `json:"topics"`
	City         *string    `json:"city"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	MaxAttendees *int       `json:"max_attendees"`
}

// Validate implements Validator.
func (u UpdateConferenceRequest) Validate() []string {
	var errs []string
	if u.MaxAttendees != nil && *u.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must be non-negative")
	}
	return errs
}

// QueryConferencesRequest is the request body for POST /conferences/query.
type QueryConferencesRequest struct {
	Filters []query.Filter `json:"filters"`
}

// ConferenceSuccessResponse is the success envelope for single-conference endpoints.
type ConferenceSuccessResponse struct {
	Data  *domain.Conference `json:"data"`
	Error *h.APIError        `json:"error"`
}

// ConferenceListSuccessResponse is the success envelope for conference list endpoints.
type ConferenceListSuccessResponse struct {
	Data  []*domain.Conference `json:"data"`
	Error *h.APIError          `json:"error"`
}

type ConferenceController struct {
	Logger  *slog.Logger
	Service domain.ConferenceService
}

func NewConferenceController(logger *slog.Logger, svc domain.ConferenceService) *ConferenceController {
	return &ConferenceController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateConference godoc
// @Summary Create a conference
// @Description Create a new conference. The authenticated caller becomes the organizer. Missing city and topics get defaults; month is derived from start_date; seats_available starts at max_attendees. A confirmation email is dispatched in the background.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateConferenceRequest true "Conference data"
// @Success 201 {object} controllers.ConferenceSuccessResponse "data contains the created conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences [post]
func (c *ConferenceController) CreateConference(w http.ResponseWriter, r *http.Request) {
	var req CreateConferenceRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conf := &domain.Conference{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	}
	created, err := c.Service.CreateConference(r.Context(), profileID, conf)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, created)
}

// UpdateConference godoc
// @Summary Update a conference
// @Description Partially updates a conference. Only the organizer can update. Month follows start_date; a max_attendees change moves seats_available by the same delta, clamped to [0, max_attendees].
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param body body UpdateConferenceRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.ConferenceSuccessResponse "data contains the updated conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [put]
func (c *ConferenceController) UpdateConference(w http.ResponseWriter, r *http.Request) {
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	var req UpdateConferenceRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := &domain.ConferenceUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	}
	conf, err := c.Service.UpdateConference(r.Context(), conferenceID, profileID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "conference not found")
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
	h.WriteJSONSuccess(w, http.StatusOK, conf)
}

// GetConference godoc
// @Summary Get a conference by ID
// @Description Returns a single conference. Public.
// @Tags conferences
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.ConferenceSuccessResponse "data contains the conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [get]
func (c *ConferenceController) GetConference(w http.ResponseWriter, r *http.Request) {
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	conf, err := c.Service.GetConference(r.Context(), conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, conf)
}

// QueryConferences godoc
// @Summary Query conferences with filters
// @Description Returns conferences matching all given (field, operator, value) filters. Fields: CITY, TOPIC, MONTH, MAX_ATTENDEES. Operators: EQ, GT, GTEQ, LT, LTEQ, NE. At most one field may carry a non-EQ operator. Public.
// @Tags conferences
// @Accept json
// @Produce json
// @Param body body QueryConferencesRequest true "Filter triples"
// @Success 200 {object} controllers.ConferenceListSuccessResponse "data is an array of conferences"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid filter set)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/query [post]
func (c *ConferenceController) QueryConferences(w http.ResponseWriter, r *http.Request) {
	var req QueryConferencesRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	confs, err := c.Service.QueryConferences(r.Context(), req.Filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if confs == nil {
		confs = []*domain.Conference{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, confs)
}

// ListConferencesCreated godoc
// @Summary List conferences created by the caller
// @Description Returns conferences where the authenticated caller is the organizer.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ConferenceListSuccessResponse "data is an array of conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/created [get]
func (c *ConferenceController) ListConferencesCreated(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	confs, err := c.Service.ListConferencesCreated(r.Context(), profileID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if confs == nil {
		confs = []*domain.Conference{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, confs)
}
