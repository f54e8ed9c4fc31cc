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

// CreateSessionRequest is the request body for POST /conferences/{conferenceID}/sessions.
type CreateSessionRequest struct {
	Name         string     `json:"name"`
	Highlights   []string   `json:"highlights"`
	SpeakerIDs   []string   `json:"speaker_ids"`
	Date         *time.Time `json:"date"`
	StartTime    string     `json:"start_time"`
	DurationMins int        `json:"duration_mins"`
	Type         string     `json:"type"`
	Location     string     `json:"location"`
}

// Validate implements Validator.
func (s CreateSessionRequest) Validate() []string {
	var errs []string
	if s.Name == "" {
		errs = append(errs, "name is required")
	}
	if s.DurationMins < 0 {
		errs = append(errs, "duration_mins must be non-negative")
	}
	return errs
}

// UpdateSessionRequest is the request body for PUT /conferences/{conferenceID}/sessions/{sessionID}.
// All fields optional; omitted fields are unchanged.
type UpdateSessionRequest struct {
	Name         *string    `json:"name"`
	Highlights   []string   `json:"highlights"`
	SpeakerIDs   []string   `json:"speaker_ids"`
	Date         *time.Time `json:"date"`
	StartTime    *string    `json:"start_time"`
	DurationMins *int       `json:"duration_mins"`
	Type         *string    `json:"type"`
	Location     *string    `json:"location"`
}

// Validate implements Validator.
func (s UpdateSessionRequest) Validate() []string {
	var errs []string
	if s.DurationMins != nil && *s.DurationMins < 0 {
		errs = append(errs, "duration_mins must be non-negative")
	}
	return errs
}

// QuerySessionsRequest is the request body for POST /conferences/{conferenceID}/sessions/query.
type QuerySessionsRequest struct {
	Filters []query.Filter `json:"filters"`
}

// SessionSuccessResponse is the success envelope for single-session endpoints.
type SessionSuccessResponse struct {
	Data  *domain.Session `json:"data"`
	Error *h.APIError     `json:"error"`
}

// SessionListSuccessResponse is the success envelope for session list endpoints.
type SessionListSuccessResponse struct {
	Data  []*domain.Session `json:"data"`
	Error *h.APIError       `json:"error"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// writeSessionError maps the common session error families to HTTP codes.
func (c *SessionController) writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}

// CreateSession godoc
// @Summary Create a session in a conference
// @Description Create a session. Only the conference organizer may create sessions. Type defaults to NOT_SPECIFIED; duration, location and highlights get defaults when omitted. Triggers a background featured-speaker check.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param body body CreateSessionRequest true "Session data"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	var req CreateSessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sess := &domain.Session{
		Name:         req.Name,
		Highlights:   req.Highlights,
		SpeakerIDs:   req.SpeakerIDs,
		Date:         req.Date,
		StartTime:    req.StartTime,
		DurationMins: req.DurationMins,
		Type:         domain.SessionType(req.Type),
		Location:     req.Location,
	}
	created, err := c.Service.CreateSession(r.Context(), conferenceID, profileID, sess)
	if err != nil {
		c.writeSessionError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, created)
}

// UpdateSession godoc
// @Summary Update a session
// @Description Partially updates a session. Only the conference organizer may update. Changed fields are re-validated like on create.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param sessionID path string true "Session ID (UUID)"
// @Param body body UpdateSessionRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the updated session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/{sessionID} [put]
func (c *SessionController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	var req UpdateSessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := &domain.SessionUpdate{
		Name:         req.Name,
		Highlights:   req.Highlights,
		SpeakerIDs:   req.SpeakerIDs,
		Date:         req.Date,
		StartTime:    req.StartTime,
		DurationMins: req.DurationMins,
		Location:     req.Location,
	}
	if req.Type != nil {
		t := domain.SessionType(*req.Type)
		upd.Type = &t
	}
	sess, err := c.Service.UpdateSession(r.Context(), conferenceID, sessionID, profileID, upd)
	if err != nil {
		c.writeSessionError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sess)
}

// GetSession godoc
// @Summary Get a session by ID
// @Description Returns a single session scoped to its conference. Public.
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/{sessionID} [get]
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	sess, err := c.Service.GetSession(r.Context(), conferenceID, sessionID)
	if err != nil {
		c.writeSessionError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sess)
}

// ListConferenceSessions godoc
// @Summary List all sessions of a conference
// @Description Returns every session of the conference, ordered by name. Public.
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.SessionListSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [get]
func (c *SessionController) ListConferenceSessions(w http.ResponseWriter, r *http.Request) {
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	sessions, err := c.Service.ListConferenceSessions(r.Context(), conferenceID)
	if err != nil {
		c.writeSessionError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// QuerySessions godoc
// @Summary Query sessions with filters
// @Description Returns the conference's sessions matching all given filters. Fields: START_TIME, DURATION_IN_MINS, TYPE_OF_SESSION, LOCATION. Operators: EQ, GT, GTEQ, LT, LTEQ, NE. At most one field may carry a non-EQ operator. Public.
// @Tags sessions
// @Accept json
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param body body QuerySessionsRequest true "Filter triples"
// @Success 200 {object} controllers.SessionListSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid filter set)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/query [post]
func (c *SessionController) QuerySessions(w http.ResponseWriter, r *http.Request) {
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	var req QuerySessionsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sessions, err := c.Service.QuerySessions(r.Context(), conferenceID, req.Filters)
	if err != nil {
		c.writeSessionError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListSessionsByType godoc
// @Summary List sessions of a conference by type
// @Description Returns the conference's sessions of the given type (WORKSHOP, LECTURE, KEYNOTE, CODELAB, NOT_SPECIFIED). Public.
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param type path string true "Session type"
// @Success 200 {object} controllers.SessionListSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown type)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/type/{type} [get]
func (c *SessionController) ListSessionsByType(w http.ResponseWriter, r *http.Request) {
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	sessions, err := c.Service.ListSessionsByType(r.Context(), conferenceID, domain.SessionType(r.PathValue("type")))
	if err != nil {
		c.writeSessionError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListSessionsByHighlight godoc
// @Summary List sessions of a conference by highlight
// @Description Returns the conference's sessions whose highlights contain the given value. Public.
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param highlight path string true "Highlight value"
// @Success 200 {object} controllers.SessionListSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/highlight/{highlight} [get]
func (c *SessionController) ListSessionsByHighlight(w http.ResponseWriter, r *http.Request) {
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	sessions, err := c.Service.ListSessionsByHighlight(r.Context(), conferenceID, r.PathValue("highlight"))
	if err != nil {
		c.writeSessionError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListDaytimeNonWorkshops godoc
// @Summary List non-workshop sessions starting before 19:00
// @Description Returns the conference's sessions that are not workshops and start before 19:00. Sessions without a start time are excluded. Public.
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.SessionListSuccessResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/daytime [get]
func (c *SessionController) ListDaytimeNonWorkshops(w http.ResponseWriter, r *http.Request) {
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	sessions, err := c.Service.ListDaytimeNonWorkshops(r.Context(), conferenceID)
	if err != nil {
		c.writeSessionError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}
