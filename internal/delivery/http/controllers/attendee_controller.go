package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// RegistrationResult reports the outcome of a registration or wishlist mutation.
type RegistrationResult struct {
	Success bool `json:"success"`
}

// RegistrationSuccessResponse is the success envelope for registration and wishlist mutations.
type RegistrationSuccessResponse struct {
	Data  RegistrationResult `json:"data"`
	Error *h.APIError        `json:"error"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// writeAttendeeError maps the registration error families to HTTP codes.
// The conflict family (already registered, no seats, already wishlisted)
// maps to 409; transient store contention maps to 503.
func (c *AttendeeController) writeAttendeeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		h.WriteJSONError(w, http.StatusServiceUnavailable, h.ErrCodeUnavailable, "store temporarily unavailable, retry later")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}

// RegisterForConference godoc
// @Summary Register for a conference
// @Description Registers the authenticated caller for the conference, taking one seat. Membership and the seat counter move atomically.
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data.success is true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered or no seats)"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable (store contention)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/registration [post]
func (c *AttendeeController) RegisterForConference(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	success, err := c.Service.RegisterForConference(r.Context(), profileID, conferenceID)
	if err != nil {
		c.writeAttendeeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, RegistrationResult{Success: success})
}

// UnregisterFromConference godoc
// @Summary Unregister from a conference
// @Description Removes the authenticated caller's registration and gives the seat back. success is false when the caller was not registered.
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data.success reports whether a registration was removed"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/registration [delete]
func (c *AttendeeController) UnregisterFromConference(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	success, err := c.Service.UnregisterFromConference(r.Context(), profileID, conferenceID)
	if err != nil {
		c.writeAttendeeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, RegistrationResult{Success: success})
}

// ListConferencesToAttend godoc
// @Summary List conferences the caller is registered for
// @Description Returns the authenticated caller's conferences in registration order.
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ConferenceListSuccessResponse "data is an array of conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/attending [get]
func (c *AttendeeController) ListConferencesToAttend(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	confs, err := c.Service.ListConferencesToAttend(r.Context(), profileID)
	if err != nil {
		c.writeAttendeeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, confs)
}

// AddSessionToWishlist godoc
// @Summary Add a session to the caller's wishlist
// @Description Adds the session to the authenticated caller's wishlist. Any user may wishlist a session; conference registration is not required.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data.success is true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already in wishlist)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/{sessionID}/wishlist [post]
func (c *AttendeeController) AddSessionToWishlist(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	success, err := c.Service.AddSessionToWishlist(r.Context(), profileID, conferenceID, sessionID)
	if err != nil {
		c.writeAttendeeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, RegistrationResult{Success: success})
}

// RemoveSessionFromWishlist godoc
// @Summary Remove a session from the caller's wishlist
// @Description Removes the session from the authenticated caller's wishlist. success is false when the session was not on it.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data.success reports whether an entry was removed"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/{sessionID}/wishlist [delete]
func (c *AttendeeController) RemoveSessionFromWishlist(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conferenceID, ok := pathID(w, r, "conferenceID")
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "sessionID")
	if !ok {
		return
	}
	success, err := c.Service.RemoveSessionFromWishlist(r.Context(), profileID, conferenceID, sessionID)
	if err != nil {
		c.writeAttendeeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, RegistrationResult{Success: success})
}

// ListSessionsInWishlist godoc
// @Summary List the caller's wishlisted sessions
// @Description Returns the authenticated caller's wishlist sessions across all conferences, in the order they were added.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SessionListSuccessResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wishlist [get]
func (c *AttendeeController) ListSessionsInWishlist(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sessions, err := c.Service.ListSessionsInWishlist(r.Context(), profileID)
	if err != nil {
		c.writeAttendeeError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}
