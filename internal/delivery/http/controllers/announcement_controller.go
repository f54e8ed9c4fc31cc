package controllers

import (
	"log/slog"
	"net/http"

	h "conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
)

// MessageResponse carries a published derived fact. Message is empty when
// nothing is currently published.
type MessageResponse struct {
	Message string `json:"message"`
}

// MessageSuccessResponse is the success envelope for announcement endpoints.
type MessageSuccessResponse struct {
	Data  MessageResponse `json:"data"`
	Error *h.APIError     `json:"error"`
}

type AnnouncementController struct {
	Logger  *slog.Logger
	Service domain.AnnouncementService
}

func NewAnnouncementController(logger *slog.Logger, svc domain.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		Logger:  logger,
		Service: svc,
	}
}

// GetAnnouncement godoc
// @Summary Get the current announcement
// @Description Returns the cached near-sold-out announcement. message is empty when none is published. Public.
// @Tags announcements
// @Produce json
// @Success 200 {object} controllers.MessageSuccessResponse "data.message holds the announcement"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /announcement [get]
func (c *AnnouncementController) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	msg, err := c.Service.GetAnnouncement(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: msg})
}

// GetFeaturedSpeaker godoc
// @Summary Get the current featured speaker
// @Description Returns the cached featured-speaker message. message is empty when none is published. Public.
// @Tags announcements
// @Produce json
// @Success 200 {object} controllers.MessageSuccessResponse "data.message holds the featured-speaker text"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /featured-speaker [get]
func (c *AnnouncementController) GetFeaturedSpeaker(w http.ResponseWriter, r *http.Request) {
	msg, err := c.Service.GetFeaturedSpeaker(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: msg})
}
