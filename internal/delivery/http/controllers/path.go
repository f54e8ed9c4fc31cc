package controllers

import (
	"net/http"

	"github.com/google/uuid"

	h "conferencecentral/internal/delivery/http/helpers"
)

// pathID extracts a path parameter and checks it parses as a UUID, so
// malformed ids are rejected as bad requests before any store access.
// On failure it writes the 400 response and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := r.PathValue(name)
	if _, err := uuid.Parse(id); err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "malformed "+name)
		return "", false
	}
	return id, true
}
