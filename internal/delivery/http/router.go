package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// Controllers bundles the controllers the router wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Profile      *controllers.ProfileController
	Conference   *controllers.ConferenceController
	Session      *controllers.SessionController
	Speaker      *controllers.SpeakerController
	Attendee     *controllers.AttendeeController
	Announcement *controllers.AnnouncementController
}

// NewRouter initializes the HTTP router with all application routes.
// Read-only catalog endpoints are public; everything that creates or
// mutates data, or is scoped to the caller, sits behind RequireAuth.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Profile
	mux.HandleFunc("GET /profile", auth(c.Profile.GetProfile))
	mux.HandleFunc("POST /profile", auth(c.Profile.SaveProfile))

	// Conferences
	mux.HandleFunc("POST /conferences", auth(c.Conference.CreateConference))
	mux.HandleFunc("POST /conferences/query", c.Conference.QueryConferences)
	mux.HandleFunc("GET /conferences/created", auth(c.Conference.ListConferencesCreated))
	mux.HandleFunc("GET /conferences/attending", auth(c.Attendee.ListConferencesToAttend))
	mux.HandleFunc("GET /conferences/{conferenceID}", c.Conference.GetConference)
	mux.HandleFunc("PUT /conferences/{conferenceID}", auth(c.Conference.UpdateConference))

	// Sessions
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions", auth(c.Session.CreateSession))
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions", c.Session.ListConferenceSessions)
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions/query", c.Session.QuerySessions)
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions/daytime", c.Session.ListDaytimeNonWorkshops)
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions/type/{type}", c.Session.ListSessionsByType)
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions/highlight/{highlight}", c.Session.ListSessionsByHighlight)
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions/{sessionID}", c.Session.GetSession)
	mux.HandleFunc("PUT /conferences/{conferenceID}/sessions/{sessionID}", auth(c.Session.UpdateSession))

	// Speakers
	mux.HandleFunc("POST /speakers", auth(c.Speaker.CreateSpeaker))
	mux.HandleFunc("GET /speakers", c.Speaker.ListSpeakers)
	mux.HandleFunc("GET /speakers/{speakerID}", c.Speaker.GetSpeaker)
	mux.HandleFunc("PUT /speakers/{speakerID}", auth(c.Speaker.UpdateSpeaker))
	mux.HandleFunc("GET /speakers/{speakerID}/sessions", c.Speaker.ListSessionsBySpeaker)

	// Registration
	mux.HandleFunc("POST /conferences/{conferenceID}/registration", auth(c.Attendee.RegisterForConference))
	mux.HandleFunc("DELETE /conferences/{conferenceID}/registration", auth(c.Attendee.UnregisterFromConference))

	// Wishlist
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions/{sessionID}/wishlist", auth(c.Attendee.AddSessionToWishlist))
	mux.HandleFunc("DELETE /conferences/{conferenceID}/sessions/{sessionID}/wishlist", auth(c.Attendee.RemoveSessionFromWishlist))
	mux.HandleFunc("GET /wishlist", auth(c.Attendee.ListSessionsInWishlist))

	// Announcements
	mux.HandleFunc("GET /announcement", c.Announcement.GetAnnouncement)
	mux.HandleFunc("GET /featured-speaker", c.Announcement.GetFeaturedSpeaker)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
