package domain

import (
	"context"
	"time"

	"conferencecentral/internal/query"
)

// SessionType enumerates the supported session types.
type SessionType string

const (
	SessionTypeNotSpecified SessionType = "NOT_SPECIFIED"
	SessionTypeWorkshop     SessionType = "WORKSHOP"
	SessionTypeLecture      SessionType = "LECTURE"
	SessionTypeKeynote      SessionType = "KEYNOTE"
	SessionTypeCodelab      SessionType = "CODELAB"
)

// ValidSessionType reports whether t is one of the enumerated session types.
func ValidSessionType(t SessionType) bool {
	switch t {
	case SessionTypeNotSpecified, SessionTypeWorkshop, SessionTypeLecture,
		SessionTypeKeynote, SessionTypeCodelab:
		return true
	}
	return false
}

// Session represents a conference session or talk. A session is owned by
// its parent conference; only the conference organizer may create or
// update it. StartTime is a wall-clock "HH:MM" string.
// swagger:model Session
type Session struct {
	ID           string      `json:"id"`
	ConferenceID string      `json:"conference_id"`
	Name         string      `json:"name"`
	Highlights   []string    `json:"highlights"`
	SpeakerIDs   []string    `json:"speaker_ids"`
	Date         *time.Time  `json:"date"`
	StartTime    string      `json:"start_time"`
	DurationMins int         `json:"duration_mins"`
	Type         SessionType `json:"type"`
	Location     string      `json:"location"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// SessionUpdate holds the optional fields of a partial session update.
// Nil means "leave unchanged"; SpeakerIDs nil means unchanged, empty
// replaces with no speakers.
type SessionUpdate struct {
	Name         *string
	Highlights   []string
	SpeakerIDs   []string
	Date         *time.Time
	StartTime    *string
	DurationMins *int
	Type         *SessionType
	Location     *string
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, sess *Session) error
	GetByID(ctx context.Context, conferenceID, sessionID string) (*Session, error)
	Update(ctx context.Context, sess *Session) error
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*Session, error)
	ListBySpeakerID(ctx context.Context, speakerID string) ([]*Session, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Session, error)
	// QueryByPlan executes a compiled filter plan scoped to one conference.
	// extra holds kind-specific equality conditions appended after
	// compilation (session type, highlight membership).
	QueryByPlan(ctx context.Context, conferenceID string, plan *query.Plan, extra []query.Condition) ([]*Session, error)
}

// SessionService defines the business logic for sessions.
type SessionService interface {
	CreateSession(ctx context.Context, conferenceID, callerID string, sess *Session) (*Session, error)
	UpdateSession(ctx context.Context, conferenceID, sessionID, callerID string, upd *SessionUpdate) (*Session, error)
	GetSession(ctx context.Context, conferenceID, sessionID string) (*Session, error)
	ListConferenceSessions(ctx context.Context, conferenceID string) ([]*Session, error)
	QuerySessions(ctx context.Context, conferenceID string, filters []query.Filter) ([]*Session, error)
	ListSessionsByType(ctx context.Context, conferenceID string, sessionType SessionType) ([]*Session, error)
	ListSessionsByHighlight(ctx context.Context, conferenceID, highlight string) ([]*Session, error)
	ListSessionsBySpeaker(ctx context.Context, speakerID string) ([]*Session, error)
	// ListDaytimeNonWorkshops returns the conference's non-workshop
	// sessions starting before 19:00.
	ListDaytimeNonWorkshops(ctx context.Context, conferenceID string) ([]*Session, error)
}
