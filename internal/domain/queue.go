package domain

import "context"

// Task names dispatched through the work queue.
const (
	TaskSendConfirmationEmail  = "send_confirmation_email"
	TaskSearchFeaturedSpeakers = "search_featured_speakers"
)

// Parameter keys for queue task payloads.
const (
	TaskParamEmail          = "email"
	TaskParamConferenceInfo = "conferenceInfo"
	TaskParamConferenceName = "conferenceName"
	TaskParamConferenceID   = "conferenceID"
	TaskParamSessionID      = "sessionId"
)

// TaskQueue dispatches named background tasks. Fire-and-forget with
// at-least-once execution; the enqueuing call never waits for the task to
// run and gets no response channel back.
type TaskQueue interface {
	Enqueue(ctx context.Context, task string, params map[string]string) error
}
