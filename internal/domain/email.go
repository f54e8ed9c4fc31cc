package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// ConferenceCreatedEmailData holds data for the conference creation confirmation email.
type ConferenceCreatedEmailData struct {
	Email          string
	ConferenceName string
	ConferenceInfo string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendConferenceCreated(ctx context.Context, data *ConferenceCreatedEmailData) error
}
