package services

import (
	"context"
	"fmt"
	"log/slog"

	"conferencecentral/internal/domain"
)

const (
	conferenceCreatedSubject = "You created a new Conference!"
	conferenceCreatedBody    = "Hi, you have created a following conference:\r\n\r\n%s"
)

type emailService struct {
	mailer domain.Mailer
	logger *slog.Logger
}

// NewEmailService creates an EmailService on top of the given mailer.
func NewEmailService(mailer domain.Mailer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, logger: logger}
}

func (s *emailService) SendConferenceCreated(ctx context.Context, data *domain.ConferenceCreatedEmailData) error {
	if data.Email == "" {
		s.logger.Debug("skipping confirmation email, profile has no address",
			"conference", data.ConferenceName)
		return nil
	}

	text := fmt.Sprintf(conferenceCreatedBody, data.ConferenceInfo)
	html := fmt.Sprintf("<p>Hi, you have created a following conference:</p><pre>%s</pre>", data.ConferenceInfo)

	if err := s.mailer.Send(data.Email, conferenceCreatedSubject, html, text); err != nil {
		return fmt.Errorf("send conference created email: %w", err)
	}
	s.logger.Info("confirmation email sent", "to", data.Email, "conference", data.ConferenceName)
	return nil
}
