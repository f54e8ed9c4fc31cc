package services

import (
	"context"
	"errors"
	"testing"

	"conferencecentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer records sent messages.
type fakeMailer struct {
	sendErr error
	to      []string
	subject []string
	text    []string
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.to = append(f.to, to)
	f.subject = append(f.subject, subject)
	f.text = append(f.text, text)
	return nil
}

func TestEmailService_SendConferenceCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the confirmation", func(t *testing.T) {
		m := &fakeMailer{}
		svc := NewEmailService(m, testLogger())

		err := svc.SendConferenceCreated(ctx, &domain.ConferenceCreatedEmailData{
			Email:          "organizer@example.com",
			ConferenceName: "GopherCon",
			ConferenceInfo: "GopherCon (Denver)",
		})
		require.NoError(t, err)
		require.Len(t, m.to, 1)
		assert.Equal(t, "organizer@example.com", m.to[0])
		assert.Equal(t, "You created a new Conference!", m.subject[0])
		assert.Equal(t, "Hi, you have created a following conference:\r\n\r\nGopherCon (Denver)", m.text[0])
	})

	t.Run("no address means no send, no error", func(t *testing.T) {
		m := &fakeMailer{}
		svc := NewEmailService(m, testLogger())

		err := svc.SendConferenceCreated(ctx, &domain.ConferenceCreatedEmailData{ConferenceName: "GopherCon"})
		require.NoError(t, err)
		assert.Empty(t, m.to)
	})

	t.Run("mailer failure surfaces", func(t *testing.T) {
		m := &fakeMailer{sendErr: errors.New("ses down")}
		svc := NewEmailService(m, testLogger())

		err := svc.SendConferenceCreated(ctx, &domain.ConferenceCreatedEmailData{
			Email: "organizer@example.com",
		})
		require.Error(t, err)
	})
}
