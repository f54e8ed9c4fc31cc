package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"conferencecentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeakerService_CreateSpeaker(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("success", func(t *testing.T) {
		spk := newFakeSpeakerRepo()
		svc := NewSpeakerService(spk, testLogger(), timeout)

		got, err := svc.CreateSpeaker(ctx, "user-1", "Ada")
		require.NoError(t, err)
		require.NotEmpty(t, got.ID)
		assert.Equal(t, "Ada", got.Name)
		assert.Equal(t, "user-1", got.OwnerID)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("missing name", func(t *testing.T) {
		svc := NewSpeakerService(newFakeSpeakerRepo(), testLogger(), timeout)
		_, err := svc.CreateSpeaker(ctx, "user-1", "")
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestSpeakerService_UpdateSpeaker(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	newWithSpeaker := func() (domain.SpeakerService, *domain.Speaker) {
		spk := newFakeSpeakerRepo()
		svc := NewSpeakerService(spk, testLogger(), timeout)
		s, _ := svc.CreateSpeaker(ctx, "user-1", "Ada")
		return svc, s
	}

	t.Run("owner renames", func(t *testing.T) {
		svc, s := newWithSpeaker()
		got, err := svc.UpdateSpeaker(ctx, s.ID, "user-1", "Ada Lovelace")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", got.Name)
	})

	t.Run("forbidden for non owner", func(t *testing.T) {
		svc, s := newWithSpeaker()
		_, err := svc.UpdateSpeaker(ctx, s.ID, "user-2", "X")
		require.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := newWithSpeaker()
		_, err := svc.UpdateSpeaker(ctx, "spk-missing", "user-1", "X")
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestSpeakerService_ListSpeakers(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	spk := newFakeSpeakerRepo()
	spk.addSpeaker("spk-b", "Grace")
	spk.addSpeaker("spk-a", "Ada")
	svc := NewSpeakerService(spk, testLogger(), timeout)

	got, err := svc.ListSpeakers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ada", got[0].Name)
	assert.Equal(t, "Grace", got[1].Name)
}
