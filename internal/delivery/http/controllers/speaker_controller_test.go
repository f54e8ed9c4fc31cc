package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"conferencecentral/internal/domain"
)

type mockSpeakerService struct {
	speaker  *domain.Speaker
	speakers []*domain.Speaker
	err      error
}

func (m *mockSpeakerService) CreateSpeaker(ctx context.Context, ownerID, name string) (*domain.Speaker, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.speaker, nil
}

func (m *mockSpeakerService) UpdateSpeaker(ctx context.Context, speakerID, callerID, name string) (*domain.Speaker, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.speaker, nil
}

func (m *mockSpeakerService) GetSpeaker(ctx context.Context, speakerID string) (*domain.Speaker, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.speaker, nil
}

func (m *mockSpeakerService) ListSpeakers(ctx context.Context) ([]*domain.Speaker, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.speakers, nil
}

func TestSpeakerController_CreateSpeaker_Success(t *testing.T) {
	svc := &mockSpeakerService{speaker: &domain.Speaker{ID: "spk-1", Name: "Ada"}}
	ctrl := NewSpeakerController(testLogger(), svc, &mockSessionService{})

	req := authedRequest(http.MethodPost, "/speakers", `{"name":"Ada"}`)
	w := httptest.NewRecorder()

	ctrl.CreateSpeaker(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
}

func TestSpeakerController_CreateSpeaker_MissingName(t *testing.T) {
	ctrl := NewSpeakerController(testLogger(), &mockSpeakerService{}, &mockSessionService{})

	req := authedRequest(http.MethodPost, "/speakers", `{"name":""}`)
	w := httptest.NewRecorder()

	ctrl.CreateSpeaker(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSpeakerController_UpdateSpeaker_Forbidden(t *testing.T) {
	svc := &mockSpeakerService{err: domain.ErrForbidden}
	ctrl := NewSpeakerController(testLogger(), svc, &mockSessionService{})

	req := authedRequest(http.MethodPut, "/speakers/spk-1", `{"name":"Grace"}`)
	req.SetPathValue("speakerID", testSpeakerID)
	w := httptest.NewRecorder()

	ctrl.UpdateSpeaker(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestSpeakerController_GetSpeaker_NotFound(t *testing.T) {
	svc := &mockSpeakerService{err: domain.ErrNotFound}
	ctrl := NewSpeakerController(testLogger(), svc, &mockSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/speakers/nope", nil)
	req.SetPathValue("speakerID", testSpeakerID)
	w := httptest.NewRecorder()

	ctrl.GetSpeaker(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestSpeakerController_ListSpeakers_Success(t *testing.T) {
	svc := &mockSpeakerService{speakers: []*domain.Speaker{{ID: "spk-1"}, {ID: "spk-2"}}}
	ctrl := NewSpeakerController(testLogger(), svc, &mockSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/speakers", nil)
	w := httptest.NewRecorder()

	ctrl.ListSpeakers(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp SpeakerListSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 speakers, got %d", len(resp.Data))
	}
}

func TestSpeakerController_ListSessionsBySpeaker_Success(t *testing.T) {
	sessions := &mockSessionService{sessions: []*domain.Session{{ID: "s1"}, {ID: "s2"}}}
	ctrl := NewSpeakerController(testLogger(), &mockSpeakerService{}, sessions)

	req := httptest.NewRequest(http.MethodGet, "/speakers/spk-1/sessions", nil)
	req.SetPathValue("speakerID", testSpeakerID)
	w := httptest.NewRecorder()

	ctrl.ListSessionsBySpeaker(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp SessionListSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(resp.Data))
	}
}

func TestSpeakerController_ListSessionsBySpeaker_UnknownSpeaker(t *testing.T) {
	sessions := &mockSessionService{err: domain.ErrNotFound}
	ctrl := NewSpeakerController(testLogger(), &mockSpeakerService{}, sessions)

	req := httptest.NewRequest(http.MethodGet, "/speakers/nope/sessions", nil)
	req.SetPathValue("speakerID", testSpeakerID)
	w := httptest.NewRecorder()

	ctrl.ListSessionsBySpeaker(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
