package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type mockAnnouncementService struct {
	announcement    string
	featuredSpeaker string
	err             error
}

func (m *mockAnnouncementService) RecomputeAnnouncement(ctx context.Context) (string, error) {
	return m.announcement, m.err
}

func (m *mockAnnouncementService) RecomputeFeaturedSpeaker(ctx context.Context, conferenceID, sessionID string) {
}

func (m *mockAnnouncementService) GetAnnouncement(ctx context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.announcement, nil
}

func (m *mockAnnouncementService) GetFeaturedSpeaker(ctx context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.featuredSpeaker, nil
}

func TestAnnouncementController_GetAnnouncement_Published(t *testing.T) {
	svc := &mockAnnouncementService{announcement: "Last chance to attend! The following conferences are nearly sold out: GopherCon"}
	ctrl := NewAnnouncementController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/announcement", nil)
	w := httptest.NewRecorder()

	ctrl.GetAnnouncement(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp MessageSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Message != svc.announcement {
		t.Fatalf("expected announcement message, got %q", resp.Data.Message)
	}
}

func TestAnnouncementController_GetAnnouncement_Empty(t *testing.T) {
	ctrl := NewAnnouncementController(testLogger(), &mockAnnouncementService{})

	req := httptest.NewRequest(http.MethodGet, "/announcement", nil)
	w := httptest.NewRecorder()

	ctrl.GetAnnouncement(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp MessageSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Message != "" {
		t.Fatalf("expected empty message, got %q", resp.Data.Message)
	}
}

func TestAnnouncementController_GetFeaturedSpeaker_Published(t *testing.T) {
	svc := &mockAnnouncementService{featuredSpeaker: "Speaker Ada is our feature speaker, will appear in these sessions: Talk One, Talk Two"}
	ctrl := NewAnnouncementController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/featured-speaker", nil)
	w := httptest.NewRecorder()

	ctrl.GetFeaturedSpeaker(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp MessageSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Message != svc.featuredSpeaker {
		t.Fatalf("expected featured speaker message, got %q", resp.Data.Message)
	}
}

func TestAnnouncementController_GetAnnouncement_CacheError(t *testing.T) {
	svc := &mockAnnouncementService{err: errors.New("cache down")}
	ctrl := NewAnnouncementController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/announcement", nil)
	w := httptest.NewRecorder()

	ctrl.GetAnnouncement(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
