package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learntube/model"
)

func TestHistoryAPIRecord(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "missing video id",
			body:       `{"user": "u-1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "valid entry",
			body:       `{"user": "u-1", "videoId": "abc", "watchTime": 120, "completed": true}`,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			historyRepo := &fakeHistoryRepo{}
			api := NewHistoryAPI(historyRepo, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			api.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				if len(historyRepo.recorded) != 0 {
					t.Errorf("expected nothing recorded, got %d entries", len(historyRepo.recorded))
				}
				return
			}

			if len(historyRepo.recorded) != 1 {
				t.Fatalf("expected 1 recorded entry, got %d", len(historyRepo.recorded))
			}
			entry := historyRepo.recorded[0]
			if entry.YoutubeID != "abc" || entry.WatchTime != 120 || !entry.Completed {
				t.Errorf("unexpected entry: %+v", entry)
			}
		})
	}
}

func TestHistoryAPIList(t *testing.T) {
	historyRepo := &fakeHistoryRepo{
		recorded: []*model.HistoryEntry{
			{UserID: "u-1", YoutubeID: "a", Completed: true},
			{UserID: "u-1", YoutubeID: "b"},
		},
	}
	api := NewHistoryAPI(historyRepo, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/?user=u-1", nil)
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		History         []*model.HistoryEntry `json:"history"`
		TotalVideoCount int                   `json:"totalVideoCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("could not unmarshal response: %v", err)
	}
	if len(resp.History) != 2 {
		t.Errorf("expected 2 entries, got %d", len(resp.History))
	}
	if resp.TotalVideoCount != 2 {
		t.Errorf("expected total 2, got %d", resp.TotalVideoCount)
	}
}
