package handler

import "testing"

func TestShiftPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		wantHead string
		wantTail string
	}{
		{"/", "", "/"},
		{"/search", "search", "/"},
		{"/playlist/abc", "playlist", "/abc"},
		{"/interview/abc/answer", "interview", "/abc/answer"},
		{"playlist", "playlist", "/"},
		{"/playlist/", "playlist", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			head, tail := ShiftPath(tt.path)
			if head != tt.wantHead || tail != tt.wantTail {
				t.Errorf("ShiftPath(%q) = (%q, %q), want (%q, %q)", tt.path, head, tail, tt.wantHead, tt.wantTail)
			}
		})
	}
}
