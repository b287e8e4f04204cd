package curator

import (
	"strings"
	"testing"
)

func TestExpandQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		language string
		first    string
		suffix   string
	}{
		{
			name:     "english",
			query:    "React hooks",
			language: "en",
			first:    "React hooks tutorial",
		},
		{
			name:     "empty language defaults to english",
			query:    "React hooks",
			language: "",
			first:    "React hooks tutorial",
		},
		{
			name:     "known language code",
			query:    "Quantum computing",
			language: "fr",
			first:    "Quantum computing tutorial in french",
			suffix:   " in french",
		},
		{
			name:     "unknown language code falls back to the code",
			query:    "Quantum computing",
			language: "nl",
			first:    "Quantum computing tutorial in nl",
			suffix:   " in nl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queries := ExpandQuery(tt.query, tt.language)
			if len(queries) != 5 {
				t.Fatalf("expected 5 variants, got %d", len(queries))
			}
			if queries[0] != tt.first {
				t.Errorf("expected first variant %q, got %q", tt.first, queries[0])
			}
			for _, q := range queries {
				if !strings.Contains(q, tt.query) {
					t.Errorf("variant %q does not contain the original query", q)
				}
				if tt.suffix != "" && !strings.HasSuffix(q, tt.suffix) {
					t.Errorf("variant %q does not end with %q", q, tt.suffix)
				}
			}
		})
	}
}

func TestExpandQueryOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"Go tutorial",
		"Go complete course",
		"Go beginner guide",
		"Go fundamentals",
		"Go step by step",
	}
	got := ExpandQuery("Go", "en")
	for i, q := range want {
		if got[i] != q {
			t.Errorf("variant %d: expected %q, got %q", i, q, got[i])
		}
	}
}
