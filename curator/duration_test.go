package curator

import "testing"

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		iso  string
		want string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT5M9S", "5:09"},
		{"PT45S", "0:45"},
		{"PT0S", "0:00"},
		{"PT2H", "2:00:00"},
		{"PT10M", "10:00"},
		{"PT1H30M", "1:30:00"},
		{"", "0:00"},
		{"garbage", "0:00"},
		{"P1DT2H", "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.iso, func(t *testing.T) {
			if got := FormatDuration(tt.iso); got != tt.want {
				t.Errorf("FormatDuration(%q) = %q, want %q", tt.iso, got, tt.want)
			}
		})
	}
}
