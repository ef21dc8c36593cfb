package engine

import "testing"

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"PT1H2M30S", 62.5},
		{"PT3S", 0.05},
		{"PT2M", 2},
		{"PT1H", 60},
		{"PT45M10S", 45.15},
		{"P1DT2M", 2},
	}
	for _, tc := range cases {
		got, err := ParseDurationMinutes(tc.raw)
		if err != nil {
			t.Fatalf("ParseDurationMinutes(%q) failed: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDurationMinutes(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseDurationMinutesRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "PT", "ninety seconds"} {
		if _, err := ParseDurationMinutes(raw); err == nil {
			t.Fatalf("ParseDurationMinutes(%q) succeeded, want error", raw)
		}
	}
}

func TestSecondsBucketRounding(t *testing.T) {
	// Seconds bucket into units of 3, each worth 0.05 of a minute.
	got, err := ParseDurationMinutes("PT59S")
	if err != nil {
		t.Fatalf("ParseDurationMinutes failed: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("PT59S = %v, want 1.0", got)
	}
}
