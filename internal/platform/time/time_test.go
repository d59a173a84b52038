package time_test

import (
	"testing"
	"time"

	ptime "panelgrid/internal/platform/time"
)

func TestFormatPacific_WinterOffset(t *testing.T) {
	t.Parallel()

	// early March is still PST (UTC-8)
	in := time.Date(2026, 3, 2, 15, 15, 0, 0, time.UTC)
	if got := ptime.FormatPacific(in); got != "2026-03-02 07:15:00" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatPacific_ZeroIsEmpty(t *testing.T) {
	t.Parallel()

	if got := ptime.FormatPacific(time.Time{}); got != "" {
		t.Fatalf("expected empty for zero time, got %q", got)
	}
}

func TestFormatPacific_CrossesMidnight(t *testing.T) {
	t.Parallel()

	// 03:30 UTC lands on the previous Pacific day
	in := time.Date(2026, 1, 15, 3, 30, 0, 0, time.UTC)
	if got := ptime.FormatPacific(in); got != "2026-01-14 19:30:00" {
		t.Fatalf("got %q", got)
	}
}

func TestPtr(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p := ptime.Ptr(now)
	if p == nil || !p.Equal(now) {
		t.Fatalf("ptr mismatch: %v", p)
	}
}
