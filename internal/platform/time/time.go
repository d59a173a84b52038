// Package time contains time related helpers
package time

import (
	"sync"
	"time"
)

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

var (
	pacificOnce sync.Once
	pacificLoc  *time.Location
)

// Pacific returns the US Pacific location used for display timestamps.
// Falls back to a fixed PST offset when tzdata is unavailable
func Pacific() *time.Location {
	pacificOnce.Do(func() {
		loc, err := time.LoadLocation("America/Los_Angeles")
		if err != nil {
			loc = time.FixedZone("PST", -8*60*60)
		}
		pacificLoc = loc
	})
	return pacificLoc
}

// InPacific converts t to the Pacific display zone
func InPacific(t time.Time) time.Time { return t.In(Pacific()) }

// FormatPacific renders t in the Pacific zone using the catalog display layout.
// Zero times render as the empty string
func FormatPacific(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return InPacific(t).Format("2006-01-02 15:04:05")
}
