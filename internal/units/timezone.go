package units

import (
	"fmt"
	"time"
)

// StampLayout is the second-precision layout used for console timestamps.
const StampLayout = "2006-01-02 15:04:05"

// IsTimezoneValid checks if the given timezone exists in the system tz database
func IsTimezoneValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// LoadDisplayLocation resolves a timezone name for timestamp display.
// An empty name resolves to UTC.
func LoadDisplayLocation(tz string) (*time.Location, error) {
	if tz == "" || tz == "UTC" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", tz, err)
	}
	return loc, nil
}

// FormatStamp renders t in loc using StampLayout, truncating to whole seconds.
// A nil loc formats in UTC.
func FormatStamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Truncate(time.Second).Format(StampLayout)
}
