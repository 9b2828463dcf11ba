package tz

import (
	"fmt"
	"time"
)

// ClockLayout is the HH:mm:ss layout stamped on chat messages.
const ClockLayout = "15:04:05"

// Load returns the named IANA location; an empty name means time.Local.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}

// Clock formats t as HH:mm:ss in loc.
func Clock(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(ClockLayout)
}
