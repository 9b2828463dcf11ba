package entities

import "time"

// Participant is a named chat session kept alive by heartbeats.
type Participant struct {
	Name       string
	LastStatus time.Time
}

// InactiveSince reports whether the last heartbeat is strictly older than threshold at now.
func (p Participant) InactiveSince(now time.Time, threshold time.Duration) bool {
	return now.Sub(p.LastStatus) > threshold
}
