package order

import "time"

// StatusEntry is one line of the append-only status history.
type StatusEntry struct {
	status      Status
	timestamp   time.Time
	description string
}

// RestoreStatusEntry rebuilds a history entry from storage.
func RestoreStatusEntry(status Status, timestamp time.Time, description string) StatusEntry {
	return StatusEntry{status: status, timestamp: timestamp, description: description}
}

func (e StatusEntry) Status() Status       { return e.status }
func (e StatusEntry) Timestamp() time.Time { return e.timestamp }
func (e StatusEntry) Description() string  { return e.description }
