package models

import "time"

// Deal is a flat pipeline entry, independent of projects. Value is kept as
// the display string the UI entered ("$1.2M"); numeric comparisons parse it
// on demand (see internal/query).
type Deal struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Value       string    `json:"value"`  // display string, e.g. "$800K"
	Status      string    `json:"status"` // Planning, In Progress, Completed
	Progress    int       `json:"progress"`
	Priority    string    `json:"priority"`
	Team        []string  `json:"team"`
	LastUpdated time.Time `json:"last_updated"`
}

// Clone returns a copy with its own team slice.
func (d Deal) Clone() Deal {
	out := d
	out.Team = append([]string(nil), d.Team...)
	return out
}
