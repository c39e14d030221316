package models

// StateV2 is the versioned persistence envelope for the roster slot.
// It is a JSON superset of the legacy `{crew, events}` blob: legacy files
// unmarshal into this struct with Version left at zero, and missing fields
// default to empty collections independently.
type StateV2 struct {
	Version int          `json:"version"`
	Crew    []CrewMember `json:"crew"`
	Events  []Event      `json:"events"`
}
