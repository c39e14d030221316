package models

// CrewMember is a named volunteer on the roster. Members are immutable once
// created; there is no edit operation, only add and remove.
type CrewMember struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	JoinedAt string `json:"joined_at"`
}

// Event is a scheduled cleanup. Participants is a snapshot of the crew size
// at the moment the event was created and is never recalculated.
type Event struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Participants int    `json:"participants"`
}
