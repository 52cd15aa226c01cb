package events

import "time"

// Event is a party night: where, when, who plays, how many tickets.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	DJs         []string  `json:"djs"`
	Tickets     int       `json:"tickets"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasRequiredFields reports whether all mandatory details are present.
// The image is the only optional one.
func (e *Event) HasRequiredFields() bool {
	return e.Title != "" &&
		e.Date != "" &&
		e.Time != "" &&
		e.Location != "" &&
		e.Description != "" &&
		len(e.DJs) > 0 &&
		e.Tickets > 0
}
