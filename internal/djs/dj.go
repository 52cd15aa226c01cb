package djs

import "time"

// DJ is a performer listed on the site, bookable for events.
type DJ struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Genre     string    `json:"genre"`
	Location  string    `json:"location"`
	Price     float64   `json:"price"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
