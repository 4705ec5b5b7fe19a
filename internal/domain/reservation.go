package domain

import "time"

// ReservationDetails is the transient reservation form payload. It is
// persisted once on acceptance and never read back by the core.
type ReservationDetails struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PartySize int       `json:"people"`
	Timestamp time.Time `json:"timestamp"`
}
