package models

import "time"

// Tip is a single community eco-friendly practice message. CreatedAt is
// assigned by the server; the client never edits or deletes tips.
type Tip struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
