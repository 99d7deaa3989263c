package model

import "time"

// Visit is a single appointment of a pet at the clinic.
type Visit struct {
	BaseEntity
	PetID       int       `json:"petId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// NewVisit returns a visit dated today (UTC, truncated to the day).
func NewVisit() *Visit {
	return &Visit{Date: Today()}
}

// Today returns the current date at midnight UTC.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
