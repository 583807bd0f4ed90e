package models

import "time"

// RecordEvent describes a change to a stored record.
type RecordEvent struct {
	ID       string    `json:"id"`
	Entity   string    `json:"entity"`
	Action   string    `json:"action"` // "created", "updated" or "deleted"
	RecordID uint      `json:"record_id"`
	At       time.Time `json:"at"`
}
