// Package queue defines message payloads exchanged over the message broker.
package queue

// Account event actions published to the audit queue.
const (
	ActionRegistered = "registered"
	ActionDeleted    = "deleted"
)

// AccountEvent is published when an account is registered or deleted.  It
// carries enough for downstream consumers to audit or notify without
// querying the primary database.
type AccountEvent struct {
	Action string `json:"action"`
	DBID   string `json:"_id,omitempty"`
	Email  string `json:"email,omitempty"`
	At     string `json:"at"`
}
