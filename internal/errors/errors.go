package errors

import "errors"

var (
	// ErrAnnouncementNotFound is returned when an announcement id has no row.
	ErrAnnouncementNotFound = errors.New("announcement not found")
	// ErrEventNotFound is returned when an event id has no row.
	ErrEventNotFound = errors.New("event not found")
)

// ErrorResponse is the JSON error envelope. Error carries the raw database
// error text on 500s; redacting it is left to a hardened deployment.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
