package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ziadkadry99/docsite/internal/content"
	"github.com/ziadkadry99/docsite/internal/doctree"
)

// ErrSuperseded is returned by Session.Load when a newer load was requested
// while this one was in flight. It is not an error worth showing a reader.
var ErrSuperseded = errors.New("load superseded by a newer request")

// SessionNotFoundError reports an unknown or evicted session id.
type SessionNotFoundError struct {
	ID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session %q not found", e.ID)
}

// Message is the reader-facing description of an error.
type Message struct {
	Status    int    `json:"-"`
	Title     string `json:"error"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// Describe translates err into a Message. It is the single place where
// internal errors become something a reader sees.
func Describe(err error) Message {
	var (
		notFound  *doctree.DocumentNotFoundError
		malformed *doctree.MalformedManifestError
		fetchErr  *content.FetchError
		noSession *SessionNotFoundError
	)

	switch {
	case err == nil:
		return Message{Status: http.StatusOK}
	case errors.Is(err, ErrSuperseded):
		return Message{
			Status:  http.StatusConflict,
			Title:   "Superseded",
			Message: "A newer document was requested.",
		}
	case errors.As(err, &notFound):
		return Message{
			Status:  http.StatusNotFound,
			Title:   "Failed to load",
			Message: fmt.Sprintf("No document with id %q exists.", notFound.ID),
		}
	case errors.As(err, &noSession):
		return Message{
			Status:  http.StatusNotFound,
			Title:   "Session expired",
			Message: "Reload the page to start a new session.",
		}
	case errors.As(err, &fetchErr):
		msg := Message{
			Status:    http.StatusBadGateway,
			Title:     "Failed to load",
			Message:   fmt.Sprintf("Could not load %s.", fetchErr.Path),
			Retryable: true,
		}
		switch {
		case fetchErr.NotFound():
			msg.Status = http.StatusNotFound
			msg.Message = fmt.Sprintf("The file %s does not exist.", fetchErr.Path)
		case fetchErr.Status == http.StatusBadRequest:
			msg.Status = http.StatusBadRequest
			msg.Message = fmt.Sprintf("The path %s is not allowed.", fetchErr.Path)
			msg.Retryable = false
		case errors.Is(err, context.DeadlineExceeded):
			msg.Status = http.StatusGatewayTimeout
			msg.Message = fmt.Sprintf("Loading %s timed out.", fetchErr.Path)
		case fetchErr.Status != 0:
			msg.Message = fmt.Sprintf("Loading %s failed with HTTP %d.", fetchErr.Path, fetchErr.Status)
		}
		return msg
	case errors.As(err, &malformed):
		return Message{
			Status:  http.StatusInternalServerError,
			Title:   "Invalid manifest",
			Message: malformed.Error(),
		}
	case errors.Is(err, context.Canceled):
		return Message{
			Status:    499,
			Title:     "Cancelled",
			Message:   "The request was cancelled.",
			Retryable: true,
		}
	default:
		return Message{
			Status:  http.StatusInternalServerError,
			Title:   "Internal error",
			Message: err.Error(),
		}
	}
}
