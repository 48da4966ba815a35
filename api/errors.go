package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches any *Error carrying a 401 status.
var ErrUnauthorized = errors.New("api: unauthorized")

// Error is a non-2xx response from the restaurant API. Message is the
// server-supplied message when the body carried one, otherwise the HTTP
// status text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
