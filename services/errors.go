package services

import (
	"errors"
	"fmt"
)

// Error kinds returned by TriviaService. Handlers translate them to HTTP
// statuses; the wrapped cause is only ever logged.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
	ErrBadRequest    = errors.New("bad request")
)

// Unprocessable tags err as ErrUnprocessable while keeping the cause.
func Unprocessable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnprocessable, err)
}
