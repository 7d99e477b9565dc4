package service

import (
	"errors"
	"fmt"

	"panomap/internal/repository"
)

var (
	ErrIDRequired       = errors.New("id is required")
	ErrNotFound         = errors.New("not found")
	ErrInvalid          = errors.New("invalid input")
	ErrInvalidReference = errors.New("invalid reference")
	ErrReaderNil        = errors.New("reader is nil")
)

// mapRepoError converts repository sentinel errors into service errors naming the
// record kind and id.
func mapRepoError(kind string, id int64, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	case errors.Is(err, repository.ErrInvalidReference):
		return fmt.Errorf("%s: %w: %v", kind, ErrInvalidReference, err)
	}
	return err
}
