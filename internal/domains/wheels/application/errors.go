package application

import (
	"errors"
	"fmt"

	"github.com/tactilelab/wheelforge/internal/domains/wheels/domain"
)

// ErrInvalidInput signals the request violated a domain invariant; transports
// map it to a 400 response.
var ErrInvalidInput = errors.New("invalid distances input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) ||
		errors.Is(err, domain.ErrTooFewDistances) ||
		errors.Is(err, domain.ErrNonPositiveDistance) ||
		errors.Is(err, domain.ErrDistanceTooLarge) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
