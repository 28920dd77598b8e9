package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrEmptyInput      = errors.New("empty input text")
	ErrExtraction      = errors.New("extraction failed")
	ErrUpstream        = errors.New("upstream model failure")
	ErrValidation      = errors.New("model response validation failed")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
