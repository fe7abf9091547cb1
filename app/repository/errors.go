package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/app/models"
)

var (
	// ErrNotFound is returned when the requested row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique title or slug is already taken
	ErrDuplicate = errors.New("duplicate entry")
	// ErrMissingMainCategory is returned when a news article has no (existing) main category
	ErrMissingMainCategory = models.ErrMissingMainCategory
)

// translateError maps driver level failures onto the repository error taxonomy.
// The original error stays in the chain.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrDuplicate), errors.Is(err, ErrMissingMainCategory):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: referenced row: %w", ErrNotFound, err)
	default:
		return err
	}
}
