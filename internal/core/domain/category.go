package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrValidation is wrapped by every input validation failure so the transport
// layer can map the whole family to a single status code.
var ErrValidation = errors.New("validation failed")

var (
	ErrCategoryNameEmpty   = fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	ErrCategoryNameTooLong = fmt.Errorf("%w: category name is too long (max 50 chars)", ErrValidation)
	ErrInvalidColor        = fmt.Errorf("%w: invalid color format (must be #RRGGBB)", ErrValidation)
)

var colorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

const MaxCategoryNameLen = 50

type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewCategory(name, color string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameEmpty
	}
	if len(name) > MaxCategoryNameLen {
		return nil, ErrCategoryNameTooLong
	}

	color = strings.TrimSpace(color)
	if !colorRegex.MatchString(color) {
		return nil, ErrInvalidColor
	}

	return &Category{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: now(),
	}, nil
}

// now is the single wall-clock read for entity constructors. Postgres keeps
// microseconds, so anything finer would not survive a round trip.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
