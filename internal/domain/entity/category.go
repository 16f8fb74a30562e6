package entity

import (
	"strings"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

// Category groups transactions for one user. Names are unique per owner,
// case-sensitive, compared after trimming whitespace.
type Category struct {
	ID     uint64
	Name   string
	UserID uint64
}

// NewCategory creates a category with a trimmed, validated name.
func NewCategory(userID uint64, name string) (*Category, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrEmptyCategoryName
	}

	return &Category{
		Name:   name,
		UserID: userID,
	}, nil
}
