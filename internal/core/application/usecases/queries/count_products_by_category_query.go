package queries

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCountProductsByCategoryQueryIsNotConstructed = errors.New(
		"CountProductsByCategoryQuery must be created via NewCountProductsByCategoryQuery constructor",
	)
)

// CountProductsByCategoryQuery counts catalog entries in one category.
type CountProductsByCategoryQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewCountProductsByCategoryQuery creates a count query for one category.
func NewCountProductsByCategoryQuery(category string) (CountProductsByCategoryQuery, error) {
	if category == "" {
		return CountProductsByCategoryQuery{}, errs.NewValueIsRequiredError("category")
	}

	return CountProductsByCategoryQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountProductsByCategoryQuery) Validate() error {
	return q.guard.Validate(ErrCountProductsByCategoryQueryIsNotConstructed)
}

// Category returns the category being counted.
func (q CountProductsByCategoryQuery) Category() string {
	return q.category
}
