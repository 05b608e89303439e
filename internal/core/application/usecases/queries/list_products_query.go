package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via a NewListProductsQuery constructor",
	)
)

// productFilter selects which WHERE clause the list handler builds.
type productFilter int

const (
	productFilterNone productFilter = iota
	productFilterActive
	productFilterCategory
	productFilterPriceRange
	productFilterSearch
	productFilterLowStock
)

// ListProductsQuery retrieves product collections: the whole catalog,
// active products, one category, a price range, a name search, or the
// products below a stock threshold. Results are sorted by name except the
// low-stock variant, which comes back scarcest first.
type ListProductsQuery struct {
	filter     productFilter
	category   string
	minPrice   decimal.Decimal
	maxPrice   decimal.Decimal
	term       string
	stockBelow int

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates an unfiltered query over the catalog.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{
		filter: productFilterNone,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewListActiveProductsQuery creates a query for active products only.
func NewListActiveProductsQuery() ListProductsQuery {
	return ListProductsQuery{
		filter: productFilterActive,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewListProductsQueryByCategory creates a query for one category.
func NewListProductsQueryByCategory(category string) (ListProductsQuery, error) {
	if category == "" {
		return ListProductsQuery{}, errs.NewValueIsRequiredError("category")
	}

	return ListProductsQuery{
		filter:   productFilterCategory,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewListProductsQueryByPriceRange creates a query for products priced in
// [minPrice, maxPrice], both bounds inclusive.
func NewListProductsQueryByPriceRange(minPrice, maxPrice decimal.Decimal) (ListProductsQuery, error) {
	if minPrice.GreaterThan(maxPrice) {
		return ListProductsQuery{}, errs.NewValueIsInvalidError("minPrice")
	}

	return ListProductsQuery{
		filter:   productFilterPriceRange,
		minPrice: minPrice,
		maxPrice: maxPrice,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewSearchProductsQuery creates a case-insensitive substring search over
// product names. The term must not be empty.
func NewSearchProductsQuery(term string) (ListProductsQuery, error) {
	if term == "" {
		return ListProductsQuery{}, errs.NewValueIsRequiredError("term")
	}

	return ListProductsQuery{
		filter: productFilterSearch,
		term:   term,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewListLowStockProductsQuery creates a query for products whose stock is
// strictly below the threshold, scarcest first. The threshold must be
// positive.
func NewListLowStockProductsQuery(stockBelow int) (ListProductsQuery, error) {
	if stockBelow <= 0 {
		return ListProductsQuery{}, errs.NewValueIsOutOfRangeError("stockBelow", stockBelow, 1, "unbounded")
	}

	return ListProductsQuery{
		filter:     productFilterLowStock,
		stockBelow: stockBelow,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}
