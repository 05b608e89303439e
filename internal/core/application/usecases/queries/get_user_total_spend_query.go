package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrGetUserTotalSpendQueryIsNotConstructed = errors.New(
		"GetUserTotalSpendQuery must be created via NewGetUserTotalSpendQuery constructor",
	)
)

// GetUserTotalSpendQuery computes the sum a user has spent across all
// their non-cancelled orders. Cancelled orders never count; a user with no
// countable orders has a total of zero, never a null.
//
// Example:
//
//	query, err := NewGetUserTotalSpendQuery(userID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetUserTotalSpendQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute total spend: %w", err)
//	}
//	fmt.Printf("user %s spent %s\n", resp.UserID, resp.TotalSpend)
type GetUserTotalSpendQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserTotalSpendQuery creates a total-spend query for one user.
func NewGetUserTotalSpendQuery(userID kernel.UUID) (GetUserTotalSpendQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserTotalSpendQuery{}, err
	}

	return GetUserTotalSpendQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserTotalSpendQuery) Validate() error {
	return q.guard.Validate(ErrGetUserTotalSpendQueryIsNotConstructed)
}

// UserID returns the user whose spend is computed.
func (q GetUserTotalSpendQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserTotalSpendQueryResponse carries the computed total.
type GetUserTotalSpendQueryResponse struct {
	UserID     kernel.UUID
	TotalSpend decimal.Decimal
}
