package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
)

// GetUserTotalSpendQueryHandler computes a user's lifetime spend. The sum
// runs over every order that is not Cancelled, including orders whose
// value was never set (they contribute nothing). COALESCE normalizes the
// no-rows case to zero so callers never see a null total.
type GetUserTotalSpendQueryHandler struct {
	db *gorm.DB
}

// NewGetUserTotalSpendQueryHandler creates a handler for total-spend
// queries.
func NewGetUserTotalSpendQueryHandler(db *gorm.DB) GetUserTotalSpendQueryHandler {
	return GetUserTotalSpendQueryHandler{db: db}
}

// Handle executes the aggregation. An unknown user yields an
// ObjectNotFoundError rather than a zero total.
func (h GetUserTotalSpendQueryHandler) Handle(
	ctx context.Context,
	query GetUserTotalSpendQuery,
) (GetUserTotalSpendQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserTotalSpendQueryResponse{}, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM users WHERE id = ?
	`, query.UserID().Bytes()).Scan(&count).Error
	if err != nil {
		return GetUserTotalSpendQueryResponse{}, err
	}
	if count == 0 {
		return GetUserTotalSpendQueryResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
	}

	var total decimal.Decimal
	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_value), 0)
		FROM orders
		WHERE user_id = ? AND status != ?
	`, query.UserID().Bytes(), int(order.Cancelled)).Scan(&total).Error
	if err != nil {
		return GetUserTotalSpendQueryResponse{}, err
	}

	return GetUserTotalSpendQueryResponse{
		UserID:     query.UserID(),
		TotalSpend: total,
	}, nil
}
