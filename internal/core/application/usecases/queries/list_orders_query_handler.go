package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"backoffice/internal/pkg/errs"
)

// ListOrdersQueryHandler retrieves order collections from the store. One
// handler serves every filter variant of ListOrdersQuery.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the list query. Results come back newest first. An empty
// result is an empty slice, not nil. For the by-user filter an unknown
// user yields an ObjectNotFoundError instead of an empty list.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	args := make([]any, 0, 2)

	switch query.filter {
	case filterByUser:
		exists, err := h.userExists(ctx, query)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewObjectNotFoundError("userID", query.userID)
		}
		where = "WHERE user_id = ?"
		args = append(args, query.userID.Bytes())
	case filterByStatus:
		where = "WHERE status = ?"
		args = append(args, int(query.status))
	case filterByValueRange:
		where = "WHERE total_value BETWEEN ? AND ?"
		args = append(args, query.minValue, query.maxValue)
	case filterByDateRange:
		where = "WHERE placed_at BETWEEN ? AND ?"
		args = append(args, query.start, query.end)
	case filterNone:
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM orders
		%s
		ORDER BY placed_at DESC
	`, orderColumns, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

func (h ListOrdersQueryHandler) userExists(ctx context.Context, query ListOrdersQuery) (bool, error) {
	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM users WHERE id = ?
	`, query.userID.Bytes()).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
