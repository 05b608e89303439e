package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

const defaultRecentWindow = 24 * time.Hour

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return respondBadRequest(ctx, "invalid user id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(userID, req.TotalValue, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.orders.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.orders.List.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.orders.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(resp))
}

// GetOrderByNumber handles GET /api/v1/orders/number/:number.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("number"))
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.orders.GetByNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(resp))
}

// UpdateOrder handles PUT /api/v1/orders/:id. Value, status, and notes are
// replaced with the payload; owner and number stay untouched.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id: "+err.Error())
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.TotalValue, status, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.orders.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status?status=Name.
// The update is unguarded; any valid status may replace any other.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id: "+err.Error())
	}

	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.orders.ChangeStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// CancelOrder handles PATCH /api/v1/orders/:id/cancel. Delivered orders are
// rejected with a conflict.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.orders.Cancel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(cancelled))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.orders.Delete.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersByUser handles GET /api/v1/orders/user/:userId.
func (s *Server) GetOrdersByUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid user id: "+err.Error())
	}

	query, err := queries.NewListOrdersQueryByUser(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.orders.List.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetOrdersByStatus handles GET /api/v1/orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListOrdersQueryByStatus(status)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.orders.List.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// CountOrdersByStatus handles GET /api/v1/orders/status/:status/count.
func (s *Server) CountOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewCountOrdersByStatusQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	count, err := s.orders.CountByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusCount{Status: status.String(), Count: count})
}

// GetOrdersByPeriod handles GET /api/v1/orders/period?start=...&end=...
// with RFC 3339 bounds, both inclusive.
func (s *Server) GetOrdersByPeriod(ctx echo.Context) error {
	start, err := time.Parse(time.RFC3339, ctx.QueryParam("start"))
	if err != nil {
		return respondBadRequest(ctx, "invalid start: "+err.Error())
	}

	end, err := time.Parse(time.RFC3339, ctx.QueryParam("end"))
	if err != nil {
		return respondBadRequest(ctx, "invalid end: "+err.Error())
	}

	query, err := queries.NewListOrdersQueryByDateRange(start, end)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.orders.List.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetRecentOrders handles GET /api/v1/orders/recent?window=24h. The window
// defaults to the last day.
func (s *Server) GetRecentOrders(ctx echo.Context) error {
	window := defaultRecentWindow
	if raw := ctx.QueryParam("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return respondBadRequest(ctx, "invalid window: "+err.Error())
		}
		window = parsed
	}

	query, err := queries.NewListRecentOrdersQuery(window)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.orders.ListRecent.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetUserTotalSpend handles GET /api/v1/orders/user/:userId/total-spend.
func (s *Server) GetUserTotalSpend(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid user id: "+err.Error())
	}

	query, err := queries.NewGetUserTotalSpendQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.orders.TotalSpend.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TotalSpend{
		UserID:     resp.UserID.String(),
		TotalSpend: resp.TotalSpend,
	})
}
