package http

import (
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/domain/model/user"
)

// Error is the uniform error payload every endpoint returns on failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Order is the wire representation of an order. TotalValue is null when the
// order value was never set. Status travels as its human-readable name.
type Order struct {
	ID         string              `json:"id"`
	UserID     string              `json:"userId"`
	Number     string              `json:"number"`
	TotalValue decimal.NullDecimal `json:"totalValue"`
	Status     string              `json:"status"`
	Notes      string              `json:"notes,omitempty"`
	PlacedAt   time.Time           `json:"placedAt"`
}

// User is the wire representation of a directory user.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Active       bool      `json:"active"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// Product is the wire representation of a catalog product.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Category      string          `json:"category,omitempty"`
	Active        bool            `json:"active"`
	RegisteredAt  time.Time       `json:"registeredAt"`
}

// TotalSpend is the response of the per-user spend aggregation.
type TotalSpend struct {
	UserID     string          `json:"userId"`
	TotalSpend decimal.Decimal `json:"totalSpend"`
}

// StatusCount is the response of the count-by-status endpoints.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// CategoryCount is the response of the count-by-category endpoint.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// NewOrderRequest is the body of POST /orders.
type NewOrderRequest struct {
	UserID     string              `json:"userId"`
	TotalValue decimal.NullDecimal `json:"totalValue"`
	Notes      string              `json:"notes"`
}

// UpdateOrderRequest is the body of PUT /orders/:id. The payload replaces
// value, status, and notes; owner and number are immutable.
type UpdateOrderRequest struct {
	TotalValue decimal.NullDecimal `json:"totalValue"`
	Status     string              `json:"status"`
	Notes      string              `json:"notes"`
}

// NewUserRequest is the body of POST /users.
type NewUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateUserRequest is the body of PUT /users/:id.
type UpdateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

// SetActiveRequest is the body of the activation toggles.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// NewProductRequest is the body of POST /products.
type NewProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Category      string          `json:"category"`
}

// UpdateProductRequest is the body of PUT /products/:id.
type UpdateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Category      string          `json:"category"`
	Active        bool            `json:"active"`
}

func orderFromAggregate(o *order.Order) Order {
	return Order{
		ID:         o.ID().String(),
		UserID:     o.UserID().String(),
		Number:     o.Number(),
		TotalValue: o.TotalValue(),
		Status:     o.Status().String(),
		Notes:      o.Notes(),
		PlacedAt:   o.PlacedAt(),
	}
}

func orderFromResponse(resp queries.OrderResponse) Order {
	return Order{
		ID:         resp.ID.String(),
		UserID:     resp.UserID.String(),
		Number:     resp.Number,
		TotalValue: resp.TotalValue,
		Status:     resp.Status.String(),
		Notes:      resp.Notes,
		PlacedAt:   resp.PlacedAt,
	}
}

func ordersFromResponses(resps []queries.OrderResponse) []Order {
	result := make([]Order, len(resps))
	for i, resp := range resps {
		result[i] = orderFromResponse(resp)
	}
	return result
}

func userFromAggregate(u *user.User) User {
	return User{
		ID:           u.ID().String(),
		Name:         u.Name(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		Active:       u.IsActive(),
		RegisteredAt: u.RegisteredAt(),
	}
}

func userFromResponse(resp queries.UserResponse) User {
	return User{
		ID:           resp.ID.String(),
		Name:         resp.Name,
		Email:        resp.Email,
		Phone:        resp.Phone,
		Active:       resp.Active,
		RegisteredAt: resp.RegisteredAt,
	}
}

func usersFromResponses(resps []queries.UserResponse) []User {
	result := make([]User, len(resps))
	for i, resp := range resps {
		result[i] = userFromResponse(resp)
	}
	return result
}

func productFromAggregate(p *product.Product) Product {
	return Product{
		ID:            p.ID().String(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         p.Price(),
		StockQuantity: p.StockQuantity(),
		Category:      p.Category(),
		Active:        p.IsActive(),
		RegisteredAt:  p.RegisteredAt(),
	}
}

func productFromResponse(resp queries.ProductResponse) Product {
	return Product{
		ID:            resp.ID.String(),
		Name:          resp.Name,
		Description:   resp.Description,
		Price:         resp.Price,
		StockQuantity: resp.StockQuantity,
		Category:      resp.Category,
		Active:        resp.Active,
		RegisteredAt:  resp.RegisteredAt,
	}
}

func productsFromResponses(resps []queries.ProductResponse) []Product {
	result := make([]Product, len(resps))
	for i, resp := range resps {
		result[i] = productFromResponse(resp)
	}
	return result
}
