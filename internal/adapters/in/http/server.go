package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
)

// OrderUseCases bundles the handlers behind the order endpoints.
type OrderUseCases struct {
	Create        commands.CreateOrderCommandHandler
	Update        commands.UpdateOrderCommandHandler
	ChangeStatus  commands.ChangeOrderStatusCommandHandler
	Cancel        commands.CancelOrderCommandHandler
	Delete        commands.DeleteOrderCommandHandler
	Get           queries.GetOrderQueryHandler
	GetByNumber   queries.GetOrderByNumberQueryHandler
	List          queries.ListOrdersQueryHandler
	ListRecent    queries.ListRecentOrdersQueryHandler
	TotalSpend    queries.GetUserTotalSpendQueryHandler
	CountByStatus queries.CountOrdersByStatusQueryHandler
}

// UserUseCases bundles the handlers behind the user endpoints.
type UserUseCases struct {
	Create      commands.CreateUserCommandHandler
	Update      commands.UpdateUserCommandHandler
	SetActive   commands.SetUserActiveCommandHandler
	Delete      commands.DeleteUserCommandHandler
	Get         queries.GetUserQueryHandler
	GetByEmail  queries.GetUserByEmailQueryHandler
	List        queries.ListUsersQueryHandler
	CountActive queries.CountActiveUsersQueryHandler
}

// ProductUseCases bundles the handlers behind the product endpoints.
type ProductUseCases struct {
	Create          commands.CreateProductCommandHandler
	Update          commands.UpdateProductCommandHandler
	ChangeStock     commands.ChangeProductStockCommandHandler
	SetActive       commands.SetProductActiveCommandHandler
	Delete          commands.DeleteProductCommandHandler
	Get             queries.GetProductQueryHandler
	List            queries.ListProductsQueryHandler
	CountByCategory queries.CountProductsByCategoryQueryHandler
}

// Server exposes the back-office use cases over REST. It binds request
// payloads, delegates to command and query handlers, and maps application
// errors onto status codes.
type Server struct {
	orders   OrderUseCases
	users    UserUseCases
	products ProductUseCases
}

// NewServer creates an HTTP server over the given use case bundles.
func NewServer(orders OrderUseCases, users UserUseCases, products ProductUseCases) *Server {
	return &Server{
		orders:   orders,
		users:    users,
		products: products,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance under
// /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	orders := e.Group("/api/v1/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetOrders)
	orders.GET("/recent", s.GetRecentOrders)
	orders.GET("/period", s.GetOrdersByPeriod)
	orders.GET("/number/:number", s.GetOrderByNumber)
	orders.GET("/status/:status", s.GetOrdersByStatus)
	orders.GET("/status/:status/count", s.CountOrdersByStatus)
	orders.GET("/user/:userId", s.GetOrdersByUser)
	orders.GET("/user/:userId/total-spend", s.GetUserTotalSpend)
	orders.GET("/:id", s.GetOrder)
	orders.PUT("/:id", s.UpdateOrder)
	orders.DELETE("/:id", s.DeleteOrder)
	orders.PATCH("/:id/status", s.ChangeOrderStatus)
	orders.PATCH("/:id/cancel", s.CancelOrder)

	users := e.Group("/api/v1/users")
	users.POST("", s.CreateUser)
	users.GET("", s.GetUsers)
	users.GET("/active", s.GetActiveUsers)
	users.GET("/active/count", s.CountActiveUsers)
	users.GET("/search", s.SearchUsers)
	users.GET("/email/:email", s.GetUserByEmail)
	users.GET("/:id", s.GetUser)
	users.PUT("/:id", s.UpdateUser)
	users.DELETE("/:id", s.DeleteUser)
	users.PATCH("/:id/active", s.SetUserActive)

	products := e.Group("/api/v1/products")
	products.POST("", s.CreateProduct)
	products.GET("", s.GetProducts)
	products.GET("/active", s.GetActiveProducts)
	products.GET("/search", s.SearchProducts)
	products.GET("/price", s.GetProductsByPriceRange)
	products.GET("/low-stock", s.GetLowStockProducts)
	products.GET("/category/:category", s.GetProductsByCategory)
	products.GET("/category/:category/count", s.CountProductsByCategory)
	products.GET("/:id", s.GetProduct)
	products.PUT("/:id", s.UpdateProduct)
	products.DELETE("/:id", s.DeleteProduct)
	products.PATCH("/:id/stock", s.ChangeProductStock)
	products.PATCH("/:id/active", s.SetProductActive)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
