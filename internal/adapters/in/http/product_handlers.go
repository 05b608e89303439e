package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
)

const defaultLowStockThreshold = 10

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req NewProductRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		req.Name, req.Description, req.Price, req.StockQuantity, req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.products.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productFromAggregate(created))
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.products.List.Handle(
		ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromResponses(products))
}

// GetActiveProducts handles GET /api/v1/products/active.
func (s *Server) GetActiveProducts(ctx echo.Context) error {
	products, err := s.products.List.Handle(
		ctx.Request().Context(), queries.NewListActiveProductsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromResponses(products))
}

// SearchProducts handles GET /api/v1/products/search?term=...
func (s *Server) SearchProducts(ctx echo.Context) error {
	query, err := queries.NewSearchProductsQuery(ctx.QueryParam("term"))
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.products.List.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromResponses(products))
}

// GetProductsByCategory handles GET /api/v1/products/category/:category.
func (s *Server) GetProductsByCategory(ctx echo.Context) error {
	query, err := queries.NewListProductsQueryByCategory(ctx.Param("category"))
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.products.List.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromResponses(products))
}

// GetProductsByPriceRange handles GET /api/v1/products/price?min=...&max=...
func (s *Server) GetProductsByPriceRange(ctx echo.Context) error {
	minPrice, err := decimal.NewFromString(ctx.QueryParam("min"))
	if err != nil {
		return respondBadRequest(ctx, "invalid min: "+err.Error())
	}

	maxPrice, err := decimal.NewFromString(ctx.QueryParam("max"))
	if err != nil {
		return respondBadRequest(ctx, "invalid max: "+err.Error())
	}

	query, err := queries.NewListProductsQueryByPriceRange(minPrice, maxPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.products.List.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromResponses(products))
}

// GetLowStockProducts handles GET /api/v1/products/low-stock?below=10.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	below := defaultLowStockThreshold
	if raw := ctx.QueryParam("below"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "invalid below: "+err.Error())
		}
		below = parsed
	}

	query, err := queries.NewListLowStockProductsQuery(below)
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.products.List.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromResponses(products))
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid product id: "+err.Error())
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.products.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromResponse(resp))
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid product id: "+err.Error())
	}

	var req UpdateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(
		id, req.Name, req.Description, req.Price, req.StockQuantity, req.Category, req.Active)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.products.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromAggregate(updated))
}

// ChangeProductStock handles PATCH /api/v1/products/:id/stock?quantity=N.
// Negative quantities are rejected.
func (s *Server) ChangeProductStock(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid product id: "+err.Error())
	}

	quantity, err := strconv.Atoi(ctx.QueryParam("quantity"))
	if err != nil {
		return respondBadRequest(ctx, "invalid quantity: "+err.Error())
	}

	cmd, err := commands.NewChangeProductStockCommand(id, quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.products.ChangeStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromAggregate(updated))
}

// SetProductActive handles PATCH /api/v1/products/:id/active.
func (s *Server) SetProductActive(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid product id: "+err.Error())
	}

	var req SetActiveRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetProductActiveCommand(id, req.Active)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.products.SetActive.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromAggregate(updated))
}

// CountProductsByCategory handles GET
// /api/v1/products/category/:category/count.
func (s *Server) CountProductsByCategory(ctx echo.Context) error {
	query, err := queries.NewCountProductsByCategoryQuery(ctx.Param("category"))
	if err != nil {
		return respondError(ctx, err)
	}

	count, err := s.products.CountByCategory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CategoryCount{
		Category: ctx.Param("category"),
		Count:    count,
	})
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid product id: "+err.Error())
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.products.Delete.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
