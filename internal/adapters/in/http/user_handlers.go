package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
)

// CreateUser handles POST /api/v1/users. A duplicate email is rejected
// with a conflict.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req NewUserRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateUserCommand(req.Name, req.Email, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.users.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userFromAggregate(created))
}

// GetUsers handles GET /api/v1/users.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.users.List.Handle(ctx.Request().Context(), queries.NewListUsersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, usersFromResponses(users))
}

// GetActiveUsers handles GET /api/v1/users/active.
func (s *Server) GetActiveUsers(ctx echo.Context) error {
	users, err := s.users.List.Handle(ctx.Request().Context(), queries.NewListActiveUsersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, usersFromResponses(users))
}

// SearchUsers handles GET /api/v1/users/search?term=... matching name or
// email, case-insensitively.
func (s *Server) SearchUsers(ctx echo.Context) error {
	query, err := queries.NewSearchUsersQuery(ctx.QueryParam("term"))
	if err != nil {
		return respondError(ctx, err)
	}

	users, err := s.users.List.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, usersFromResponses(users))
}

// GetUser handles GET /api/v1/users/:id.
func (s *Server) GetUser(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid user id: "+err.Error())
	}

	query, err := queries.NewGetUserQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.users.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userFromResponse(resp))
}

// GetUserByEmail handles GET /api/v1/users/email/:email.
func (s *Server) GetUserByEmail(ctx echo.Context) error {
	query, err := queries.NewGetUserByEmailQuery(ctx.Param("email"))
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.users.GetByEmail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userFromResponse(resp))
}

// UpdateUser handles PUT /api/v1/users/:id.
func (s *Server) UpdateUser(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid user id: "+err.Error())
	}

	var req UpdateUserRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateUserCommand(id, req.Name, req.Email, req.Phone, req.Active)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.users.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userFromAggregate(updated))
}

// SetUserActive handles PATCH /api/v1/users/:id/active.
func (s *Server) SetUserActive(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid user id: "+err.Error())
	}

	var req SetActiveRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetUserActiveCommand(id, req.Active)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.users.SetActive.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userFromAggregate(updated))
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid user id: "+err.Error())
	}

	cmd, err := commands.NewDeleteUserCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.users.Delete.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CountActiveUsers handles GET /api/v1/users/active/count.
func (s *Server) CountActiveUsers(ctx echo.Context) error {
	count, err := s.users.CountActive.Handle(
		ctx.Request().Context(), queries.NewCountActiveUsersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"count": count})
}
