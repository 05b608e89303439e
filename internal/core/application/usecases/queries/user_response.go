package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/core/domain/model/kernel"
)

// UserResponse represents one user row on the read side.
type UserResponse struct {
	ID           kernel.UUID
	Name         string
	Email        string
	Phone        string
	Active       bool
	RegisteredAt time.Time
}

// userColumns is the select list every user query shares. Scan order must
// match scanUserRows.
const userColumns = `id, name, email, phone, active, registered_at`

func scanUserRows(rows *sql.Rows) ([]UserResponse, error) {
	users := make([]UserResponse, 0)

	for rows.Next() {
		resp, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func scanUserRow(rows *sql.Rows) (UserResponse, error) {
	var (
		resp UserResponse
		id   uuid.UUID
	)

	err := rows.Scan(
		&id,
		&resp.Name,
		&resp.Email,
		&resp.Phone,
		&resp.Active,
		&resp.RegisteredAt,
	)
	if err != nil {
		return UserResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}
	resp.ID = userID

	return resp, nil
}
