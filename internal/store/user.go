package store

import (
	"context"

	"github.com/Abhiraj235/GearGo/internal/model"
)

const userColumns = `id, email, password_hash, name, phone, image_url, role,
	created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }, u *model.User) error {
	return row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.ImageURL,
		&u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
}

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, phone, image_url, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Phone, u.ImageURL, u.Role,
	)
	if isUniqueViolation(err) {
		return model.ErrConflict
	}
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err := scanUser(row, u); err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	if !validID(id) {
		return nil, model.ErrNotFound
	}
	u := &model.User{}
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err := scanUser(row, u); err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}
