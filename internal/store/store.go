package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abhiraj235/GearGo/internal/model"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// mapErr converts driver-level failures into domain sentinels where the
// distinction matters to handlers. A foreign key violation means the
// referenced entity vanished mid-operation; invalid_text_representation
// covers values the server fails to cast during a lookup.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02", "23503": // invalid_text_representation, foreign_key_violation
			return model.ErrNotFound
		}
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// validID screens ids bound for uuid columns. pgx encodes uuid args on the
// client, so a malformed id fails at encode time rather than as a sql state
// mapErr could translate; screening keeps the answer a plain missing-row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
