package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is one refresh-token lineage entry. Only the SHA-256 hash of the
// token ever reaches the database.
type Session struct {
	ID         string
	UserID     string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy *string
	CreatedAt  time.Time
}

func (s *Store) CreateSession(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (string, error) {
	id := uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at) VALUES ($1, $2, $3, $4)`,
		id, userID, tokenHash, expiresAt,
	)
	return id, err
}

func (s *Store) SessionByTokenHash(ctx context.Context, tokenHash string) (*Session, error) {
	sn := &Session{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, token_hash, expires_at, revoked, replaced_by, created_at
		 FROM refresh_tokens WHERE token_hash = $1`, tokenHash,
	).Scan(&sn.ID, &sn.UserID, &sn.TokenHash, &sn.ExpiresAt, &sn.Revoked, &sn.ReplacedBy, &sn.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return sn, nil
}

// RotateSession revokes the presented session and creates its replacement in
// one transaction, linking old to new so token reuse is detectable.
func (s *Store) RotateSession(ctx context.Context, oldID, userID, newHash string, newExpiry time.Time) (string, error) {
	newID := uuid.New().String()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = true, replaced_by = $1 WHERE id = $2`,
		newID, oldID,
	)
	if err != nil {
		return "", err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at) VALUES ($1, $2, $3, $4)`,
		newID, userID, newHash, newExpiry,
	)
	if err != nil {
		return "", err
	}

	return newID, tx.Commit(ctx)
}

// RevokeUserSessions invalidates every live refresh token a user holds, used
// on logout and on suspected token theft.
func (s *Store) RevokeUserSessions(ctx context.Context, userID string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = true WHERE user_id = $1 AND revoked = false`,
		userID,
	)
	return err
}
