package store

import (
	"context"
	"fmt"

	"github.com/Abhiraj235/GearGo/internal/model"
)

// SavedCarIDs returns the subset of carIDs on the caller's wishlist, fetched
// in one query so result annotation stays O(1) per car.
func (s *Store) SavedCarIDs(ctx context.Context, userID string, carIDs []string) (map[string]bool, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT car_id FROM saved_cars WHERE user_id = $1 AND car_id = ANY($2)`,
		userID, carIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("saved car ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan saved car id: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func (s *Store) IsSaved(ctx context.Context, userID, carID string) (bool, error) {
	var saved bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_cars WHERE user_id = $1 AND car_id = $2)`,
		userID, carID,
	).Scan(&saved)
	return saved, err
}

// ToggleSavedCar flips wishlist membership for (userID, carID) and reports
// the resulting state. Delete-then-insert against the composite primary key
// keeps the pair unique under concurrent toggles without a transaction: both
// racers may insert, ON CONFLICT swallows the loser.
func (s *Store) ToggleSavedCar(ctx context.Context, userID, carID string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM saved_cars WHERE user_id = $1 AND car_id = $2`, userID, carID,
	)
	if err != nil {
		return false, mapErr(err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO saved_cars (user_id, car_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, carID,
	)
	if err != nil {
		return false, mapErr(err)
	}
	return true, nil
}

// ListSavedCars returns the caller's wishlist, most recently saved first.
func (s *Store) ListSavedCars(ctx context.Context, userID string) ([]model.Car, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT c.id, c.make, c.model, c.year, c.price, c.mileage, c.color,
		        c.fuel_type, c.transmission, c.body_type, c.seats, c.description,
		        c.status, c.featured, c.images, c.created_at, c.updated_at
		 FROM saved_cars sc
		 JOIN cars c ON c.id = sc.car_id
		 WHERE sc.user_id = $1
		 ORDER BY sc.saved_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list saved cars: %w", err)
	}
	defer rows.Close()

	var out []model.Car
	for rows.Next() {
		var c model.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, fmt.Errorf("scan saved car: %w", err)
		}
		c.Saved = true
		out = append(out, c)
	}
	return out, rows.Err()
}
