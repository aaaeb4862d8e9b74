package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Abhiraj235/GearGo/internal/model"
)

// Dealership returns the single dealership record with its working hours in
// week order, or nil when the reference data has not been seeded.
func (s *Store) Dealership(ctx context.Context) (*model.Dealership, error) {
	d := &model.Dealership{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, address, phone, email, created_at
		 FROM dealership_info ORDER BY created_at LIMIT 1`,
	).Scan(&d.ID, &d.Name, &d.Address, &d.Phone, &d.Email, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dealership: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, day_of_week, open_time, close_time, is_open
		 FROM working_hours
		 WHERE dealership_id = $1
		 ORDER BY CASE day_of_week
		   WHEN 'MONDAY' THEN 1
		   WHEN 'TUESDAY' THEN 2
		   WHEN 'WEDNESDAY' THEN 3
		   WHEN 'THURSDAY' THEN 4
		   WHEN 'FRIDAY' THEN 5
		   WHEN 'SATURDAY' THEN 6
		   WHEN 'SUNDAY' THEN 7
		 END`, d.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("working hours: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var wh model.WorkingHour
		if err := rows.Scan(&wh.ID, &wh.DayOfWeek, &wh.OpenTime, &wh.CloseTime, &wh.IsOpen); err != nil {
			return nil, fmt.Errorf("scan working hour: %w", err)
		}
		d.WorkingHours = append(d.WorkingHours, wh)
	}
	return d, rows.Err()
}
