package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Abhiraj235/GearGo/internal/model"
)

const bookingColumns = `id, car_id, user_id, booking_date, start_time, end_time,
	status, notes, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }, b *model.TestDriveBooking) error {
	return row.Scan(
		&b.ID, &b.CarID, &b.UserID, &b.BookingDate, &b.StartTime, &b.EndTime,
		&b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
}

// ListTestDrives returns bookings for the admin view, newest booking date
// first, each with its car and the limited user projection embedded.
func (s *Store) ListTestDrives(ctx context.Context, f BookingFilter) ([]model.TestDriveBooking, error) {
	where, args := bookingWhere(f)
	q := `SELECT b.id, b.car_id, b.user_id, b.booking_date, b.start_time, b.end_time,
	             b.status, b.notes, b.created_at, b.updated_at,
	             c.id, c.make, c.model, c.year, c.price, c.mileage, c.color,
	             c.fuel_type, c.transmission, c.body_type, c.seats, c.description,
	             c.status, c.featured, c.images, c.created_at, c.updated_at,
	             u.id, u.name, u.email, u.image_url, u.phone
	      FROM test_drive_bookings b
	      JOIN cars c ON c.id = b.car_id
	      JOIN users u ON u.id = b.user_id` + where + `
	      ORDER BY b.booking_date DESC, b.start_time ASC`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list test drives: %w", err)
	}
	defer rows.Close()

	var out []model.TestDriveBooking
	for rows.Next() {
		var (
			b model.TestDriveBooking
			c model.Car
			u model.UserSummary
		)
		if err := rows.Scan(
			&b.ID, &b.CarID, &b.UserID, &b.BookingDate, &b.StartTime, &b.EndTime,
			&b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
			&c.ID, &c.Make, &c.Model, &c.Year, &c.Price, &c.Mileage, &c.Color,
			&c.FuelType, &c.Transmission, &c.BodyType, &c.Seats, &c.Description,
			&c.Status, &c.Featured, &c.Images, &c.CreatedAt, &c.UpdatedAt,
			&u.ID, &u.Name, &u.Email, &u.ImageURL, &u.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan test drive: %w", err)
		}
		b.Car, b.User = &c, &u
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) GetBooking(ctx context.Context, id string) (*model.TestDriveBooking, error) {
	if !validID(id) {
		return nil, model.ErrNotFound
	}
	b := &model.TestDriveBooking{}
	row := s.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM test_drive_bookings WHERE id = $1`, id)
	if err := scanBooking(row, b); err != nil {
		return nil, mapErr(err)
	}
	return b, nil
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE test_drive_bookings SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ActiveBooking returns the caller's upcoming test drive for one car, or nil
// when there is none. Pending and confirmed bookings count as active.
func (s *Store) ActiveBooking(ctx context.Context, userID, carID string) (*model.TestDriveBooking, error) {
	b := &model.TestDriveBooking{}
	row := s.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+`
		 FROM test_drive_bookings
		 WHERE user_id = $1 AND car_id = $2 AND status IN ($3, $4)
		 ORDER BY booking_date ASC, start_time ASC
		 LIMIT 1`,
		userID, carID, model.BookingPending, model.BookingConfirmed,
	)
	err := scanBooking(row, b)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("active booking: %w", err)
	}
	return b, nil
}

// DashboardBookings fetches every booking's id, status and car reference.
// Deliberately unfiltered: the dashboard reflects global state.
func (s *Store) DashboardBookings(ctx context.Context) ([]model.TestDriveBooking, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, status, car_id FROM test_drive_bookings`)
	if err != nil {
		return nil, fmt.Errorf("dashboard bookings: %w", err)
	}
	defer rows.Close()

	var out []model.TestDriveBooking
	for rows.Next() {
		var b model.TestDriveBooking
		if err := rows.Scan(&b.ID, &b.Status, &b.CarID); err != nil {
			return nil, fmt.Errorf("scan dashboard booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
