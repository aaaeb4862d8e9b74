package store

import (
	"context"
	"fmt"

	"github.com/Abhiraj235/GearGo/internal/model"
)

const carColumns = `id, make, model, year, price, mileage, color, fuel_type,
	transmission, body_type, seats, description, status, featured, images,
	created_at, updated_at`

func scanCar(row interface{ Scan(...any) error }, c *model.Car) error {
	return row.Scan(
		&c.ID, &c.Make, &c.Model, &c.Year, &c.Price, &c.Mileage, &c.Color,
		&c.FuelType, &c.Transmission, &c.BodyType, &c.Seats, &c.Description,
		&c.Status, &c.Featured, &c.Images, &c.CreatedAt, &c.UpdatedAt,
	)
}

// ListCars runs the filtered, sorted, paginated inventory query plus an
// unpaginated count of the same predicate.
func (s *Store) ListCars(ctx context.Context, f CarFilter, sort string, page, limit int) ([]model.Car, int, error) {
	where, args := carWhere(f)

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cars`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cars: %w", err)
	}

	// out-of-range paging yields an empty page, never a query error
	if limit < 0 {
		limit = 0
	}
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	args = append(args, offset, limit)
	q := `SELECT ` + carColumns + ` FROM cars` + where +
		` ORDER BY ` + carOrder(sort) +
		fmt.Sprintf(` OFFSET $%d LIMIT $%d`, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var out []model.Car
	for rows.Next() {
		var c model.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("scan car: %w", err)
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (s *Store) GetCar(ctx context.Context, id string) (*model.Car, error) {
	if !validID(id) {
		return nil, model.ErrNotFound
	}
	c := &model.Car{}
	row := s.pool.QueryRow(ctx, `SELECT `+carColumns+` FROM cars WHERE id = $1`, id)
	if err := scanCar(row, c); err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

// DashboardCars fetches every car's id, status and featured flag.
// Deliberately unfiltered: the dashboard reflects global state.
func (s *Store) DashboardCars(ctx context.Context) ([]model.Car, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, status, featured FROM cars`)
	if err != nil {
		return nil, fmt.Errorf("dashboard cars: %w", err)
	}
	defer rows.Close()

	var out []model.Car
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(&c.ID, &c.Status, &c.Featured); err != nil {
			return nil, fmt.Errorf("scan dashboard car: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// FilterOptions are the distinct values the search UI offers, scoped to cars
// currently available, plus the global price range.
type FilterOptions struct {
	Makes         []string   `json:"makes"`
	BodyTypes     []string   `json:"bodyTypes"`
	FuelTypes     []string   `json:"fuelTypes"`
	Transmissions []string   `json:"transmissions"`
	PriceRange    PriceRange `json:"priceRange"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (s *Store) CarFilterOptions(ctx context.Context) (*FilterOptions, error) {
	// empty slices, not nil: the UI iterates whatever comes back
	opts := &FilterOptions{
		Makes:         []string{},
		BodyTypes:     []string{},
		FuelTypes:     []string{},
		Transmissions: []string{},
	}

	distinct := []struct {
		col  string
		dest *[]string
	}{
		{"make", &opts.Makes},
		{"body_type", &opts.BodyTypes},
		{"fuel_type", &opts.FuelTypes},
		{"transmission", &opts.Transmissions},
	}
	for _, d := range distinct {
		rows, err := s.pool.Query(ctx,
			`SELECT DISTINCT LOWER(`+d.col+`) FROM cars WHERE status = $1 ORDER BY 1`,
			model.CarAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("distinct %s: %w", d.col, err)
		}
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan %s: %w", d.col, err)
			}
			*d.dest = append(*d.dest, v)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("distinct %s: %w", d.col, err)
		}
	}

	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(MIN(price), 0), COALESCE(MAX(price), 0) FROM cars`,
	).Scan(&opts.PriceRange.Min, &opts.PriceRange.Max)
	if err != nil {
		return nil, fmt.Errorf("price range: %w", err)
	}
	return opts, nil
}
