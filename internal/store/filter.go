package store

import (
	"fmt"
	"strings"

	"github.com/Abhiraj235/GearGo/internal/model"
)

// CarFilter carries the optional predicates of a car search. Empty fields
// contribute no clause. MinPrice is always applied (callers default it to 0);
// MaxPrice only when non-nil.
type CarFilter struct {
	Search       string
	Make         string
	BodyType     string
	FuelType     string
	Transmission string
	Status       model.CarStatus
	MinPrice     float64
	MaxPrice     *float64
}

// carWhere compiles f into a WHERE clause with positional args. Clause order:
// status, price bounds, categorical equality, then one OR group of
// case-insensitive substring matches for the free text.
func carWhere(f CarFilter) (string, []any) {
	var conds []string
	var args []any

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	args = append(args, f.MinPrice)
	conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))

	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	cats := []struct {
		col string
		val string
	}{
		{"make", f.Make},
		{"body_type", f.BodyType},
		{"fuel_type", f.FuelType},
		{"transmission", f.Transmission},
	}
	for _, c := range cats {
		if c.val == "" {
			continue
		}
		args = append(args, c.val)
		conds = append(conds, fmt.Sprintf("LOWER(%s) = LOWER($%d)", c.col, len(args)))
	}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(make ILIKE $%d OR model ILIKE $%d OR description ILIKE $%d)", n, n, n))
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// BookingFilter carries the optional predicates of the admin test-drive
// listing. The free text spans the booked car and the booking user.
type BookingFilter struct {
	Search string
	Status model.BookingStatus
}

// bookingWhere compiles f against the aliased listing join (b = bookings,
// c = cars, u = users). Returns "" when f constrains nothing.
func bookingWhere(f BookingFilter) (string, []any) {
	var conds []string
	var args []any

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(c.make ILIKE $%d OR c.model ILIKE $%d OR u.name ILIKE $%d OR u.email ILIKE $%d)", n, n, n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Sort keys accepted by ListCars. Anything else falls back to newest.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
)

func carOrder(sort string) string {
	switch sort {
	case SortPriceAsc:
		return "price ASC"
	case SortPriceDesc:
		return "price DESC"
	default:
		return "created_at DESC"
	}
}
