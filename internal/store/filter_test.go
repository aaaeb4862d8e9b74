package store

import (
	"reflect"
	"testing"

	"github.com/Abhiraj235/GearGo/internal/model"
)

func TestCarWhereEmptyFilter(t *testing.T) {
	where, args := carWhere(CarFilter{})
	if where != " WHERE price >= $1" {
		t.Errorf("unexpected where: %q", where)
	}
	if !reflect.DeepEqual(args, []any{0.0}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestCarWhereFull(t *testing.T) {
	max := 50000.0
	f := CarFilter{
		Search:       "cruiser",
		Make:         "Toyota",
		BodyType:     "suv",
		FuelType:     "petrol",
		Transmission: "automatic",
		Status:       model.CarAvailable,
		MinPrice:     10000,
		MaxPrice:     &max,
	}
	where, args := carWhere(f)

	want := " WHERE status = $1 AND price >= $2 AND price <= $3" +
		" AND LOWER(make) = LOWER($4) AND LOWER(body_type) = LOWER($5)" +
		" AND LOWER(fuel_type) = LOWER($6) AND LOWER(transmission) = LOWER($7)" +
		" AND (make ILIKE $8 OR model ILIKE $8 OR description ILIKE $8)"
	if where != want {
		t.Errorf("where mismatch:\ngot  %q\nwant %q", where, want)
	}

	wantArgs := []any{model.CarAvailable, 10000.0, 50000.0, "Toyota", "suv", "petrol", "automatic", "%cruiser%"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args mismatch:\ngot  %v\nwant %v", args, wantArgs)
	}
}

func TestCarWhereSearchOnly(t *testing.T) {
	where, args := carWhere(CarFilter{Search: "civic"})
	want := " WHERE price >= $1 AND (make ILIKE $2 OR model ILIKE $2 OR description ILIKE $2)"
	if where != want {
		t.Errorf("where mismatch:\ngot  %q\nwant %q", where, want)
	}
	if !reflect.DeepEqual(args, []any{0.0, "%civic%"}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBookingWhere(t *testing.T) {
	tests := []struct {
		name     string
		f        BookingFilter
		want     string
		wantArgs []any
	}{
		{"empty", BookingFilter{}, "", nil},
		{
			"status only",
			BookingFilter{Status: model.BookingPending},
			" WHERE b.status = $1",
			[]any{model.BookingPending},
		},
		{
			"search only",
			BookingFilter{Search: "toyota"},
			" WHERE (c.make ILIKE $1 OR c.model ILIKE $1 OR u.name ILIKE $1 OR u.email ILIKE $1)",
			[]any{"%toyota%"},
		},
		{
			"status and search",
			BookingFilter{Search: "alice", Status: model.BookingConfirmed},
			" WHERE b.status = $1 AND (c.make ILIKE $2 OR c.model ILIKE $2 OR u.name ILIKE $2 OR u.email ILIKE $2)",
			[]any{model.BookingConfirmed, "%alice%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := bookingWhere(tt.f)
			if where != tt.want {
				t.Errorf("where mismatch:\ngot  %q\nwant %q", where, tt.want)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args mismatch:\ngot  %v\nwant %v", args, tt.wantArgs)
			}
		})
	}
}

func TestCarOrder(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{SortNewest, "created_at DESC"},
		{SortPriceAsc, "price ASC"},
		{SortPriceDesc, "price DESC"},
		{"", "created_at DESC"},
		{"priceBananas", "created_at DESC"},
	}
	for _, tt := range tests {
		if got := carOrder(tt.sort); got != tt.want {
			t.Errorf("carOrder(%q) = %q, want %q", tt.sort, got, tt.want)
		}
	}
}
