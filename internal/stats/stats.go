package stats

import (
	"math"

	"github.com/Abhiraj235/GearGo/internal/model"
)

type CarCounts struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Sold        int `json:"sold"`
	Unavailable int `json:"unavailable"`
	Featured    int `json:"featured"`
}

type TestDriveCounts struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	Confirmed      int     `json:"confirmed"`
	Completed      int     `json:"completed"`
	Cancelled      int     `json:"cancelled"`
	NoShow         int     `json:"noShow"`
	ConversionRate float64 `json:"conversionRate"`
}

type Dashboard struct {
	Cars       CarCounts       `json:"cars"`
	TestDrives TestDriveCounts `json:"testDrives"`
}

// Compute aggregates the two full-table projections into dashboard counts.
// The conversion rate divides sold cars having at least one completed test
// drive by the number of completed bookings. Bookings, not distinct cars: a
// car completed twice counts once in the numerator and twice in the
// denominator. Rate is rounded to two decimals and is exactly 0 when no
// booking completed.
func Compute(cars []model.Car, bookings []model.TestDriveBooking) Dashboard {
	var d Dashboard

	completedCars := make(map[string]bool)
	d.TestDrives.Total = len(bookings)
	for _, b := range bookings {
		switch b.Status {
		case model.BookingPending:
			d.TestDrives.Pending++
		case model.BookingConfirmed:
			d.TestDrives.Confirmed++
		case model.BookingCompleted:
			d.TestDrives.Completed++
			completedCars[b.CarID] = true
		case model.BookingCancelled:
			d.TestDrives.Cancelled++
		case model.BookingNoShow:
			d.TestDrives.NoShow++
		}
	}

	d.Cars.Total = len(cars)
	soldWithCompleted := 0
	for _, c := range cars {
		switch c.Status {
		case model.CarAvailable:
			d.Cars.Available++
		case model.CarSold:
			d.Cars.Sold++
			if completedCars[c.ID] {
				soldWithCompleted++
			}
		case model.CarUnavailable:
			d.Cars.Unavailable++
		}
		if c.Featured {
			d.Cars.Featured++
		}
	}

	if d.TestDrives.Completed > 0 {
		rate := float64(soldWithCompleted) / float64(d.TestDrives.Completed) * 100
		d.TestDrives.ConversionRate = math.Round(rate*100) / 100
	}
	return d
}
