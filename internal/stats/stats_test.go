package stats

import (
	"testing"

	"github.com/Abhiraj235/GearGo/internal/model"
)

func car(id string, status model.CarStatus, featured bool) model.Car {
	return model.Car{ID: id, Status: status, Featured: featured}
}

func booking(id, carID string, status model.BookingStatus) model.TestDriveBooking {
	return model.TestDriveBooking{ID: id, CarID: carID, Status: status}
}

func TestComputeCounts(t *testing.T) {
	cars := []model.Car{
		car("c1", model.CarAvailable, true),
		car("c2", model.CarAvailable, false),
		car("c3", model.CarSold, true),
		car("c4", model.CarUnavailable, false),
	}
	bookings := []model.TestDriveBooking{
		booking("b1", "c1", model.BookingPending),
		booking("b2", "c1", model.BookingConfirmed),
		booking("b3", "c3", model.BookingCompleted),
		booking("b4", "c2", model.BookingCancelled),
		booking("b5", "c4", model.BookingNoShow),
	}

	d := Compute(cars, bookings)

	if d.Cars.Total != 4 || d.Cars.Available != 2 || d.Cars.Sold != 1 || d.Cars.Unavailable != 1 {
		t.Errorf("car counts wrong: %+v", d.Cars)
	}
	if d.Cars.Featured != 2 {
		t.Errorf("featured = %d, want 2", d.Cars.Featured)
	}
	if d.TestDrives.Total != 5 || d.TestDrives.Pending != 1 || d.TestDrives.Confirmed != 1 ||
		d.TestDrives.Completed != 1 || d.TestDrives.Cancelled != 1 || d.TestDrives.NoShow != 1 {
		t.Errorf("booking counts wrong: %+v", d.TestDrives)
	}
}

func TestConversionRateZeroCompleted(t *testing.T) {
	cars := []model.Car{car("c1", model.CarSold, false)}
	bookings := []model.TestDriveBooking{
		booking("b1", "c1", model.BookingPending),
		booking("b2", "c1", model.BookingCancelled),
	}

	d := Compute(cars, bookings)
	if d.TestDrives.ConversionRate != 0 {
		t.Errorf("rate = %v, want exactly 0", d.TestDrives.ConversionRate)
	}
}

func TestConversionRateSingleSale(t *testing.T) {
	cars := []model.Car{car("c1", model.CarSold, false)}
	bookings := []model.TestDriveBooking{booking("b1", "c1", model.BookingCompleted)}

	d := Compute(cars, bookings)
	if d.TestDrives.ConversionRate != 100.00 {
		t.Errorf("rate = %v, want 100.00", d.TestDrives.ConversionRate)
	}
}

// One sold car, two completed bookings for it: the car counts once in the
// numerator, both bookings count in the denominator.
func TestConversionRateAsymmetry(t *testing.T) {
	cars := []model.Car{car("c1", model.CarSold, false)}
	bookings := []model.TestDriveBooking{
		booking("b1", "c1", model.BookingCompleted),
		booking("b2", "c1", model.BookingCompleted),
	}

	d := Compute(cars, bookings)
	if d.TestDrives.ConversionRate != 50.00 {
		t.Errorf("rate = %v, want 50.00", d.TestDrives.ConversionRate)
	}
}

func TestConversionRateIgnoresUnsoldCars(t *testing.T) {
	// completed booking on a car that is still available: denominator grows,
	// numerator does not
	cars := []model.Car{
		car("c1", model.CarSold, false),
		car("c2", model.CarAvailable, false),
	}
	bookings := []model.TestDriveBooking{
		booking("b1", "c1", model.BookingCompleted),
		booking("b2", "c2", model.BookingCompleted),
	}

	d := Compute(cars, bookings)
	if d.TestDrives.ConversionRate != 50.00 {
		t.Errorf("rate = %v, want 50.00", d.TestDrives.ConversionRate)
	}
}

func TestConversionRateRounding(t *testing.T) {
	// 1 of 3 completed -> 33.333... -> 33.33
	cars := []model.Car{
		car("c1", model.CarSold, false),
		car("c2", model.CarAvailable, false),
	}
	bookings := []model.TestDriveBooking{
		booking("b1", "c1", model.BookingCompleted),
		booking("b2", "c2", model.BookingCompleted),
		booking("b3", "c2", model.BookingCompleted),
	}

	d := Compute(cars, bookings)
	if d.TestDrives.ConversionRate != 33.33 {
		t.Errorf("rate = %v, want 33.33", d.TestDrives.ConversionRate)
	}
}

func TestComputeEmpty(t *testing.T) {
	d := Compute(nil, nil)
	if d.Cars.Total != 0 || d.TestDrives.Total != 0 || d.TestDrives.ConversionRate != 0 {
		t.Errorf("empty input should produce zero dashboard: %+v", d)
	}
}
