package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	ImageURL     string    `json:"imageUrl"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSummary is the projection of a user embedded in admin booking listings.
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
	Phone    string `json:"phone"`
}

type CarStatus string

const (
	CarAvailable   CarStatus = "AVAILABLE"
	CarUnavailable CarStatus = "UNAVAILABLE"
	CarSold        CarStatus = "SOLD"
)

type Car struct {
	ID           string    `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Price        float64   `json:"price"`
	Mileage      int       `json:"mileage"`
	Color        string    `json:"color"`
	FuelType     string    `json:"fuelType"`
	Transmission string    `json:"transmission"`
	BodyType     string    `json:"bodyType"`
	Seats        *int      `json:"seats,omitempty"`
	Description  string    `json:"description"`
	Status       CarStatus `json:"status"`
	Featured     bool      `json:"featured"`
	Images       []string  `json:"images"`
	// filled per caller by the wishlist annotation, not stored on the row
	Saved     bool      `json:"saved"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingNoShow    BookingStatus = "NO_SHOW"
)

// Valid reports whether s is one of the five persistable booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

type TestDriveBooking struct {
	ID          string        `json:"id"`
	CarID       string        `json:"carId"`
	UserID      string        `json:"userId"`
	BookingDate time.Time     `json:"bookingDate"`
	StartTime   string        `json:"startTime"`
	EndTime     string        `json:"endTime"`
	Status      BookingStatus `json:"status"`
	Notes       string        `json:"notes"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// embedded context for admin listings and car detail
	Car  *Car         `json:"car,omitempty"`
	User *UserSummary `json:"user,omitempty"`
}

type Dealership struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	CreatedAt    time.Time     `json:"createdAt"`
	WorkingHours []WorkingHour `json:"workingHours"`
}

type WorkingHour struct {
	ID        string `json:"id"`
	DayOfWeek string `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsOpen    bool   `json:"isOpen"`
}
