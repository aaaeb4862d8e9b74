package model

import "testing"

func TestBookingStatusValid(t *testing.T) {
	valid := []BookingStatus{
		BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled, BookingNoShow,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}

	invalid := []BookingStatus{"", "BOGUS", "pending", "Pending", "NOSHOW", "NO SHOW"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}
