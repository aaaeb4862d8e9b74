package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Abhiraj235/GearGo/internal/model"
	"github.com/Abhiraj235/GearGo/internal/revalidate"
	"github.com/Abhiraj235/GearGo/internal/stats"
	"github.com/Abhiraj235/GearGo/internal/store"
)

func (h *Handler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	caller, err := h.resolveCaller(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	if caller == nil || caller.Role != model.RoleAdmin {
		// still a 200: the gate result is the payload
		h.respond(w, map[string]any{"authorized": false, "reason": "not-admin"})
		return
	}
	h.respond(w, map[string]any{"authorized": true, "user": caller})
}

func (h *Handler) GetAdminTestDrives(w http.ResponseWriter, r *http.Request) {
	if _, err := h.requireAdmin(r); err != nil {
		h.fail(w, err)
		return
	}

	f := store.BookingFilter{
		Search: queryParam(r, "search"),
		Status: model.BookingStatus(queryParam(r, "status")),
	}
	bookings, err := h.store.ListTestDrives(r.Context(), f)
	if err != nil {
		h.fail(w, err)
		return
	}
	if bookings == nil {
		bookings = []model.TestDriveBooking{}
	}
	h.respond(w, bookings)
}

func (h *Handler) UpdateTestDriveStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := h.requireAdmin(r); err != nil {
		h.fail(w, err)
		return
	}

	var req struct {
		BookingID string              `json:"bookingId"`
		NewStatus model.BookingStatus `json:"newStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BookingID == "" {
		h.fail(w, fmt.Errorf("%w: bookingId required", model.ErrInvalid))
		return
	}

	// existence first, then status validity, then the write
	if _, err := h.store.GetBooking(r.Context(), req.BookingID); err != nil {
		h.fail(w, err)
		return
	}
	if !req.NewStatus.Valid() {
		h.fail(w, fmt.Errorf("%w: invalid status %q", model.ErrInvalid, req.NewStatus))
		return
	}
	if err := h.store.UpdateBookingStatus(r.Context(), req.BookingID, req.NewStatus); err != nil {
		h.fail(w, err)
		return
	}

	h.revalidateViews(r.Context(), revalidate.ViewAdminTestDrives, revalidate.ViewReservations)
	h.respond(w, map[string]string{"message": "test drive status updated"})
}

func (h *Handler) GetDashboardData(w http.ResponseWriter, r *http.Request) {
	if _, err := h.requireAdmin(r); err != nil {
		h.fail(w, err)
		return
	}

	cars, err := h.store.DashboardCars(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	bookings, err := h.store.DashboardBookings(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	h.respond(w, stats.Compute(cars, bookings))
}
