package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Abhiraj235/GearGo/internal/model"
	"github.com/Abhiraj235/GearGo/internal/revalidate"
)

func (h *Handler) ToggleSavedCar(w http.ResponseWriter, r *http.Request) {
	caller, err := h.resolveCaller(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	if caller == nil {
		h.fail(w, fmt.Errorf("%w: sign in to save cars", model.ErrUnauthorized))
		return
	}

	var req struct {
		CarID string `json:"carId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CarID == "" {
		h.fail(w, fmt.Errorf("%w: carId required", model.ErrInvalid))
		return
	}

	if _, err := h.store.GetCar(r.Context(), req.CarID); err != nil {
		h.fail(w, err)
		return
	}

	saved, err := h.store.ToggleSavedCar(r.Context(), caller.ID, req.CarID)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.revalidateViews(r.Context(), revalidate.ViewSavedCars, revalidate.CarDetail(req.CarID))
	h.respond(w, map[string]bool{"saved": saved})
}

func (h *Handler) GetSavedCars(w http.ResponseWriter, r *http.Request) {
	caller, err := h.resolveCaller(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	if caller == nil {
		h.fail(w, fmt.Errorf("%w: sign in required", model.ErrUnauthorized))
		return
	}

	cars, err := h.store.ListSavedCars(r.Context(), caller.ID)
	if err != nil {
		h.fail(w, err)
		return
	}
	if cars == nil {
		cars = []model.Car{}
	}
	h.respond(w, cars)
}
