package handler

import (
	"fmt"
	"net/http"

	"github.com/Abhiraj235/GearGo/internal/model"
	"github.com/Abhiraj235/GearGo/internal/store"
)

type pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func (h *Handler) GetCars(w http.ResponseWriter, r *http.Request) {
	f := store.CarFilter{
		Search:       queryParam(r, "search"),
		Make:         queryParam(r, "make"),
		BodyType:     queryParam(r, "bodyType"),
		FuelType:     queryParam(r, "fuelType"),
		Transmission: queryParam(r, "transmission"),
		Status:       model.CarStatus(queryParam(r, "status")),
		MinPrice:     priceFloor(queryParam(r, "minPrice")),
		MaxPrice:     priceCeil(queryParam(r, "maxPrice")),
	}
	page := intParam(queryParam(r, "page"), 1)
	limit := intParam(queryParam(r, "limit"), 6)
	sortBy := queryParam(r, "sortBy")

	cars, total, err := h.store.ListCars(r.Context(), f, sortBy, page, limit)
	if err != nil {
		h.fail(w, err)
		return
	}

	if caller, err := h.resolveCaller(r); err != nil {
		h.fail(w, err)
		return
	} else if caller != nil && len(cars) > 0 {
		ids := make([]string, len(cars))
		for i := range cars {
			ids[i] = cars[i].ID
		}
		saved, err := h.store.SavedCarIDs(r.Context(), caller.ID, ids)
		if err != nil {
			h.fail(w, err)
			return
		}
		for i := range cars {
			cars[i].Saved = saved[cars[i].ID]
		}
	}

	if cars == nil {
		cars = []model.Car{}
	}
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	h.respond(w, map[string]any{
		"data": cars,
		"pagination": pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	})
}

type testDriveInfo struct {
	UserTestDrive *model.TestDriveBooking `json:"userTestDrive"`
	Dealership    *model.Dealership       `json:"dealership"`
}

type carDetail struct {
	model.Car
	TestDriveInfo testDriveInfo `json:"testDriveInfo"`
}

func (h *Handler) GetCarByID(w http.ResponseWriter, r *http.Request) {
	carID := queryParam(r, "carId")
	if carID == "" {
		h.fail(w, fmt.Errorf("%w: carId required", model.ErrInvalid))
		return
	}

	car, err := h.store.GetCar(r.Context(), carID)
	if err != nil {
		h.fail(w, err)
		return
	}

	caller, err := h.resolveCaller(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	var booking *model.TestDriveBooking
	if caller != nil {
		car.Saved, err = h.store.IsSaved(r.Context(), caller.ID, carID)
		if err != nil {
			h.fail(w, err)
			return
		}
		booking, err = h.store.ActiveBooking(r.Context(), caller.ID, carID)
		if err != nil {
			h.fail(w, err)
			return
		}
	}

	dealership, err := h.store.Dealership(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	h.respond(w, carDetail{
		Car: *car,
		TestDriveInfo: testDriveInfo{
			UserTestDrive: booking,
			Dealership:    dealership,
		},
	})
}

func (h *Handler) GetCarFilters(w http.ResponseWriter, r *http.Request) {
	opts, err := h.store.CarFilterOptions(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, opts)
}
