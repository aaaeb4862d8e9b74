package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

func queryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// priceFloor parses a lower price bound. Absent, unparseable, NaN and
// infinite inputs all default to 0.
func priceFloor(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// priceCeil parses an upper price bound. Absent, unparseable, NaN, infinite
// and max-representable inputs all mean "no upper bound".
func priceCeil(raw string) *float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == math.MaxFloat64 {
		return nil
	}
	return &v
}

// intParam parses an integer query value, falling back to def when the input
// is absent or unparseable.
func intParam(raw string, def int) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
