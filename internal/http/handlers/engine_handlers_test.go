package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	r := gin.New()
	r.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestValidatePassengersEndpoint(t *testing.T) {
	body := map[string]any{
		"travel_date":   "2026-06-15",
		"international": true,
		"passengers": []map[string]any{
			{
				"id":            "p1",
				"role":          "primary",
				"category":      "adult",
				"first_name":    "Siti",
				"last_name":     "Rahma",
				"date_of_birth": "1996-06-15",
				"gender":        "female",
				"passport": map[string]any{
					"number":          "X1234567",
					"expiry_date":     "2027-01-15",
					"nationality":     "ID",
					"issuing_country": "ID",
				},
				"contact": map[string]any{
					"email":        "siti@example.com",
					"phone":        "81234567890",
					"country_code": "+62",
				},
			},
		},
	}

	rr := postJSON(t, ValidatePassengers, "/validate", body)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
}

func TestValidatePassengersEndpointFieldErrors(t *testing.T) {
	body := map[string]any{
		"travel_date":   "2026-06-15",
		"international": true,
		"passengers": []map[string]any{
			{
				"id":            "p1",
				"role":          "primary",
				"category":      "adult",
				"first_name":    "Siti",
				"last_name":     "Rahma",
				"date_of_birth": "1996-06-15",
				"gender":        "female",
				"passport": map[string]any{
					"number":          "X1234567",
					"expiry_date":     "2026-11-15", // five months after travel
					"nationality":     "ID",
					"issuing_country": "ID",
				},
				"contact": map[string]any{
					"email":        "siti@example.com",
					"phone":        "81234567890",
					"country_code": "+62",
				},
			},
		},
	}

	rr := postJSON(t, ValidatePassengers, "/validate", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp struct {
		Valid  bool `json:"valid"`
		Errors []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "passengers[0].passport.expiry_date", resp.Errors[0].Field)
	assert.Equal(t, "expiring_document", resp.Errors[0].Reason)
}

func TestValidatePassengersRejectsBadTravelDate(t *testing.T) {
	rr := postJSON(t, ValidatePassengers, "/validate", map[string]any{
		"travel_date": "15-06-2026",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPriceQuoteEndpoint(t *testing.T) {
	body := map[string]any{
		"flight": map[string]any{
			"base_fare": 100000,
			"taxes":     11000,
			"fees":      2500,
			"currency":  "USD",
		},
		"passenger_ids": []string{"p1", "p2"},
		"seats": []map[string]any{
			{"id": "12A", "row": 12, "column": "A", "status": "available", "price": 1500},
			{"id": "12B", "row": 12, "column": "B", "status": "available", "price": 1500},
		},
		"assignments": map[string]string{"p1": "12A", "p2": "12B"},
		"extras": map[string]any{
			"baggage_by_passenger": map[string]any{
				"p1": map[string]any{"weight_kg": 20, "price": 3000},
			},
		},
	}

	rr := postJSON(t, PriceQuote, "/quote", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Breakdown struct {
			Total int64 `json:"total"`
		} `json:"breakdown"`
		ExtrasTotal           int64  `json:"extras_total"`
		SeatSelectionComplete bool   `json:"seat_selection_complete"`
		TotalDisplay          string `json:"total_display"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(233000), resp.Breakdown.Total)
	assert.Equal(t, int64(3000), resp.ExtrasTotal)
	assert.True(t, resp.SeatSelectionComplete)
	assert.Equal(t, "2330.00 USD", resp.TotalDisplay)
}

func TestPriceQuoteSeatConflict(t *testing.T) {
	body := map[string]any{
		"flight":        map[string]any{"base_fare": 100000, "currency": "USD"},
		"passenger_ids": []string{"p1", "p2"},
		"seats": []map[string]any{
			{"id": "12A", "row": 12, "column": "A", "status": "available", "price": 1500},
		},
		"assignments": map[string]string{"p1": "12A", "p2": "12A"},
	}

	rr := postJSON(t, PriceQuote, "/quote", body)
	assert.Equal(t, http.StatusConflict, rr.Code)

	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "seat_taken", resp.Code)
}
