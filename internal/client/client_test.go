package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taafi-health-tools/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, nil)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestCallTool(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tools/calculate_bmi", r.URL.Path)

		var args map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&args))
		assert.Equal(t, float64(70), args["weight"])

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    models.BMIResult{BMI: 22.9, Category: "وزن طبيعي"},
		})
	})

	var result models.BMIResult
	err := c.CallTool(context.Background(), "calculate_bmi", map[string]interface{}{"weight": 70, "height": 175}, &result)
	require.NoError(t, err)
	assert.Equal(t, 22.9, result.BMI)
	assert.Equal(t, "وزن طبيعي", result.Category)
}

func TestCallTool_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "invalid input: weight must be greater than zero",
		})
	})

	var result models.BMIResult
	err := c.CallTool(context.Background(), "calculate_bmi", nil, &result)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "weight")
}

func TestRecommendAndUsage(t *testing.T) {
	lastUsed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/tools/recommend":
			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "جرعة", body["text"])
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    []map[string]interface{}{{"name": "calculate_dosage", "title": "حاسبة جرعات الأطفال"}},
			})
		case "/api/v1/usage":
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    []models.ToolUsageStat{{Tool: "calculate_bmi", Count: 4, LastUsed: lastUsed}},
			})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	tools, err := c.Recommend(ctx, "جرعة", 1)
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "calculate_dosage", tools[0].Name)

	stats, err := c.UsageStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 4, stats[0].Count)
	assert.True(t, stats[0].LastUsed.Equal(lastUsed))
}

func TestExportVaccination(t *testing.T) {
	payload := []byte("PK\x03\x04fake-xlsx")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/vaccination/export", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "2024-01-15")
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Write(payload)
	})

	data, err := c.ExportVaccination(context.Background(), map[string]interface{}{"birthDate": "2024-01-15"})
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}
