package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"example.com/tripfit/backend/internal/ai"
	"example.com/tripfit/backend/internal/config"
	"example.com/tripfit/backend/internal/handlers"
)

const tripBody = `{"destination":" Jaipur ","startDate":"2025-11-10","endDate":"2025-11-13","travelerType":"family","ageGroup":"36-60","numTravelers":4,"budget":60000,"interests":["Heritage","Food"]}`

type stubClient struct {
	text  string
	calls int
}

func (s *stubClient) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, nil
}

func testConfig(apiKey string) config.Config {
	return config.Config{
		Env: "test",
		AI: config.AIConfig{
			APIKey:             apiKey,
			Timeout:            time.Second,
			RateLimitPerMinute: 600,
			RateLimitBurst:     100,
			MaxOutputTokens:    1024,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestHealth проверяет эндпоинт статуса.
func TestHealth(t *testing.T) {
	e := New(testConfig(""), testLogger(), nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"ai_mode":"fallback"`) {
		t.Fatalf("expected fallback mode, got %s", rec.Body.String())
	}
}

// TestGenerateItineraryFallback проверяет ответ без ключа AI.
func TestGenerateItineraryFallback(t *testing.T) {
	client := &stubClient{}
	e := New(testConfig(""), testLogger(), client)

	rec := postJSON(t, e, "/api/v1/itineraries", tripBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response handlers.ItineraryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid response: %v", err)
	}

	if client.calls != 0 {
		t.Fatalf("expected no ai calls, got %d", client.calls)
	}
	if response.Source != ai.SourceFallback || response.Reason != ai.ReasonCredentialMissing {
		t.Fatalf("unexpected source %s/%s", response.Source, response.Reason)
	}
	if response.Itinerary.Title != "Majestic Jaipur Getaway" {
		t.Fatalf("unexpected title %q", response.Itinerary.Title)
	}
	if len(response.Itinerary.DailyPlan) != 2 || len(response.Itinerary.PackingList) != 5 {
		t.Fatalf("unexpected fallback shape: %+v", response.Itinerary)
	}
}

// TestGenerateItineraryLive проверяет ответ с маршрутом от модели.
func TestGenerateItineraryLive(t *testing.T) {
	client := &stubClient{text: "```json\n" + `{"title":"Royal Rajasthan","dailyPlan":[{"day":1,"theme":"Forts","activities":["Amber Fort","Lunch","Jal Mahal"]}],"packingList":["a","b","c","d","e"],"seasonalAdvice":"Cool evenings."}` + "\n```"}
	e := New(testConfig("live-key-0123456789"), testLogger(), client)

	rec := postJSON(t, e, "/api/v1/itineraries", tripBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response handlers.ItineraryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid response: %v", err)
	}

	if client.calls != 1 {
		t.Fatalf("expected one ai call, got %d", client.calls)
	}
	if response.Source != ai.SourceLive || response.Itinerary.Title != "Royal Rajasthan" {
		t.Fatalf("unexpected response %+v", response)
	}
}

// TestGenerateItineraryValidation проверяет отказ при неверной анкете.
func TestGenerateItineraryValidation(t *testing.T) {
	e := New(testConfig(""), testLogger(), nil)

	bodies := []string{
		`not json`,
		strings.Replace(tripBody, `"family"`, `"business"`, 1),
		strings.Replace(tripBody, `" Jaipur "`, `"  "`, 1),
		strings.Replace(tripBody, `"numTravelers":4`, `"numTravelers":0`, 1),
		strings.Replace(tripBody, `"endDate":"2025-11-13"`, `"endDate":"2025-11-01"`, 1),
	}

	for _, body := range bodies {
		rec := postJSON(t, e, "/api/v1/itineraries", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
		}
	}
}

// TestExportPDF проверяет выгрузку маршрута в PDF.
func TestExportPDF(t *testing.T) {
	e := New(testConfig(""), testLogger(), nil)

	itinerary, _ := json.Marshal(ai.FallbackItinerary(ai.TripRequest{Destination: "Jaipur"}))
	body := `{"destination":"Jaipur","startDate":"2025-11-10","endDate":"2025-11-13","numTravelers":4,"itinerary":` + string(itinerary) + `}`

	rec := postJSON(t, e, "/api/v1/itineraries/export/pdf", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("unexpected content type %s", rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "itinerary-jaipur.pdf") {
		t.Fatalf("unexpected disposition %s", rec.Header().Get("Content-Disposition"))
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Fatal("expected pdf body")
	}
}

// TestExportCSVPacking проверяет выгрузку списка вещей в CSV.
func TestExportCSVPacking(t *testing.T) {
	e := New(testConfig(""), testLogger(), nil)

	itinerary, _ := json.Marshal(ai.FallbackItinerary(ai.TripRequest{Destination: "Goa"}))
	rec := postJSON(t, e, "/api/v1/itineraries/export/csv?type=packing", `{"destination":"Goa","itinerary":`+string(itinerary)+`}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(rec.Body.String(), "title,item_index,item\n") {
		t.Fatalf("unexpected csv body %q", rec.Body.String())
	}
}

// TestCORSPreflight проверяет CORS для origin фронтенда.
func TestCORSPreflight(t *testing.T) {
	e := New(testConfig(""), testLogger(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/itineraries", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("unexpected allow origin %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

// TestNewHTTPServer проверяет адрес и таймауты сервера.
func TestNewHTTPServer(t *testing.T) {
	srv := NewHTTPServer(config.ServerConfig{Host: "127.0.0.1", Port: 9090, ReadTimeout: time.Second}, http.NotFoundHandler())

	if srv.Addr != "127.0.0.1:9090" || srv.ReadTimeout != time.Second {
		t.Fatalf("unexpected server %s %v", srv.Addr, srv.ReadTimeout)
	}
}
