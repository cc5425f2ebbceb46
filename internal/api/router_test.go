// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/robm15/vibetravels/internal/ai"
	"github.com/robm15/vibetravels/internal/auth"
	"github.com/robm15/vibetravels/internal/config"
	"github.com/robm15/vibetravels/internal/models"
	"github.com/robm15/vibetravels/internal/planner"
	"github.com/robm15/vibetravels/internal/quota"
	"github.com/robm15/vibetravels/internal/store"
)

const testSecret = "api-test-secret-with-32-characters!!"

// testServer is a fully wired API over an in-memory store, a canned
// completion client, and real JWT verification.
type testServer struct {
	srv      *httptest.Server
	verifier *auth.JWTVerifier
}

func newTestServer(t *testing.T, dailyLimit int) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8090},
		Security: config.SecurityConfig{
			JWTSecret:         testSecret,
			RateLimitReqs:     1000,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"*"},
		},
		AI:    config.AIConfig{Timeout: 5 * time.Second, DailyLimit: dailyLimit, Offline: true},
		Store: config.StoreConfig{InMemory: true},
	}

	db, err := store.Open(cfg.Store)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	tracker := quota.NewTracker(cfg.AI.DailyLimit)
	service := planner.NewService(db.Notes(), db.Preferences(), db.Plans(), tracker, ai.NewCannedClient())
	handler := NewHandler(service, db.Notes(), db.Preferences(), cfg)

	verifier, err := auth.NewJWTVerifier(cfg.Security.JWTSecret)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	limiter := auth.NewRateLimiter(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow, true)
	t.Cleanup(limiter.Stop)

	router := NewRouter(handler, auth.NewResolver(verifier), limiter, cfg)
	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)

	return &testServer{srv: srv, verifier: verifier}
}

// tokenFor signs a one-hour token for the given user.
func (ts *testServer) tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := ts.verifier.Sign(models.Principal{ID: userID, Email: userID + "@example.com"}, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// do performs a request, optionally authenticated, and decodes the JSON body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, reqBody)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("decode %s %s response %q: %v", method, path, data, err)
		}
	}
	return resp.StatusCode, decoded
}

// createNote makes a note for the user and returns its id.
func (ts *testServer) createNote(t *testing.T, token string) string {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/api/notes", token, map[string]any{
		"title":   "Weekend trip",
		"content": "Two days somewhere warm.",
	})
	if status != http.StatusCreated {
		t.Fatalf("create note status = %d, body %v", status, body)
	}
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatalf("create note returned no id: %v", body)
	}
	return id
}

// fillPreferences saves three categories for the user, enough to generate.
func (ts *testServer) fillPreferences(t *testing.T, token string) {
	t.Helper()
	status, body := ts.do(t, http.MethodPut, "/api/preferences", token, map[string]any{
		"budget":    "MODERATE",
		"pace":      "RELAXED",
		"interests": []string{"CULTURE", "NATURE"},
	})
	if status != http.StatusOK {
		t.Fatalf("save preferences status = %d, body %v", status, body)
	}
}

func TestHealthIsPublic(t *testing.T) {
	ts := newTestServer(t, 5)

	status, body := ts.do(t, http.MethodGet, "/api/health", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	ts := newTestServer(t, 5)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/notes"},
		{http.MethodGet, "/api/preferences"},
		{http.MethodGet, "/api/trip-plans/can-generate?noteId=x"},
		{http.MethodGet, "/api/trip-plans/some-id"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			status, body := ts.do(t, p.method, p.path, "", nil)
			if status != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", status)
			}
			if body["success"] != false {
				t.Errorf("body = %v, want success:false", body)
			}
		})
	}

	t.Run("invalid token is anonymous", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodGet, "/api/notes", "completely-invalid", nil)
		if status != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", status)
		}
	})
}

func TestNoteLifecycle(t *testing.T) {
	ts := newTestServer(t, 5)
	aliceTok := ts.tokenFor(t, "alice")
	bobTok := ts.tokenFor(t, "bob")

	noteID := ts.createNote(t, aliceTok)

	status, body := ts.do(t, http.MethodGet, "/api/notes/"+noteID, aliceTok, nil)
	if status != http.StatusOK || body["title"] != "Weekend trip" {
		t.Fatalf("get note = %d %v", status, body)
	}

	// Cross-owner access reads as missing.
	status, _ = ts.do(t, http.MethodGet, "/api/notes/"+noteID, bobTok, nil)
	if status != http.StatusNotFound {
		t.Errorf("cross-owner get = %d, want 404", status)
	}

	status, body = ts.do(t, http.MethodPut, "/api/notes/"+noteID, aliceTok, map[string]any{
		"title":   "Updated trip",
		"content": "Now three days.",
	})
	if status != http.StatusOK || body["title"] != "Updated trip" {
		t.Fatalf("update note = %d %v", status, body)
	}

	status, _ = ts.do(t, http.MethodPut, "/api/notes/"+noteID, bobTok, map[string]any{"title": "Hijack"})
	if status != http.StatusNotFound {
		t.Errorf("cross-owner update = %d, want 404", status)
	}

	status, body = ts.do(t, http.MethodGet, "/api/notes", aliceTok, nil)
	if status != http.StatusOK {
		t.Fatalf("list notes = %d", status)
	}
	if notes, ok := body["notes"].([]any); !ok || len(notes) != 1 {
		t.Errorf("notes = %v, want one entry", body["notes"])
	}

	status, _ = ts.do(t, http.MethodDelete, "/api/notes/"+noteID, bobTok, nil)
	if status != http.StatusNotFound {
		t.Errorf("cross-owner delete = %d, want 404", status)
	}
	status, _ = ts.do(t, http.MethodDelete, "/api/notes/"+noteID, aliceTok, nil)
	if status != http.StatusOK {
		t.Errorf("owner delete = %d, want 200", status)
	}
}

func TestCreateNoteValidation(t *testing.T) {
	ts := newTestServer(t, 5)
	tok := ts.tokenFor(t, "alice")

	status, body := ts.do(t, http.MethodPost, "/api/notes", tok, map[string]any{"content": "no title"})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d %v, want 400 for missing title", status, body)
	}
}

func TestPreferences(t *testing.T) {
	ts := newTestServer(t, 5)
	tok := ts.tokenFor(t, "alice")

	t.Run("empty set before save", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/api/preferences", tok, nil)
		if status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if body["filled_count"].(float64) != 0 || body["ready_for_plans"] != false {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("invalid enum rejected", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPut, "/api/preferences", tok, map[string]any{"budget": "EXTRAVAGANT"})
		if status != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", status)
		}

		status, _ = ts.do(t, http.MethodPut, "/api/preferences", tok, map[string]any{"interests": []string{"CULTURE", "SKYDIVING"}})
		if status != http.StatusBadRequest {
			t.Errorf("status = %d, want 400 for bad slice member", status)
		}
	})

	t.Run("upsert and readback", func(t *testing.T) {
		ts.fillPreferences(t, tok)

		status, body := ts.do(t, http.MethodGet, "/api/preferences", tok, nil)
		if status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if body["filled_count"].(float64) != 3 || body["ready_for_plans"] != true {
			t.Errorf("body = %v, want 3 filled and ready", body)
		}
	})

	t.Run("options", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/api/preferences/options", tok, nil)
		if status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		options, ok := body["options"].(map[string]any)
		if !ok {
			t.Fatalf("options = %v", body["options"])
		}
		for _, category := range []string{"budget", "pace", "interests", "accommodation_style", "transport", "food_preferences", "season"} {
			if _, ok := options[category]; !ok {
				t.Errorf("options missing category %q", category)
			}
		}
	})
}

func TestGenerateFlow(t *testing.T) {
	ts := newTestServer(t, 2)
	aliceTok := ts.tokenFor(t, "alice")
	bobTok := ts.tokenFor(t, "bob")
	noteID := ts.createNote(t, aliceTok)

	t.Run("can-generate without preferences", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/api/trip-plans/can-generate?noteId="+noteID, aliceTok, nil)
		if status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if body["can_generate"] != false || body["missing_preferences"] != true {
			t.Errorf("body = %v, want missing_preferences", body)
		}
	})

	t.Run("generate without preferences", func(t *testing.T) {
		status, body := ts.do(t, http.MethodPost, "/api/trip-plans/generate", aliceTok, map[string]any{"noteId": noteID})
		if status != http.StatusBadRequest || body["missing_preferences"] != true {
			t.Fatalf("status = %d body = %v, want 400 missing_preferences", status, body)
		}
	})

	ts.fillPreferences(t, aliceTok)

	t.Run("can-generate when eligible", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/api/trip-plans/can-generate?noteId="+noteID, aliceTok, nil)
		if status != http.StatusOK || body["can_generate"] != true {
			t.Fatalf("status = %d body = %v", status, body)
		}
		if body["remaining_usage"].(float64) != 2 || body["daily_limit"].(float64) != 2 {
			t.Errorf("body = %v, want remaining 2 of 2", body)
		}
	})

	t.Run("generate for unknown note", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/api/trip-plans/generate", aliceTok, map[string]any{"noteId": "missing"})
		if status != http.StatusNotFound {
			t.Errorf("status = %d, want 404", status)
		}
	})

	t.Run("generate for another user's note", func(t *testing.T) {
		ts.fillPreferences(t, bobTok)
		status, _ := ts.do(t, http.MethodPost, "/api/trip-plans/generate", bobTok, map[string]any{"noteId": noteID})
		if status != http.StatusNotFound {
			t.Errorf("status = %d, want 404", status)
		}
	})

	var planID string
	t.Run("successful generation", func(t *testing.T) {
		status, body := ts.do(t, http.MethodPost, "/api/trip-plans/generate", aliceTok, map[string]any{"noteId": noteID})
		if status != http.StatusCreated {
			t.Fatalf("status = %d body = %v, want 201", status, body)
		}
		if body["success"] != true {
			t.Errorf("body = %v", body)
		}
		if body["remaining_usage"].(float64) != 1 {
			t.Errorf("remaining_usage = %v, want 1", body["remaining_usage"])
		}
		plan, ok := body["trip_plan"].(map[string]any)
		if !ok {
			t.Fatalf("trip_plan = %v", body["trip_plan"])
		}
		planID, _ = plan["id"].(string)
		if planID == "" {
			t.Fatal("plan has no id")
		}
	})

	t.Run("quota exhaustion", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/api/trip-plans/generate", aliceTok, map[string]any{"noteId": noteID})
		if status != http.StatusCreated {
			t.Fatalf("second generation status = %d", status)
		}

		status, body := ts.do(t, http.MethodPost, "/api/trip-plans/generate", aliceTok, map[string]any{"noteId": noteID})
		if status != http.StatusBadRequest {
			t.Fatalf("third generation status = %d, want 400", status)
		}
		if body["limit_exceeded"] != true || body["daily_limit"].(float64) != 2 {
			t.Errorf("body = %v, want limit_exceeded with daily_limit 2", body)
		}
	})

	t.Run("get plan", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/api/trip-plans/"+planID, aliceTok, nil)
		if status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if body["note_id"] != noteID {
			t.Errorf("body = %v", body)
		}

		// Cross-owner read is indistinguishable from missing.
		status, _ = ts.do(t, http.MethodGet, "/api/trip-plans/"+planID, bobTok, nil)
		if status != http.StatusNotFound {
			t.Errorf("cross-owner get = %d, want 404", status)
		}
	})

	t.Run("list plans for note", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/api/trip-plans/?noteId="+noteID, aliceTok, nil)
		if status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if plans, ok := body["trip_plans"].([]any); !ok || len(plans) != 2 {
			t.Errorf("trip_plans = %v, want 2 entries", body["trip_plans"])
		}

		status, _ = ts.do(t, http.MethodGet, "/api/trip-plans/?noteId="+noteID, bobTok, nil)
		if status != http.StatusNotFound {
			t.Errorf("cross-owner list = %d, want 404", status)
		}
	})

	t.Run("rate plan", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPut, "/api/trip-plans/"+planID+"/rate", aliceTok, map[string]any{"rating": 6})
		if status != http.StatusBadRequest {
			t.Errorf("rating 6 status = %d, want 400", status)
		}

		status, _ = ts.do(t, http.MethodPut, "/api/trip-plans/"+planID+"/rate", bobTok, map[string]any{"rating": 3})
		if status != http.StatusForbidden {
			t.Errorf("cross-owner rate = %d, want 403", status)
		}

		status, _ = ts.do(t, http.MethodPut, "/api/trip-plans/missing/rate", aliceTok, map[string]any{"rating": 3})
		if status != http.StatusNotFound {
			t.Errorf("missing plan rate = %d, want 404", status)
		}

		status, body := ts.do(t, http.MethodPut, "/api/trip-plans/"+planID+"/rate", aliceTok, map[string]any{"rating": 5})
		if status != http.StatusOK {
			t.Fatalf("rate status = %d", status)
		}
		plan, _ := body["trip_plan"].(map[string]any)
		if plan == nil || plan["rating"].(float64) != 5 {
			t.Errorf("rated plan = %v, want rating 5", plan)
		}
	})

	t.Run("delete plan", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodDelete, "/api/trip-plans/"+planID, bobTok, nil)
		if status != http.StatusForbidden {
			t.Errorf("cross-owner delete = %d, want 403", status)
		}

		status, _ = ts.do(t, http.MethodDelete, "/api/trip-plans/"+planID, aliceTok, nil)
		if status != http.StatusOK {
			t.Errorf("owner delete = %d, want 200", status)
		}

		status, _ = ts.do(t, http.MethodDelete, "/api/trip-plans/"+planID, aliceTok, nil)
		if status != http.StatusNotFound {
			t.Errorf("repeat delete = %d, want 404", status)
		}
	})
}

func TestGenerateRequestValidation(t *testing.T) {
	ts := newTestServer(t, 5)
	tok := ts.tokenFor(t, "alice")

	status, _ := ts.do(t, http.MethodPost, "/api/trip-plans/generate", tok, map[string]any{})
	if status != http.StatusBadRequest {
		t.Errorf("empty body status = %d, want 400", status)
	}

	status, _ = ts.do(t, http.MethodGet, "/api/trip-plans/can-generate", tok, nil)
	if status != http.StatusBadRequest {
		t.Errorf("missing noteId status = %d, want 400", status)
	}
}
