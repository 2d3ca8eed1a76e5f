package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rollforge/dicechat"
	"github.com/rollforge/dicechat/storage"
)

func testDeps() *deps {
	metrics := NewMetrics()
	h := newHub(metrics)
	go h.run()
	return &deps{
		store:   storage.NewMemStore(),
		hub:     h,
		metrics: metrics,
		source:  dice.MaxFaceSource{},
	}
}

func TestRollHandler(t *testing.T) {
	d := testDeps()
	router := configureRouting(d, d.metrics, Config{})

	req := httptest.NewRequest(http.MethodGet, "/v1/roll/2d6", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["sum"].(float64) != 12 {
		t.Errorf("sum = %v, want 12", body["sum"])
	}
}

func TestChatHandlerBroadcastsAndLogs(t *testing.T) {
	d := testDeps()
	router := configureRouting(d, d.metrics, Config{})

	sub := &client{hub: d.hub, room: "tavern", send: make(chan []byte, 1)}
	d.hub.register <- sub

	reqBody, _ := json.Marshal(chatRequest{Source: "gm", Contents: "roll [[1d6]]"})
	req := httptest.NewRequest(http.MethodPost, "/v1/rooms/tavern/chat", bytes.NewReader(reqBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	entries, err := d.store.RecentEntries(req.Context(), "tavern", 10)
	if err != nil {
		t.Fatalf("RecentEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Contents != "roll 6 {1d6 [6]}" {
		t.Errorf("contents = %q", entries[0].Contents)
	}

	select {
	case msg := <-sub.send:
		if !strings.Contains(string(msg), gameLogEntryAddEvent) || !strings.Contains(string(msg), "roll 6 {1d6 [6]}") {
			t.Errorf("broadcast = %s", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("no broadcast received by room subscriber")
	}
}

func TestRollHandlerInvalidExpression(t *testing.T) {
	d := testDeps()
	router := configureRouting(d, d.metrics, Config{})

	req := httptest.NewRequest(http.MethodGet, "/v1/roll/not-a-roll", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	d := testDeps()
	router := configureRouting(d, d.metrics, Config{AuthTokens: []string{"secret"}})

	req := httptest.NewRequest(http.MethodGet, "/v1/roll/2d6", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	d := testDeps()
	router := configureRouting(d, d.metrics, Config{AuthTokens: []string{"secret"}})

	req := httptest.NewRequest(http.MethodGet, "/v1/roll/2d6", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
