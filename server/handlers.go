package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/rollforge/dicechat"
	"github.com/rollforge/dicechat/storage"
)

// deps bundles the dependencies the HTTP handlers need, so routing.go can
// close over one value instead of a pile of package globals.
type deps struct {
	store   storage.Store
	hub     *hub
	metrics *Metrics
	source  dice.RandSource
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("marshal response")
		response = []byte(`{"error":"internal error"}`)
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, err string) {
	respondWithJSON(w, code, map[string]string{"error": err})
}

// rootHandler describes the API surface for anyone hitting the bare server.
func rootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "dicechat",
		"roll":    "/v1/roll/{expression}",
		"chat":    "/v1/rooms/{room}/chat",
		"connect": "/v1/rooms/{room}/chat/ws",
	})
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// rollHandler evaluates a single dice expression taken from the URL.
func (d *deps) rollHandler(w http.ResponseWriter, r *http.Request) {
	expr := mux.Vars(r)["expression"]

	node, err := dice.ParseDiceExpr(expr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := dice.NewEvalContext(r.Context())
	sum, faces, err := dice.EvalDiceExpr(ctx, node, d.source)
	if err != nil {
		d.metrics.rollsTotal.WithLabelValues("error").Inc()
		if err == dice.ErrRollBudgetExceeded {
			d.metrics.rollBudgetHits.Inc()
		}
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	d.metrics.rollsTotal.WithLabelValues("ok").Inc()

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"expression": expr,
		"sum":        sum,
		"faces":      faces.String(),
	})
}

// chatRequest is the wire shape of a chat-post body. Room is already carried
// by the URL path, so it isn't repeated here.
type chatRequest struct {
	Source     string `json:"source"`
	Contents   string `json:"contents"`
	Visibility *bool  `json:"visibility"`
}

// chatHandler renders a chat message (expanding every [[equation]] it
// contains), appends it to the room's log, and broadcasts it to every
// WebSocket client subscribed to the room.
func (d *deps) chatHandler(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["room"]

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := dice.NewEvalContext(r.Context())
	rendered := dice.Render(ctx, req.Contents, d.source)
	d.metrics.chatMessages.WithLabelValues(room).Inc()

	visibility := true
	if req.Visibility != nil {
		visibility = *req.Visibility
	}

	entry, err := d.store.CreateEntry(r.Context(), room, storage.ChatLogEntry{
		Source:     req.Source,
		Visibility: visibility,
		Contents:   rendered,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	d.hub.Broadcast(room, entry)

	respondWithJSON(w, http.StatusOK, entry)
}

// logHandler returns a room's recent chat log, the most recent limit entries
// (default 20), oldest first.
func (d *deps) logHandler(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["room"]

	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		if parsed, err := strconv.Atoi(q); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := d.store.RecentEntries(r.Context(), room, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// wsHandler upgrades the request to a WebSocket connection subscribed to a
// room's broadcast stream.
func (d *deps) wsHandler(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["room"]
	serveWS(d.hub, w, r, room)
}
