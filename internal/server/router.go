package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"regexp"

	"tally/internal/processor"
	"tally/internal/receipt"
	"tally/internal/store"
)

// Lookup identifiers are opaque tokens without embedded whitespace.
var idPattern = regexp.MustCompile(`^\S+$`)

// Router manages the public routes of the service: receipt submission,
// points lookup, processing statistics, and a liveness banner.
type Router struct {
	// proc — orchestrates scoring, identifier issuing and storage.
	proc *processor.Processor
}

// Mux returns a configured *http.ServeMux with registered handlers.
// Registers the following routes:
// - POST /receipts/process — submits a receipt, returns its identifier
// - GET /receipts/{id}/points — returns the points awarded for a receipt
// - GET /stats — returns the submission counter and recent journal
// - GET / — liveness banner
func (rt *Router) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /receipts/process", rt.processHandler)
	mux.HandleFunc("GET /receipts/{id}/points", rt.pointsHandler)
	mux.HandleFunc("GET /stats", rt.statsHandler)
	mux.HandleFunc("GET /{$}", rt.rootHandler)
	return mux
}

// processHandler handles receipt submissions. Expects a JSON receipt in
// the request body. A malformed or invalid receipt yields 400; an accepted
// receipt yields the issued identifier as {"id": "..."}.
func (rt *Router) processHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Warn("Unreadable receipt request body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "The receipt is invalid."})
		return
	}

	defer r.Body.Close()

	var payload receipt.ReceiptPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.Warn("Unable to unmarshal receipt request body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "The receipt is invalid."})
		return
	}

	parsed, err := receipt.Parse(payload)
	if err != nil {
		slog.Warn("Receipt rejected", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "The receipt is invalid."})
		return
	}

	id, err := rt.proc.Submit(parsed)
	if err != nil {
		slog.Error("Unable to store receipt", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// pointsHandler handles points lookups. The identifier is extracted from
// the URL path: /receipts/{id}/points. An unknown identifier yields 404.
func (rt *Router) pointsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !idPattern.MatchString(id) {
		slog.Warn("Malformed receipt id", "id", id)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	points, err := rt.proc.Points(id)
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("Receipt not found", "id", id)
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "No receipt found for that ID."})
			return
		}
		slog.Error("Unable to read receipt points", "id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"points": points})
}

// statsHandler reports the submission counter and the recent journal.
func (rt *Router) statsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.proc.Stats())
}

// rootHandler reports that the service is up.
func (rt *Router) rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Receipt points service is running."})
}

// writeJSON marshals v and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("Unable to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// NewRouter creates a router serving the given processor.
func NewRouter(proc *processor.Processor) *Router {
	return &Router{proc: proc}
}
