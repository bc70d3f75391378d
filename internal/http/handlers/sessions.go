package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daymaker2day/daymaker2day/internal/app"
	"github.com/daymaker2day/daymaker2day/internal/livesession"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

// SessionsHandler serves the scheduled-session collection and the joinable
// window state.
type SessionsHandler struct {
	app         *app.App
	transcripts *livesession.TranscriptStore
	logger      *logging.Logger
}

// NewSessionsHandler creates a sessions handler.
func NewSessionsHandler(a *app.App, transcripts *livesession.TranscriptStore, logger *logging.Logger) *SessionsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SessionsHandler{app: a, transcripts: transcripts, logger: logger}
}

// List returns every scheduled session in stored order.
func (h *SessionsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sessions": h.app.Monitor().Sessions()})
}

// Active returns the session currently inside its activity window. The
// payload carries joinable=false with a null session when nothing is live.
func (h *SessionsHandler) Active(w http.ResponseWriter, r *http.Request) {
	active := h.app.Joinable()
	writeJSON(w, http.StatusOK, map[string]any{
		"joinable": active != nil,
		"session":  active,
	})
}

// Cancel drops a scheduled session, ending its live view if one is open.
func (h *SessionsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	h.app.CancelSession(id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session cancelled"})
}

// Transcript returns the archived chat log for an ended session.
func (h *SessionsHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	messages, err := h.transcripts.List(r.Context(), id, 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load transcript")
		return
	}
	if messages == nil {
		messages = []livesession.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}
