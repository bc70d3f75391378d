package handlers

import (
	"net/http"
	"strings"

	"github.com/daymaker2day/daymaker2day/internal/concierge"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

// ChatHandler fronts the AI concierge.
type ChatHandler struct {
	concierge *concierge.Service
	logger    *logging.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(svc *concierge.Service, logger *logging.Logger) *ChatHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatHandler{concierge: svc, logger: logger}
}

type chatRequest struct {
	UserQuery string `json:"user_query"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Recommend answers a visitor query with menu suggestions. The response is
// always 200 with text; concierge failures surface as the offline fallback,
// never as an error status.
func (h *ChatHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.UserQuery) == "" {
		writeError(w, http.StatusBadRequest, "missing user_query")
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Response: h.concierge.Recommend(r.Context(), req.UserQuery)})
}
