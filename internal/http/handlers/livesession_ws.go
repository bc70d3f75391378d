package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/websocket"

	"github.com/daymaker2day/daymaker2day/internal/app"
	"github.com/daymaker2day/daymaker2day/internal/livesession"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

// LiveSessionHandler carries the live call over a WebSocket: commands in,
// state and chat frames out.
type LiveSessionHandler struct {
	app          *app.App
	pushInterval time.Duration
	logger       *logging.Logger
}

// NewLiveSessionHandler creates the live session socket handler.
func NewLiveSessionHandler(a *app.App, logger *logging.Logger) *LiveSessionHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveSessionHandler{app: a, pushInterval: 500 * time.Millisecond, logger: logger}
}

// liveInbound is what the client sends.
type liveInbound struct {
	Type string `json:"type"` // "chat", "join_now", "toggle_mute", "toggle_video", "screen_share_start", "screen_share_stop", "end", "ping"
	Text string `json:"text,omitempty"`
}

// liveOutbound is what we send to the client.
type liveOutbound struct {
	Type           string                    `json:"type"` // "state", "chat", "pong", "error"
	Phase          livesession.Phase         `json:"phase,omitempty"`
	WaitingSeconds int                       `json:"waiting_seconds,omitempty"`
	ActiveSeconds  int                       `json:"active_seconds,omitempty"`
	HostJoined     bool                      `json:"host_joined,omitempty"`
	Muted          bool                      `json:"muted,omitempty"`
	VideoOn        bool                      `json:"video_on,omitempty"`
	ScreenSharing  bool                      `json:"screen_sharing,omitempty"`
	Messages       []livesession.ChatMessage `json:"messages,omitempty"`
	Text           string                    `json:"text,omitempty"`
}

// HandleWebSocket upgrades to WebSocket and drives the live session.
func (h *LiveSessionHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *LiveSessionHandler) serveWS(conn *websocket.Conn, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	session, err := h.app.EnterLiveSession(id)
	if err != nil {
		if errors.Is(err, app.ErrSessionNotJoinable) {
			_ = websocket.JSON.Send(conn, liveOutbound{Type: "error", Text: "session is not joinable right now"})
		} else {
			_ = websocket.JSON.Send(conn, liveOutbound{Type: "error", Text: "could not open session"})
		}
		return
	}

	h.logger.Info("live socket opened", "session_id", id)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go h.pushLoop(ctx, conn, session)

	for {
		var msg liveInbound
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("live socket closed", "session_id", id, "error", err)
			return
		}

		switch msg.Type {
		case "ping":
			_ = websocket.JSON.Send(conn, liveOutbound{Type: "pong"})
		case "chat":
			if strings.TrimSpace(msg.Text) == "" {
				continue
			}
			session.SendMessage(livesession.RoleVisitor, msg.Text)
		case "join_now":
			session.JoinNow()
		case "toggle_mute":
			session.ToggleMute()
		case "toggle_video":
			session.ToggleVideo()
		case "screen_share_start":
			session.StartScreenShare(ctx)
		case "screen_share_stop":
			session.StopScreenShare()
		case "end":
			session.End()
			return
		}
	}
}

// pushLoop streams state snapshots and transcript deltas until the
// connection or the session goes away.
func (h *LiveSessionHandler) pushLoop(ctx context.Context, conn *websocket.Conn, session *livesession.Session) {
	ticker := time.NewTicker(h.pushInterval)
	defer ticker.Stop()

	sent := 0
	for {
		transcript := session.Transcript()
		if len(transcript) > sent {
			if err := websocket.JSON.Send(conn, liveOutbound{Type: "chat", Messages: transcript[sent:]}); err != nil {
				return
			}
			sent = len(transcript)
		}

		state := liveOutbound{
			Type:           "state",
			Phase:          session.Phase(),
			WaitingSeconds: session.WaitingSeconds(),
			ActiveSeconds:  session.ActiveSeconds(),
			HostJoined:     session.HostJoined(),
			Muted:          session.Muted(),
			VideoOn:        session.VideoOn(),
			ScreenSharing:  session.ScreenSharing(),
		}
		if err := websocket.JSON.Send(conn, state); err != nil {
			return
		}
		if state.Phase == livesession.PhaseEnded {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
