package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daymaker2day/daymaker2day/internal/admin"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

// AdminHandler serves the content/social panel.
type AdminHandler struct {
	svc    *admin.Service
	logger *logging.Logger
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(svc *admin.Service, logger *logging.Logger) *AdminHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminHandler{svc: svc, logger: logger}
}

// Routes mounts the admin panel's endpoints.
func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/newsletters", func(r chi.Router) {
		r.Get("/", h.ListNewsletters)
		r.Post("/", h.CreateNewsletter)
		r.Put("/{newsletterID}", h.UpdateNewsletter)
		r.Delete("/{newsletterID}", h.DeleteNewsletter)
		r.Post("/{newsletterID}/send", h.SendNewsletter)
	})
	r.Route("/releases", func(r chi.Router) {
		r.Get("/", h.ListReleases)
		r.Post("/", h.CreateRelease)
		r.Put("/{releaseID}", h.UpdateRelease)
		r.Delete("/{releaseID}", h.DeleteRelease)
	})
	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts)
		r.Post("/", h.CreatePost)
		r.Put("/{postID}", h.UpdatePost)
		r.Delete("/{postID}", h.DeletePost)
	})
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.ListAccounts)
		r.Post("/{accountID}/connect", h.ConnectAccount)
		r.Post("/{accountID}/disconnect", h.DisconnectAccount)
	})
	return r
}

func (h *AdminHandler) ListNewsletters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"newsletters": h.svc.Store().ListNewsletters()})
}

func (h *AdminHandler) CreateNewsletter(w http.ResponseWriter, r *http.Request) {
	var n admin.Newsletter
	if !decodeJSON(w, r, &n) {
		return
	}
	if n.Subject == "" {
		writeError(w, http.StatusBadRequest, "subject is required")
		return
	}
	writeJSON(w, http.StatusCreated, h.svc.Store().CreateNewsletter(n))
}

func (h *AdminHandler) UpdateNewsletter(w http.ResponseWriter, r *http.Request) {
	var n admin.Newsletter
	if !decodeJSON(w, r, &n) {
		return
	}
	updated, err := h.svc.Store().UpdateNewsletter(chi.URLParam(r, "newsletterID"), n)
	if err != nil {
		writeError(w, http.StatusNotFound, "newsletter not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteNewsletter(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Store().DeleteNewsletter(chi.URLParam(r, "newsletterID")); err != nil {
		writeError(w, http.StatusNotFound, "newsletter not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Newsletter deleted"})
}

func (h *AdminHandler) SendNewsletter(w http.ResponseWriter, r *http.Request) {
	sent, err := h.svc.SendNewsletter(r.Context(), chi.URLParam(r, "newsletterID"))
	if err != nil {
		if errors.Is(err, admin.ErrNewsletterNotFound) {
			writeError(w, http.StatusNotFound, "newsletter not found")
			return
		}
		h.logger.Error("newsletter send failed", "error", err)
		writeError(w, http.StatusBadGateway, "newsletter delivery failed")
		return
	}
	writeJSON(w, http.StatusOK, sent)
}

func (h *AdminHandler) ListReleases(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"releases": h.svc.Store().ListReleases()})
}

func (h *AdminHandler) CreateRelease(w http.ResponseWriter, r *http.Request) {
	var rel admin.ContentRelease
	if !decodeJSON(w, r, &rel) {
		return
	}
	if rel.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	writeJSON(w, http.StatusCreated, h.svc.Store().CreateRelease(rel))
}

func (h *AdminHandler) UpdateRelease(w http.ResponseWriter, r *http.Request) {
	var rel admin.ContentRelease
	if !decodeJSON(w, r, &rel) {
		return
	}
	updated, err := h.svc.Store().UpdateRelease(chi.URLParam(r, "releaseID"), rel)
	if err != nil {
		writeError(w, http.StatusNotFound, "content release not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteRelease(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Store().DeleteRelease(chi.URLParam(r, "releaseID")); err != nil {
		writeError(w, http.StatusNotFound, "content release not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Content release deleted"})
}

func (h *AdminHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"posts": h.svc.Store().ListPosts()})
}

func (h *AdminHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var p admin.SocialPost
	if !decodeJSON(w, r, &p) {
		return
	}
	if p.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}
	writeJSON(w, http.StatusCreated, h.svc.Store().CreatePost(p))
}

func (h *AdminHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var p admin.SocialPost
	if !decodeJSON(w, r, &p) {
		return
	}
	updated, err := h.svc.Store().UpdatePost(chi.URLParam(r, "postID"), p)
	if err != nil {
		writeError(w, http.StatusNotFound, "social post not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Store().DeletePost(chi.URLParam(r, "postID")); err != nil {
		writeError(w, http.StatusNotFound, "social post not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Social post deleted"})
}

func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"accounts": h.svc.Store().ListAccounts()})
}

func (h *AdminHandler) ConnectAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	acct, err := h.svc.Store().ConnectAccount(chi.URLParam(r, "accountID"), req.Username)
	if err != nil {
		writeError(w, http.StatusNotFound, "social account not found")
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

func (h *AdminHandler) DisconnectAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := h.svc.Store().DisconnectAccount(chi.URLParam(r, "accountID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "social account not found")
		return
	}
	writeJSON(w, http.StatusOK, acct)
}
