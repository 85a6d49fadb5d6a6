package server

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "persondocs"

// Flash is a one-shot message rendered on the next page load.
type Flash struct {
	Category string // "success" or "danger"
	Message  string
}

func init() {
	gob.Register(Flash{})
}

func newSessionStore(secretKey string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	session, _ := h.sessions.Get(r, sessionName)
	session.AddFlash(Flash{Category: category, Message: message})
	if err := h.sessions.Save(r, w, session); err != nil {
		h.logger.Warn("failed to save flash", "error", err)
	}
}

func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, _ := h.sessions.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := h.sessions.Save(r, w, session); err != nil {
			h.logger.Warn("failed to clear flashes", "error", err)
		}
	}
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
