package session

import (
	"net/http"

	dto "plink_backend/internal/api/dto/game"
	"plink_backend/internal/service"
	"plink_backend/pkg/req"
)

type HandlerDeps struct {
	Session service.SessionService
}

type Handler struct {
	session service.SessionService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{session: deps.Session}
}

// Foreground receives the app foreground/background lifecycle signal.
func (h *Handler) Foreground(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ForegroundRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.session.SetForeground(payload.Active)
	w.WriteHeader(http.StatusNoContent)
}

// Visible receives the main-screen visibility signal.
func (h *Handler) Visible(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.VisibleRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.session.SetMainScreenVisible(payload.Visible)
	w.WriteHeader(http.StatusNoContent)
}
