package settings

import (
	"log"
	"net/http"

	dto "plink_backend/internal/api/dto/settings"
	"plink_backend/internal/converter"
	"plink_backend/internal/model"
	"plink_backend/internal/service"
	"plink_backend/pkg/req"
	"plink_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SettingsService
}

type Handler struct {
	serv service.SettingsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	mode, err := h.serv.ThemeMode(r.Context())
	if err != nil {
		log.Println("GetTheme error:", err)
		http.Error(w, "failed to read theme", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToThemeResponse(mode))
}

func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SetThemeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mode, ok := model.ParseThemeMode(payload.ThemeMode)
	if !ok {
		http.Error(w, "unknown theme mode", http.StatusBadRequest)
		return
	}

	if err := h.serv.SetThemeMode(r.Context(), mode); err != nil {
		log.Println("SetTheme error:", err)
		http.Error(w, "failed to set theme", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToThemeResponse(mode))
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	mode, err := h.serv.ToggleTheme(r.Context())
	if err != nil {
		log.Println("ToggleTheme error:", err)
		http.Error(w, "failed to toggle theme", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToThemeResponse(mode))
}

func (h *Handler) GetDebugMenu(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.serv.DebugMenuEnabled(r.Context())
	if err != nil {
		log.Println("GetDebugMenu error:", err)
		http.Error(w, "failed to read debug menu state", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DebugMenuResponse{Enabled: enabled})
}

func (h *Handler) SetDebugMenu(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SetDebugMenuRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.serv.SetDebugMenuEnabled(r.Context(), payload.Enabled); err != nil {
		log.Println("SetDebugMenu error:", err)
		http.Error(w, "failed to set debug menu state", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DebugMenuResponse{Enabled: payload.Enabled})
}

func (h *Handler) ToggleDebugMenu(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.serv.ToggleDebugMenu(r.Context())
	if err != nil {
		log.Println("ToggleDebugMenu error:", err)
		http.Error(w, "failed to toggle debug menu", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DebugMenuResponse{Enabled: enabled})
}
