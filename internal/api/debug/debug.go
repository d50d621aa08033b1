package debug

import (
	"log"
	"net/http"

	dto "plink_backend/internal/api/dto/debug"
	"plink_backend/internal/config"
	"plink_backend/internal/service"
	"plink_backend/pkg/req"
	"plink_backend/pkg/resp"
	"plink_backend/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

type HandlerDeps struct {
	Game     service.GameService
	Settings service.SettingsService
	AuthCfg  config.DebugAuthConfig
}

type Handler struct {
	game     service.GameService
	settings service.SettingsService
	authCfg  config.DebugAuthConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		game:     deps.Game,
		settings: deps.Settings,
		authCfg:  deps.AuthCfg,
	}
}

// Unlock checks the debug PIN, flips the persisted debug-menu flag on and
// hands back a short-lived access token for the protected debug routes.
func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UnlockRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.authCfg.PinHash(), []byte(payload.Pin)); err != nil {
		http.Error(w, "invalid pin", http.StatusUnauthorized)
		return
	}

	if err := h.settings.SetDebugMenuEnabled(r.Context(), true); err != nil {
		log.Println("Unlock error:", err)
		http.Error(w, "unlock failed", http.StatusInternalServerError)
		return
	}

	accessToken, err := token.GenerateAccessToken(
		"debug",
		h.authCfg.AccessTokenSecretKey(),
		h.authCfg.AccessTokenDuration(),
	)
	if err != nil {
		log.Println("Unlock token error:", err)
		http.Error(w, "unlock failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.UnlockResponse{AccessToken: accessToken})
}

// AddCoins credits the balance without touching the earned total.
func (h *Handler) AddCoins(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AddCoinsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.game.DebugAddCoins(r.Context(), payload.Amount); err != nil {
		log.Println("DebugAddCoins error:", err)
		http.Error(w, "debug add coins failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetCoins(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SetCoinsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.game.DebugSetCoins(r.Context(), payload.Amount); err != nil {
		log.Println("DebugSetCoins error:", err)
		http.Error(w, "debug set coins failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MaxUpgrades(w http.ResponseWriter, r *http.Request) {
	if err := h.game.DebugMaxUpgrades(r.Context()); err != nil {
		log.Println("DebugMaxUpgrades error:", err)
		http.Error(w, "debug max upgrades failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reset clears every persisted game key; the next read returns defaults.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.game.DebugResetGame(r.Context()); err != nil {
		log.Println("DebugResetGame error:", err)
		http.Error(w, "debug reset failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
