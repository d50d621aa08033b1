package game

import (
	"log"
	"net/http"

	dto "plink_backend/internal/api/dto/game"
	"plink_backend/internal/converter"
	"plink_backend/internal/model"
	"plink_backend/internal/service"
	"plink_backend/pkg/req"
	"plink_backend/pkg/resp"
)

type HandlerDeps struct {
	Session service.SessionService
	Game    service.GameService
}

type Handler struct {
	session service.SessionService
	game    service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		session: deps.Session,
		game:    deps.Game,
	}
}

func (h *Handler) Tap(w http.ResponseWriter, r *http.Request) {
	ui, err := h.session.OnCoinTap(r.Context())
	if err != nil {
		log.Println("Tap error:", err)
		http.Error(w, "tap failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(ui))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.session.UIState()))
}

func (h *Handler) Gamble(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GambleRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.session.Gamble(r.Context(), payload.Wager)
	if err != nil {
		log.Println("Gamble error:", err)
		http.Error(w, "gamble failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGambleResponse(*result))
}

func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PurchaseRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, ok := h.game.Catalog().ByID(model.UpgradeID(payload.UpgradeID)); !ok {
		http.Error(w, "unknown upgrade", http.StatusBadRequest)
		return
	}

	result, err := h.session.PurchaseUpgrade(r.Context(), model.UpgradeID(payload.UpgradeID))
	if err != nil {
		log.Println("Purchase error:", err)
		http.Error(w, "purchase failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPurchaseResponse(*result))
}

func (h *Handler) Shop(w http.ResponseWriter, r *http.Request) {
	ui := h.session.UIState()
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToShopResponse(ui.GameState, h.game.Catalog()))
}
