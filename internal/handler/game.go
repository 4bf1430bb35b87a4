package handler

import (
	"net/http"

	"github.com/osse101/FishingBot_Go/internal/confirm"
	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/fishing"
)

// GameHandler serves the JSON game API.
type GameHandler struct {
	svc      fishing.Service
	confirms *confirm.Manager
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(svc fishing.Service, confirms *confirm.Manager) *GameHandler {
	return &GameHandler{svc: svc, confirms: confirms}
}

// PlayerResponse is the public view of a player record.
type PlayerResponse struct {
	PlayerID     string         `json:"player_id"`
	Money        int            `json:"money"`
	Items        map[string]int `json:"items"`
	CurrentRod   string         `json:"current_rod"`
	FishCaught   map[string]int `json:"fish_caught"`
	TotalCatches int            `json:"total_catches"`
	TotalCasts   int            `json:"total_casts"`
}

func newPlayerResponse(p *domain.Player) PlayerResponse {
	return PlayerResponse{
		PlayerID:     p.ID,
		Money:        p.Money,
		Items:        p.Items,
		CurrentRod:   p.CurrentRod,
		FishCaught:   p.FishCaught,
		TotalCatches: p.TotalCatches,
		TotalCasts:   p.TotalCasts,
	}
}

// ShopResponse lists purchasable equipment.
type ShopResponse struct {
	Items []domain.Item `json:"items"`
}

type BuyRequest struct {
	Item string `json:"item" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

type EquipRequest struct {
	Rod string `json:"rod" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleShop lists the shop.
func (h *GameHandler) HandleShop(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ShopResponse{Items: h.svc.Shop(r.Context())})
}

// HandleGetPlayer returns the player's bag, creating the player on first sight.
func (h *GameHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Bag(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get player", err)
		return
	}
	respondJSON(w, http.StatusOK, newPlayerResponse(p))
}

// HandleFish resolves one cast immediately; API clients get no reel-in delay.
func (h *GameHandler) HandleFish(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Cast(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Fish", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleBuy purchases one unit of an item.
func (h *GameHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	var req BuyRequest
	if err := decodeAndValidate(w, r, &req, "buy"); err != nil {
		return
	}

	res, err := h.svc.Buy(r.Context(), id, req.Item)
	if err != nil {
		respondServiceError(w, r, "Buy", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleEquip switches the equipped rod.
func (h *GameHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	var req EquipRequest
	if err := decodeAndValidate(w, r, &req, "equip"); err != nil {
		return
	}

	p, err := h.svc.Equip(r.Context(), id, req.Rod)
	if err != nil {
		respondServiceError(w, r, "Equip", err)
		return
	}
	respondJSON(w, http.StatusOK, newPlayerResponse(p))
}
