package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/overpowerdb/deckvault/backend/middleware"
	"github.com/overpowerdb/deckvault/deckvault/cards"
	"github.com/overpowerdb/deckvault/deckvault/config"
	"github.com/overpowerdb/deckvault/deckvault/database/models"
	"github.com/overpowerdb/deckvault/deckvault/database/repositories"
)

type createDeckRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
}

type updateDeckRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsLimited   *bool   `json:"isLimited"`
}

type cardEntryRequest struct {
	CardType        string `json:"cardType" validate:"required,max=32"`
	CardID          string `json:"cardId" validate:"required,max=128"`
	Quantity        int    `json:"quantity" validate:"omitempty,min=1"`
	ExcludeFromDraw bool   `json:"excludeFromDraw"`
}

type syncCardsRequest struct {
	Cards []cardEntryRequest `json:"cards" validate:"required,max=200,dive"`
}

func (h *Handler) ListDecks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	decks, err := h.decks.GetByUserID(r.Context(), user.ID)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondOK(w, r, newDeckListResponse(decks))
}

func (h *Handler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireWriter(w, r)
	if !ok {
		return
	}

	var req createDeckRequest
	if !h.decode(w, r, &req) {
		return
	}

	deck, err := h.decks.Create(r.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondCreated(w, r, newDeckResponse(deck))
}

func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	deckID := chi.URLParam(r, "deckID")
	if !h.decks.UserOwnsDeck(r.Context(), deckID, user.ID) {
		respondError(w, r, http.StatusForbidden, "Access denied. You do not own this deck.")
		return
	}

	deck, err := h.decks.GetByID(r.Context(), deckID)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondOK(w, r, newDeckResponse(deck))
}

func (h *Handler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireWriter(w, r)
	if !ok {
		return
	}

	deckID := chi.URLParam(r, "deckID")
	if !h.decks.UserOwnsDeck(r.Context(), deckID, user.ID) {
		respondError(w, r, http.StatusForbidden, "Access denied. You do not own this deck.")
		return
	}

	var req updateDeckRequest
	if !h.decode(w, r, &req) {
		return
	}

	deck, err := h.decks.Update(r.Context(), deckID, repositories.DeckUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsLimited:   req.IsLimited,
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondOK(w, r, newDeckResponse(deck))
}

func (h *Handler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireWriter(w, r)
	if !ok {
		return
	}

	deckID := chi.URLParam(r, "deckID")
	if !h.decks.UserOwnsDeck(r.Context(), deckID, user.ID) {
		respondError(w, r, http.StatusForbidden, "Access denied. You do not own this deck.")
		return
	}

	if err := h.decks.Delete(r.Context(), deckID); err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondMessage(w, r, "Deck deleted successfully")
}

// SyncCards replaces the deck's whole card list with the submitted one.
func (h *Handler) SyncCards(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireWriter(w, r)
	if !ok {
		return
	}

	deckID := chi.URLParam(r, "deckID")
	if !h.decks.UserOwnsDeck(r.Context(), deckID, user.ID) {
		respondError(w, r, http.StatusForbidden, "Access denied. You do not own this deck.")
		return
	}

	var req syncCardsRequest
	if !h.decode(w, r, &req) {
		return
	}
	if len(req.Cards) > config.MaxSyncEntries {
		respondError(w, r, http.StatusBadRequest, "Too many card entries")
		return
	}

	entries := make([]cards.Entry, len(req.Cards))
	for i, c := range req.Cards {
		qty := c.Quantity
		if qty < 1 {
			qty = 1
		}
		entries[i] = cards.Entry{
			Type:            cards.Type(c.CardType),
			CardID:          c.CardID,
			Quantity:        qty,
			ExcludeFromDraw: c.ExcludeFromDraw,
		}
	}

	if err := h.decks.SyncCards(r.Context(), deckID, entries); err != nil {
		respondEngineError(w, r, err)
		return
	}

	deck, err := h.decks.GetByID(r.Context(), deckID)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondOK(w, r, newDeckResponse(deck))
}

func (h *Handler) AddCard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireWriter(w, r)
	if !ok {
		return
	}

	deckID := chi.URLParam(r, "deckID")
	if !h.decks.UserOwnsDeck(r.Context(), deckID, user.ID) {
		respondError(w, r, http.StatusForbidden, "Access denied. You do not own this deck.")
		return
	}

	var req cardEntryRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.decks.AddCard(r.Context(), deckID, cards.Type(req.CardType), req.CardID, req.Quantity, req.ExcludeFromDraw)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	deck, err := h.decks.GetByID(r.Context(), deckID)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondOK(w, r, newDeckResponse(deck))
}

func (h *Handler) RemoveCard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireWriter(w, r)
	if !ok {
		return
	}

	deckID := chi.URLParam(r, "deckID")
	if !h.decks.UserOwnsDeck(r.Context(), deckID, user.ID) {
		respondError(w, r, http.StatusForbidden, "Access denied. You do not own this deck.")
		return
	}

	var req cardEntryRequest
	if !h.decode(w, r, &req) {
		return
	}

	var err error
	if req.CardType == "all" && req.CardID == "all" {
		err = h.decks.RemoveAllCards(r.Context(), deckID)
	} else {
		err = h.decks.RemoveCard(r.Context(), deckID, cards.Type(req.CardType), req.CardID, req.Quantity)
	}
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	deck, err := h.decks.GetByID(r.Context(), deckID)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondOK(w, r, newDeckResponse(deck))
}

func (h *Handler) SetCardQuantity(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireWriter(w, r)
	if !ok {
		return
	}

	deckID := chi.URLParam(r, "deckID")
	if !h.decks.UserOwnsDeck(r.Context(), deckID, user.ID) {
		respondError(w, r, http.StatusForbidden, "Access denied. You do not own this deck.")
		return
	}

	var req cardEntryRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.decks.SetCardQuantity(r.Context(), deckID, cards.Type(req.CardType), req.CardID, req.Quantity)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	deck, err := h.decks.GetByID(r.Context(), deckID)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondOK(w, r, newDeckResponse(deck))
}

func (h *Handler) DeckStats(w http.ResponseWriter, r *http.Request) {
	count, err := h.decks.Stats(r.Context())
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondOK(w, r, map[string]int{"decks": count})
}

// requireWriter rejects unauthenticated and guest callers; guests may read
// but never modify decks.
func (h *Handler) requireWriter(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	if user.Role == models.RoleGuest {
		respondError(w, r, http.StatusForbidden, "Guests may not modify decks")
		return nil, false
	}
	return user, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}
