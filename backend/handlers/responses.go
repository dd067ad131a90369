package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/overpowerdb/deckvault/deckvault/cards"
	"github.com/overpowerdb/deckvault/deckvault/database/models"
	"github.com/overpowerdb/deckvault/deckvault/database/repositories"
	"github.com/overpowerdb/deckvault/deckvault/logger"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(w http.ResponseWriter, r *http.Request, data any) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, apiResponse{Success: true, Data: data})
}

func respondCreated(w http.ResponseWriter, r *http.Request, data any) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, apiResponse{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, apiResponse{Success: true, Message: msg})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, apiResponse{Success: false, Error: msg})
}

// respondEngineError maps engine error kinds onto HTTP statuses. Anything the
// caller cannot fix reads as a 500 and keeps its detail in the log, not the
// response.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *cards.ValidationError
	var cardinalityErr *cards.CardinalityError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, r, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &cardinalityErr):
		respondError(w, r, http.StatusConflict, cardinalityErr.Error())
	case errors.Is(err, repositories.ErrDeckNotFound):
		respondError(w, r, http.StatusNotFound, "Deck not found")
	case errors.Is(err, repositories.ErrEntryNotFound):
		respondError(w, r, http.StatusNotFound, "Card not found in deck")
	default:
		logger.LogError("Request failed", err)
		respondError(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

type deckCardResponse struct {
	CardType        string `json:"cardType"`
	CardID          string `json:"cardId"`
	Quantity        int    `json:"quantity"`
	ExcludeFromDraw bool   `json:"excludeFromDraw,omitempty"`
}

type deckResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	IsLimited   bool               `json:"isLimited"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Cards       []deckCardResponse `json:"cards,omitempty"`
	CardCount   int                `json:"cardCount"`
}

func newDeckResponse(deck *models.Deck) deckResponse {
	resp := deckResponse{
		ID:          deck.ID,
		UserID:      deck.UserID,
		Name:        deck.Name,
		Description: deck.Description,
		IsLimited:   deck.IsLimited,
		CreatedAt:   deck.CreatedAt,
		UpdatedAt:   deck.UpdatedAt,
	}
	if deck.Cards != nil {
		entries := models.Entries(deck.Cards)
		resp.CardCount = cards.DrawableCount(entries)
		resp.Cards = make([]deckCardResponse, len(deck.Cards))
		for i, c := range deck.Cards {
			resp.Cards[i] = deckCardResponse{
				CardType:        c.CardType,
				CardID:          c.CardID,
				Quantity:        c.Quantity,
				ExcludeFromDraw: c.ExcludeFromDraw,
			}
		}
	}
	return resp
}

func newDeckListResponse(decks []*models.Deck) []deckResponse {
	out := make([]deckResponse, len(decks))
	for i, d := range decks {
		out[i] = newDeckResponse(d)
	}
	return out
}
