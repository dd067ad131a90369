package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/overpowerdb/deckvault/backend/middleware"
	"github.com/overpowerdb/deckvault/deckvault/database/repositories"
)

type Handler struct {
	decks    repositories.DeckRepository
	catalog  repositories.CatalogRepository
	users    repositories.UserRepository
	validate *validator.Validate
}

func New(decks repositories.DeckRepository, catalog repositories.CatalogRepository, users repositories.UserRepository) *Handler {
	return &Handler{
		decks:    decks,
		catalog:  catalog,
		users:    users,
		validate: validator.New(),
	}
}

// Router assembles the API surface. Everything under /api requires a valid
// token; ownership of the addressed deck is checked per route before any
// mutation reaches the engine.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)

	r.Get("/api/status", h.Status)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(h.users))

		r.Get("/api/decks", h.ListDecks)
		r.Post("/api/decks", h.CreateDeck)
		r.Get("/api/decks/{deckID}", h.GetDeck)
		r.Put("/api/decks/{deckID}", h.UpdateDeck)
		r.Delete("/api/decks/{deckID}", h.DeleteDeck)

		r.Put("/api/decks/{deckID}/cards", h.SyncCards)
		r.Post("/api/decks/{deckID}/cards", h.AddCard)
		r.Delete("/api/decks/{deckID}/cards", h.RemoveCard)
		r.Patch("/api/decks/{deckID}/cards", h.SetCardQuantity)

		r.Get("/api/deck-stats", h.DeckStats)
		r.Get("/api/catalog/{cardType}", h.ListCatalog)

		r.Post("/api/admin/users", h.CreateUser)
		r.Post("/api/admin/cache/clear", h.ClearCache)
	})

	return r
}
