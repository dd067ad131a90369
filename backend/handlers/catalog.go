package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/overpowerdb/deckvault/backend/middleware"
	"github.com/overpowerdb/deckvault/deckvault/cards"
	"github.com/overpowerdb/deckvault/deckvault/database/models"
)

// ListCatalog serves one catalog table, optionally fuzzy-filtered by ?q=.
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	t, err := cards.ParseType(chi.URLParam(r, "cardType"))
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	query := r.URL.Query().Get("q")
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}

	rows, err := h.catalog.Search(r.Context(), t, query, limit)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondOK(w, r, rows)
}

// ClearCache drops every cached snapshot. Diagnostics only.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	if user.Role != models.RoleAdmin {
		respondError(w, r, http.StatusForbidden, "Admin access required")
		return
	}

	h.decks.ClearCache()
	respondMessage(w, r, "Cache cleared")
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	respondOK(w, r, map[string]string{"status": "ok"})
}
