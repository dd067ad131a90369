package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/overpowerdb/deckvault/deckvault/cards"
	"github.com/overpowerdb/deckvault/deckvault/database/models"
	"github.com/overpowerdb/deckvault/deckvault/database/repositories"
	"github.com/overpowerdb/deckvault/deckvault/database/repositories/mock"
)

const testToken = "test-token"

type testEnv struct {
	decks   *mock.MockDeckRepository
	catalog *mock.MockCatalogRepository
	users   *mock.MockUserRepository
	router  http.Handler
}

func newTestEnv(t *testing.T, user *models.User) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		decks:   mock.NewMockDeckRepository(ctrl),
		catalog: mock.NewMockCatalogRepository(ctrl),
		users:   mock.NewMockUserRepository(ctrl),
	}
	if user != nil {
		env.users.EXPECT().
			GetByToken(gomock.Any(), testToken).
			Return(user, nil).
			AnyTimes()
	}
	env.router = New(env.decks, env.catalog, env.users).Router()
	return env
}

func (env *testEnv) request(method, path, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func owner() *models.User {
	return &models.User{ID: "u1", Username: "alice", Role: models.RoleUser}
}

func testDeck() *models.Deck {
	return &models.Deck{
		ID:     "d1",
		UserID: "u1",
		Name:   "Onslaught Rush",
		Cards: []*models.DeckCard{
			{DeckID: "d1", CardType: "power", CardID: "P1", Quantity: 2},
			{DeckID: "d1", CardType: "character", CardID: "C1", Quantity: 1},
		},
	}
}

func TestListDecksRequiresToken(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.request(http.MethodGet, "/api/decks", "", false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestGetDeckRejectsNonOwner(t *testing.T) {
	env := newTestEnv(t, owner())
	env.decks.EXPECT().
		UserOwnsDeck(gomock.Any(), "d9", "u1").
		Return(false)

	rec := env.request(http.MethodGet, "/api/decks/d9", "", true)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestSyncCardsReplacesWholeList(t *testing.T) {
	env := newTestEnv(t, owner())
	env.decks.EXPECT().
		UserOwnsDeck(gomock.Any(), "d1", "u1").
		Return(true)
	env.decks.EXPECT().
		SyncCards(gomock.Any(), "d1", []cards.Entry{
			{Type: cards.TypePower, CardID: "P1", Quantity: 1},
			{Type: cards.TypePower, CardID: "P1", Quantity: 1},
			{Type: cards.TypeCharacter, CardID: "C1", Quantity: 1},
		}).
		Return(nil)
	env.decks.EXPECT().
		GetByID(gomock.Any(), "d1").
		Return(testDeck(), nil)

	body := `{"cards":[
		{"cardType":"power","cardId":"P1","quantity":1},
		{"cardType":"power","cardId":"P1","quantity":1},
		{"cardType":"character","cardId":"C1","quantity":1}
	]}`
	rec := env.request(http.MethodPut, "/api/decks/d1/cards", body, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Cards []struct {
				CardType string `json:"cardType"`
				Quantity int    `json:"quantity"`
			} `json:"cards"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success {
		t.Error("expected success response")
	}
	if len(resp.Data.Cards) != 2 {
		t.Errorf("response cards = %d, want 2", len(resp.Data.Cards))
	}
}

func TestSyncCardsSurfacesValidationError(t *testing.T) {
	env := newTestEnv(t, owner())
	env.decks.EXPECT().
		UserOwnsDeck(gomock.Any(), "d1", "u1").
		Return(true)
	env.decks.EXPECT().
		SyncCards(gomock.Any(), "d1", gomock.Any()).
		Return(&cards.ValidationError{CardType: "power", CardID: "NOPE", Reason: "not in catalog"})

	body := `{"cards":[{"cardType":"power","cardId":"NOPE","quantity":1}]}`
	rec := env.request(http.MethodPut, "/api/decks/d1/cards", body, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAddCardCardinalityConflict(t *testing.T) {
	env := newTestEnv(t, owner())
	env.decks.EXPECT().
		UserOwnsDeck(gomock.Any(), "d1", "u1").
		Return(true)
	env.decks.EXPECT().
		AddCard(gomock.Any(), "d1", cards.TypeTraining, "T1", 1, false).
		Return(&cards.CardinalityError{CardType: "training", CardID: "T1"})

	body := `{"cardType":"training","cardId":"T1","quantity":1}`
	rec := env.request(http.MethodPost, "/api/decks/d1/cards", body, true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestRemoveCardNotFound(t *testing.T) {
	env := newTestEnv(t, owner())
	env.decks.EXPECT().
		UserOwnsDeck(gomock.Any(), "d1", "u1").
		Return(true)
	env.decks.EXPECT().
		RemoveCard(gomock.Any(), "d1", cards.TypeEvent, "E1", 1).
		Return(repositories.ErrEntryNotFound)

	body := `{"cardType":"event","cardId":"E1","quantity":1}`
	rec := env.request(http.MethodDelete, "/api/decks/d1/cards", body, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRemoveAllCards(t *testing.T) {
	env := newTestEnv(t, owner())
	env.decks.EXPECT().
		UserOwnsDeck(gomock.Any(), "d1", "u1").
		Return(true)
	env.decks.EXPECT().
		RemoveAllCards(gomock.Any(), "d1").
		Return(nil)
	env.decks.EXPECT().
		GetByID(gomock.Any(), "d1").
		Return(&models.Deck{ID: "d1", UserID: "u1", Name: "Onslaught Rush"}, nil)

	body := `{"cardType":"all","cardId":"all"}`
	rec := env.request(http.MethodDelete, "/api/decks/d1/cards", body, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestGuestCannotModifyDecks(t *testing.T) {
	guest := &models.User{ID: "g1", Username: "guest", Role: models.RoleGuest}
	env := newTestEnv(t, guest)

	body := `{"cards":[]}`
	rec := env.request(http.MethodPut, "/api/decks/d1/cards", body, true)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestListCatalogRejectsUnknownType(t *testing.T) {
	env := newTestEnv(t, owner())
	rec := env.request(http.MethodGet, "/api/catalog/vehicle", "", true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestListCatalogSearch(t *testing.T) {
	env := newTestEnv(t, owner())
	env.catalog.EXPECT().
		Search(gomock.Any(), cards.TypeCharacter, "magneto", 5).
		Return([]repositories.CatalogCard{{ID: "C2", Name: "Magneto"}}, nil)

	rec := env.request(http.MethodGet, "/api/catalog/character?q=magneto&limit=5", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	env := newTestEnv(t, owner())
	body := `{"username":"bob"}`
	rec := env.request(http.MethodPost, "/api/admin/users", body, true)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestCreateUserIssuesToken(t *testing.T) {
	admin := &models.User{ID: "a1", Username: "root", Role: models.RoleAdmin}
	env := newTestEnv(t, admin)
	env.users.EXPECT().
		Create(gomock.Any(), "bob", models.RoleUser).
		Return(&models.User{ID: "u2", Username: "bob", APIToken: "tok-2", Role: models.RoleUser}, nil)

	body := `{"username":"bob"}`
	rec := env.request(http.MethodPost, "/api/admin/users", body, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var resp struct {
		Data struct {
			APIToken string `json:"apiToken"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.APIToken == "" {
		t.Error("expected issued api token in response")
	}
}

func TestClearCacheRequiresAdmin(t *testing.T) {
	env := newTestEnv(t, owner())
	rec := env.request(http.MethodPost, "/api/admin/cache/clear", "", true)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestClearCacheAsAdmin(t *testing.T) {
	admin := &models.User{ID: "a1", Username: "root", Role: models.RoleAdmin}
	env := newTestEnv(t, admin)
	env.decks.EXPECT().ClearCache()

	rec := env.request(http.MethodPost, "/api/admin/cache/clear", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
