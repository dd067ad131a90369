package models

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/overpowerdb/deckvault/deckvault/cards"
)

type Deck struct {
	bun.BaseModel `bun:"table:decks,alias:d"`

	ID          string `bun:"id,pk"`
	UserID      string `bun:"user_id,notnull"`
	Name        string `bun:"name,notnull"`
	Description string `bun:"description,type:text,default:''"`
	IsLimited   bool   `bun:"is_limited,notnull,default:false"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`

	Cards []*DeckCard `bun:"rel:has-many,join:id=deck_id"`
}

type DeckCard struct {
	bun.BaseModel `bun:"table:deck_cards,alias:dc"`

	ID              int64  `bun:"id,pk,autoincrement"`
	DeckID          string `bun:"deck_id,notnull"`
	CardType        string `bun:"card_type,notnull"`
	CardID          string `bun:"card_id,notnull"`
	Quantity        int    `bun:"quantity,notnull,default:1"`
	ExcludeFromDraw bool   `bun:"exclude_from_draw,notnull,default:false"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// Entry converts a stored row to its domain shape.
func (dc *DeckCard) Entry() cards.Entry {
	return cards.Entry{
		Type:            cards.Type(dc.CardType),
		CardID:          dc.CardID,
		Quantity:        dc.Quantity,
		ExcludeFromDraw: dc.ExcludeFromDraw,
	}
}

// Entries converts stored rows to their domain shape, preserving order.
func Entries(rows []*DeckCard) []cards.Entry {
	out := make([]cards.Entry, len(rows))
	for i, r := range rows {
		out[i] = r.Entry()
	}
	return out
}
