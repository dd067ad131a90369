package models

import "github.com/uptrace/bun"

// Catalog models. One reference table per card type; this service only ever
// reads them.

type Character struct {
	bun.BaseModel `bun:"table:characters,alias:ch"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name,notnull"`
}

type PowerCard struct {
	bun.BaseModel `bun:"table:power_cards,alias:pw"`

	ID         string `bun:"id,pk"`
	Name       string `bun:"name,notnull"`
	OnePerDeck bool   `bun:"one_per_deck,notnull,default:false"`
}

type SpecialCard struct {
	bun.BaseModel `bun:"table:special_cards,alias:sp"`

	ID         string `bun:"id,pk"`
	Name       string `bun:"name,notnull"`
	OnePerDeck bool   `bun:"one_per_deck,notnull,default:false"`
}

type Mission struct {
	bun.BaseModel `bun:"table:missions,alias:ms"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name,notnull"`
}

type Event struct {
	bun.BaseModel `bun:"table:events,alias:ev"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name,notnull"`
}

type Aspect struct {
	bun.BaseModel `bun:"table:aspects,alias:as"`

	ID         string `bun:"id,pk"`
	Name       string `bun:"name,notnull"`
	OnePerDeck bool   `bun:"one_per_deck,notnull,default:false"`
}

type Location struct {
	bun.BaseModel `bun:"table:locations,alias:lc"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name,notnull"`
}

type TeamworkCard struct {
	bun.BaseModel `bun:"table:teamwork_cards,alias:tw"`

	ID         string `bun:"id,pk"`
	Name       string `bun:"name,notnull"`
	OnePerDeck bool   `bun:"one_per_deck,notnull,default:false"`
}

type AllyUniverseCard struct {
	bun.BaseModel `bun:"table:ally_universe_cards,alias:al"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name,notnull"`
}

type TrainingCard struct {
	bun.BaseModel `bun:"table:training_cards,alias:tr"`

	ID         string `bun:"id,pk"`
	Name       string `bun:"name,notnull"`
	OnePerDeck bool   `bun:"one_per_deck,notnull,default:false"`
}

type BasicUniverseCard struct {
	bun.BaseModel `bun:"table:basic_universe_cards,alias:bu"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name,notnull"`
}

type AdvancedUniverseCard struct {
	bun.BaseModel `bun:"table:advanced_universe_cards,alias:au"`

	ID         string `bun:"id,pk"`
	Name       string `bun:"name,notnull"`
	OnePerDeck bool   `bun:"one_per_deck,notnull,default:false"`
}
