package repositories

import "errors"

//go:generate mockgen -destination=mock/repositories.go -package=mock . DeckRepository,CatalogRepository,UserRepository

// Every mutator signals failure through returned errors; no path reports a
// bare boolean. Callers match with errors.Is / errors.As.
var (
	ErrDeckNotFound  = errors.New("deck not found")
	ErrEntryNotFound = errors.New("deck card entry not found")
)
