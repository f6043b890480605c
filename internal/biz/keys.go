package biz

import "strings"

// KeyMatch reports whether two natural keys name the same entity.
type KeyMatch func(a, b string) bool

var (
	foldCase  KeyMatch = strings.EqualFold
	exactCase KeyMatch = func(a, b string) bool { return a == b }
)

// KeyPolicy is the comparison used for one natural key: Unique guards
// inserts, Lookup resolves the key on delete, update and query paths.
type KeyPolicy struct {
	Unique KeyMatch
	Lookup KeyMatch
}

// Natural key policies. Genre names are unique case-sensitively but looked
// up case-insensitively, so "Drama" and "drama" may coexist and a delete of
// "DRAMA" removes the first of them.
var (
	MovieTitleKey    = KeyPolicy{Unique: foldCase, Lookup: foldCase}
	ActorNameKey     = KeyPolicy{Unique: foldCase, Lookup: foldCase}
	GenreNameKey     = KeyPolicy{Unique: exactCase, Lookup: foldCase}
	CharacterNameKey = KeyPolicy{Unique: foldCase, Lookup: foldCase}
)

func findFirst[T any](items []*T, match func(*T) bool) *T {
	for _, item := range items {
		if match(item) {
			return item
		}
	}
	return nil
}

func filter[T any](items []*T, keep func(*T) bool) []*T {
	out := make([]*T, 0)
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// idSet collects distinct ids.
type idSet map[int64]struct{}

func (s idSet) add(id int64) { s[id] = struct{}{} }

func (s idSet) has(id int64) bool {
	_, ok := s[id]
	return ok
}
