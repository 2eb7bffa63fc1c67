package geocoding

import (
	"strings"

	"routeopt/config"
	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/service"
	"routeopt/internal/util"
)

// minTokenOverlap is the number of shared significant words a token match needs.
const minTokenOverlap = 2

// stopwords never count towards a token match.
var stopwords = map[string]struct{}{
	"de": {}, "du": {}, "des": {}, "la": {}, "le": {}, "les": {}, "et": {}, "d": {}, "l": {},
}

type gazetteerEntry struct {
	key    string
	tokens []string
	coord  entity.Coordinate
}

// gazetteer is an ordered, read-only lookup table. Insertion order breaks ties.
type gazetteer struct {
	entries []gazetteerEntry
	exact   map[string]int
}

// NewGazetteer builds a gazetteer from region data items, keeping their order.
// Duplicate names keep the first occurrence.
func NewGazetteer(items []config.GazetteerItem) service.Gazetteer {
	g := &gazetteer{
		entries: make([]gazetteerEntry, 0, len(items)),
		exact:   make(map[string]int, len(items)),
	}

	for _, item := range items {
		key := util.Normalize(item.Name)
		if key == "" {
			continue
		}
		if _, dup := g.exact[key]; dup {
			continue
		}

		g.exact[key] = len(g.entries)
		g.entries = append(g.entries, gazetteerEntry{
			key:    key,
			tokens: significantTokens(key),
			coord:  entity.Coordinate{Lat: item.Lat, Lng: item.Lng},
		})
	}

	return g
}

// NewGazetteerFromRegion is the Fx constructor using the loaded region data.
func NewGazetteerFromRegion(data *config.RegionData) service.Gazetteer {
	return NewGazetteer(data.Gazetteer)
}

// Lookup tries an exact match, then substring containment in either
// direction, then a token overlap of at least two significant words.
func (g *gazetteer) Lookup(normalized string) (entity.Coordinate, string, bool) {
	if normalized == "" {
		return entity.Coordinate{}, "", false
	}

	if idx, ok := g.exact[normalized]; ok {
		e := g.entries[idx]

		return e.coord, e.key, true
	}

	for _, e := range g.entries {
		if strings.Contains(normalized, e.key) || strings.Contains(e.key, normalized) {
			return e.coord, e.key, true
		}
	}

	words := significantTokens(normalized)
	if len(words) < minTokenOverlap {
		return entity.Coordinate{}, "", false
	}

	for _, e := range g.entries {
		if tokenOverlap(words, e.tokens) >= minTokenOverlap {
			return e.coord, e.key, true
		}
	}

	return entity.Coordinate{}, "", false
}

func significantTokens(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '-' || r == '.'
	})

	tokens := fields[:0]
	for _, f := range fields {
		if _, skip := stopwords[f]; skip {
			continue
		}
		tokens = append(tokens, f)
	}

	return tokens
}

// tokenOverlap counts input words that match some key word. Words of three
// or more characters also match by containment ("khzema" ~ "khzemaa").
func tokenOverlap(words, keyTokens []string) int {
	count := 0
	for _, w := range words {
		for _, k := range keyTokens {
			if w == k || (len(w) >= 3 && len(k) >= 3 && (strings.Contains(k, w) || strings.Contains(w, k))) {
				count++

				break
			}
		}
	}

	return count
}
