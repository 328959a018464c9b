package mission

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
)

// DisplayCategory returns the human-readable label of a category ("breathing" -> "Breathing").
// A Caser holds state, so one is created per call.
func DisplayCategory(c domain.MissionCategory) string {
	return cases.Title(language.English).String(string(c))
}

// CatalogEntry is a template as presented by the catalog API
type CatalogEntry struct {
	domain.MissionTemplate
	CategoryLabel string `json:"category_label"`
}

// Entries returns every template of the catalog grouped by objective, with display labels
func (c *Catalog) Entries() map[domain.Objective][]CatalogEntry {
	out := make(map[domain.Objective][]CatalogEntry, len(c.pools))
	for objective, pool := range c.pools {
		entries := make([]CatalogEntry, len(pool))
		for i, t := range pool {
			entries[i] = CatalogEntry{MissionTemplate: t, CategoryLabel: DisplayCategory(t.Category)}
		}
		out[objective] = entries
	}
	return out
}
