package handler

import (
	"net/http"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/mission"
)

// CatalogPool is one objective's templates
type CatalogPool struct {
	Objective domain.Objective       `json:"objective"`
	Missions  []mission.CatalogEntry `json:"missions"`
}

// CatalogResponse lists every mission the game can offer
type CatalogResponse struct {
	Pools []CatalogPool `json:"pools"`
}

// HandleGetCatalog returns the mission catalog
// @Summary Mission catalog
// @Description Lists every mission template grouped by objective
// @Tags missions
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func HandleGetCatalog(catalog *mission.Catalog) http.HandlerFunc {
	entries := catalog.Entries()
	resp := CatalogResponse{Pools: make([]CatalogPool, 0, len(entries))}
	for _, objective := range catalog.Objectives() {
		resp.Pools = append(resp.Pools, CatalogPool{
			Objective: objective,
			Missions:  entries[objective],
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, resp)
	}
}
