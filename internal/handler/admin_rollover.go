package handler

import (
	"context"
	"net/http"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/logger"
)

// RolloverSweeper runs and reports the scheduled day rollover
type RolloverSweeper interface {
	Trigger(ctx context.Context) (domain.SweepResult, error)
	Status() domain.RolloverStatus
}

// AdminRolloverHandler handles admin endpoints for the daily rollover sweep
type AdminRolloverHandler struct {
	sweeper RolloverSweeper
}

// NewAdminRolloverHandler creates a new AdminRolloverHandler
func NewAdminRolloverHandler(sweeper RolloverSweeper) *AdminRolloverHandler {
	return &AdminRolloverHandler{sweeper: sweeper}
}

// HandleManualRollover runs the rollover sweep over every known profile now
// @Summary Trigger daily rollover
// @Description Rolls every known profile over to the current day immediately
// @Tags admin
// @Produce json
// @Success 200 {object} domain.SweepResult
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/rollover [post]
func (h *AdminRolloverHandler) HandleManualRollover(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	result, err := h.sweeper.Trigger(r.Context())
	if err != nil {
		log.Error(LogMsgManualRolloverFailed, "error", err)
		respondError(w, http.StatusServiceUnavailable, ErrMsgRolloverFailed)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleGetRolloverStatus returns the last and the next rollover sweep
// @Summary Daily rollover status
// @Description Returns the last sweep result and when the next sweep is scheduled
// @Tags admin
// @Produce json
// @Success 200 {object} domain.RolloverStatus
// @Router /api/v1/admin/rollover [get]
func (h *AdminRolloverHandler) HandleGetRolloverStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.sweeper.Status())
}
