package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
)

func TestHandleManualRollover_Success(t *testing.T) {
	sweeper := &MockRolloverSweeper{}
	sweeper.On("Trigger", mock.Anything).Return(domain.SweepResult{Date: "2024-03-11", ProfilesScanned: 4, ProfilesRolled: 3}, nil)
	h := NewAdminRolloverHandler(sweeper)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/rollover", nil)
	w := httptest.NewRecorder()
	h.HandleManualRollover(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"profiles_rolled":3`)
	sweeper.AssertExpectations(t)
}

func TestHandleManualRollover_Failure(t *testing.T) {
	sweeper := &MockRolloverSweeper{}
	sweeper.On("Trigger", mock.Anything).Return(domain.SweepResult{}, assert.AnError)
	h := NewAdminRolloverHandler(sweeper)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/rollover", nil)
	w := httptest.NewRecorder()
	h.HandleManualRollover(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgRolloverFailed)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestHandleGetRolloverStatus(t *testing.T) {
	next := time.Date(2024, 3, 12, 0, 0, 1, 0, time.UTC)
	sweeper := &MockRolloverSweeper{}
	sweeper.On("Status").Return(domain.RolloverStatus{NextSweepAt: next})
	h := NewAdminRolloverHandler(sweeper)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/rollover", nil)
	w := httptest.NewRecorder()
	h.HandleGetRolloverStatus(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var status domain.RolloverStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, next.Equal(status.NextSweepAt))
	assert.Nil(t, status.LastResult)
	assert.NotContains(t, w.Body.String(), "last_sweep_at")
}
