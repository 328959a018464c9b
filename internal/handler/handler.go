package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/logger"
	"github.com/osse101/WellnessQuest_Go/internal/session"
)

// OnboardingRequest carries the four onboarding answers
type OnboardingRequest struct {
	Objective    string `json:"objective" validate:"required,oneof=energy stress movement"`
	Availability string `json:"availability" validate:"required,oneof=low medium high"`
	Intensity    string `json:"intensity" validate:"required,oneof=gentle normal active"`
	Style        string `json:"style" validate:"required,oneof=mindful creative social"`
}

// Preferences converts the request to the domain type
func (r OnboardingRequest) Preferences() domain.Preferences {
	return domain.Preferences{
		Objective:    domain.Objective(r.Objective),
		Availability: domain.Availability(r.Availability),
		Intensity:    domain.Intensity(r.Intensity),
		Style:        domain.Style(r.Style),
	}
}

// ProfileHandler serves the per-profile game endpoints
type ProfileHandler struct {
	sessions session.Service
}

// NewProfileHandler creates a profile handler
func NewProfileHandler(sessions session.Service) *ProfileHandler {
	return &ProfileHandler{sessions: sessions}
}

// Routes mounts the profile endpoints on a router scoped to /profiles/{profileID}
func (h *ProfileHandler) Routes(r chi.Router) {
	r.Get("/", h.HandleGetProfile)
	r.Delete("/", h.HandleResetProfile)
	r.Post("/onboarding", h.HandleCompleteOnboarding)
	r.Post("/missions/{missionID}/complete", h.HandleCompleteMission)
	r.Post("/pet/feed", h.HandleFeedPet)
	r.Post("/rollover", h.HandleRollover)
	r.Post("/demo", h.HandleApplyDemo)
}

// HandleGetProfile returns the profile snapshot, starting a new day if needed
// @Summary Get profile
// @Description Loads the profile (creating it on first use), applies the day rollover and returns a snapshot
// @Tags profile
// @Produce json
// @Param profileID path string true "Profile id"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID} [get]
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	snap, err := h.sessions.Open(r.Context(), profileID)
	if err != nil {
		respondServiceError(w, r, "Open profile", err)
		return
	}

	respondJSON(w, http.StatusOK, snap)
}

// HandleCompleteOnboarding stores the onboarding answers
// @Summary Complete onboarding
// @Description Stores the preferences once and selects today's missions for them
// @Tags profile
// @Accept json
// @Produce json
// @Param profileID path string true "Profile id"
// @Param request body OnboardingRequest true "Onboarding answers"
// @Success 201 {object} domain.GameState
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/onboarding [post]
func (h *ProfileHandler) HandleCompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	var req OnboardingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Onboarding"); err != nil {
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgOnboardingRequested,
		"profile_id", profileID,
		"objective", req.Objective,
		"availability", req.Availability,
		"intensity", req.Intensity)

	state, err := h.sessions.CompleteOnboarding(r.Context(), profileID, req.Preferences())
	if err != nil {
		respondServiceError(w, r, "Onboarding", err)
		return
	}

	respondJSON(w, http.StatusCreated, state)
}

// HandleCompleteMission completes one of today's missions
// @Summary Complete mission
// @Description Marks a mission completed and pays out its hearts. Unknown or already completed missions return completed=false.
// @Tags missions
// @Produce json
// @Param profileID path string true "Profile id"
// @Param missionID path string true "Mission id"
// @Success 200 {object} domain.CompletionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/missions/{missionID}/complete [post]
func (h *ProfileHandler) HandleCompleteMission(w http.ResponseWriter, r *http.Request) {
	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}
	missionID, ok := missionIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.sessions.CompleteMission(r.Context(), profileID, missionID)
	if err != nil {
		respondServiceError(w, r, "Complete mission", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleFeedPet spends a heart on the pet
// @Summary Feed pet
// @Description Spends one heart to feed the pet. With no hearts the response has fed=false.
// @Tags pet
// @Produce json
// @Param profileID path string true "Profile id"
// @Success 200 {object} domain.FeedResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/pet/feed [post]
func (h *ProfileHandler) HandleFeedPet(w http.ResponseWriter, r *http.Request) {
	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.sessions.FeedPet(r.Context(), profileID)
	if err != nil {
		respondServiceError(w, r, "Feed pet", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleRollover runs the day-rollover check
// @Summary Day rollover
// @Description Starts a new day if the stored play date is not today
// @Tags profile
// @Produce json
// @Param profileID path string true "Profile id"
// @Success 200 {object} domain.RolloverResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/rollover [post]
func (h *ProfileHandler) HandleRollover(w http.ResponseWriter, r *http.Request) {
	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.sessions.Rollover(r.Context(), profileID)
	if err != nil {
		respondServiceError(w, r, "Rollover", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleApplyDemo replaces the profile with demo data
// @Summary Apply demo data
// @Description Overwrites the profile with a populated showcase profile
// @Tags profile
// @Produce json
// @Param profileID path string true "Profile id"
// @Success 200 {object} domain.GameState
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID}/demo [post]
func (h *ProfileHandler) HandleApplyDemo(w http.ResponseWriter, r *http.Request) {
	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	state, err := h.sessions.ApplyDemoData(r.Context(), profileID)
	if err != nil {
		respondServiceError(w, r, "Apply demo", err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// HandleResetProfile clears every stored key of the profile
// @Summary Reset profile
// @Description Removes all persisted data of the profile
// @Tags profile
// @Produce json
// @Param profileID path string true "Profile id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/profiles/{profileID} [delete]
func (h *ProfileHandler) HandleResetProfile(w http.ResponseWriter, r *http.Request) {
	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	if err := h.sessions.Reset(r.Context(), profileID); err != nil {
		respondServiceError(w, r, "Reset profile", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileReset})
}
