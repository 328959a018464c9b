package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/WellnessQuest_Go/internal/logger"
)

// URL parameter names
const (
	ParamProfileID = "profileID"
	ParamMissionID = "missionID"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the response has already been written and the handler should return.
//
// Example usage:
//
//	var req OnboardingRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Onboarding"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	return validateOrRespond(w, req)
}

// profileIDParam reads and validates the {profileID} URL parameter.
// If ok is false, the response has already been written.
func profileIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	params := struct {
		ProfileID string `json:"profile_id" validate:"required,profileid"`
	}{ProfileID: chi.URLParam(r, ParamProfileID)}

	if err := validateOrRespond(w, &params); err != nil {
		return "", false
	}
	return params.ProfileID, true
}

// missionIDParam reads and validates the {missionID} URL parameter
func missionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	params := struct {
		MissionID string `json:"mission_id" validate:"required,max=64,printascii,excludesall=/"`
	}{MissionID: chi.URLParam(r, ParamMissionID)}

	if err := validateOrRespond(w, &params); err != nil {
		return "", false
	}
	return params.MissionID, true
}

func validateOrRespond(w http.ResponseWriter, req interface{}) error {
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}
