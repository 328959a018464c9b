package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
)

func newProfileRouter(svc *MockSessionService) http.Handler {
	r := chi.NewRouter()
	r.Route("/profiles/{profileID}", NewProfileHandler(svc).Routes)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func sampleState() *domain.GameState {
	return &domain.GameState{
		Version:      domain.GameStateVersion,
		Hearts:       3,
		PetMood:      domain.PetMoodNeutral,
		LastPlayDate: "2024-03-10",
	}
}

func TestHandleGetProfile(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockSessionService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			path: "/profiles/alice",
			setupMock: func(m *MockSessionService) {
				m.On("Open", mock.Anything, "alice").Return(&domain.Snapshot{
					ProfileID:            "alice",
					State:                sampleState(),
					CompletionPercentage: 33,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"completion_percentage":33`,
		},
		{
			name:           "Invalid profile id",
			path:           "/profiles/bad%20id",
			setupMock:      func(m *MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"profile_id"`,
		},
		{
			name: "Storage failure",
			path: "/profiles/alice",
			setupMock: func(m *MockSessionService) {
				m.On("Open", mock.Anything, "alice").Return(nil, fmt.Errorf("%w: profile alice", domain.ErrPersistFailed))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgPersistFailedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSessionService{}
			tt.setupMock(svc)

			w := doRequest(t, newProfileRouter(svc), http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleCompleteOnboarding(t *testing.T) {
	valid := OnboardingRequest{Objective: "stress", Availability: "low", Intensity: "gentle", Style: "creative"}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockSessionService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: valid,
			setupMock: func(m *MockSessionService) {
				m.On("CompleteOnboarding", mock.Anything, "alice", valid.Preferences()).Return(sampleState(), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"hearts":3`,
		},
		{
			name:           "Unknown objective",
			body:           OnboardingRequest{Objective: "sleep", Availability: "low", Intensity: "gentle", Style: "creative"},
			setupMock:      func(m *MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"objective":"Must be one of: energy, stress, movement"`,
		},
		{
			name:           "Missing field",
			body:           map[string]string{"objective": "energy"},
			setupMock:      func(m *MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"availability":"This field is required"`,
		},
		{
			name:           "Malformed JSON",
			body:           `{"objective":`,
			setupMock:      func(m *MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Unknown field",
			body:           `{"objective":"energy","availability":"low","intensity":"gentle","style":"social","hearts":99}`,
			setupMock:      func(m *MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Already onboarded",
			body: valid,
			setupMock: func(m *MockSessionService) {
				m.On("CompleteOnboarding", mock.Anything, "alice", valid.Preferences()).Return(nil, domain.ErrAlreadyOnboarded)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAlreadyOnboardedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSessionService{}
			tt.setupMock(svc)

			w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/alice/onboarding", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleCompleteMission(t *testing.T) {
	t.Run("Completed", func(t *testing.T) {
		svc := &MockSessionService{}
		svc.On("CompleteMission", mock.Anything, "alice", "energy_1").
			Return(domain.CompletionResult{Completed: true, HeartsEarned: 1, State: sampleState()}, nil)

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/alice/missions/energy_1/complete", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.CompletionResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.Completed)
		assert.Equal(t, 1, got.HeartsEarned)
		svc.AssertExpectations(t)
	})

	t.Run("Already completed is not an error", func(t *testing.T) {
		svc := &MockSessionService{}
		svc.On("CompleteMission", mock.Anything, "alice", "energy_1").
			Return(domain.CompletionResult{State: sampleState()}, nil)

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/alice/missions/energy_1/complete", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"completed":false`)
	})

	t.Run("Not onboarded", func(t *testing.T) {
		svc := &MockSessionService{}
		svc.On("CompleteMission", mock.Anything, "alice", "energy_1").
			Return(domain.CompletionResult{}, domain.ErrNotOnboarded)

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/alice/missions/energy_1/complete", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotOnboardedError)
	})
}

func TestHandleFeedPet(t *testing.T) {
	svc := &MockSessionService{}
	svc.On("FeedPet", mock.Anything, "alice").
		Return(domain.FeedResult{State: sampleState(), Pet: domain.DefaultPetState()}, nil)

	w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/alice/pet/feed", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fed":false`)
	assert.Contains(t, w.Body.String(), domain.DefaultPetName)
	svc.AssertExpectations(t)
}

func TestHandleRolloverDemoAndReset(t *testing.T) {
	svc := &MockSessionService{}
	svc.On("Rollover", mock.Anything, "alice").Return(domain.RolloverResult{RolledOver: true, State: sampleState()}, nil)
	svc.On("ApplyDemoData", mock.Anything, "alice").Return(sampleState(), nil)
	svc.On("Reset", mock.Anything, "alice").Return(nil)
	router := newProfileRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/profiles/alice/rollover", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rolled_over":true`)

	w = doRequest(t, router, http.MethodPost, "/profiles/alice/demo", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/profiles/alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgProfileReset)

	svc.AssertExpectations(t)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"invalid profile", domain.ErrInvalidProfileID, http.StatusBadRequest, ErrMsgInvalidProfileError},
		{"invalid input", fmt.Errorf("%w: x", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"already onboarded", domain.ErrAlreadyOnboarded, http.StatusConflict, ErrMsgAlreadyOnboardedError},
		{"persist failed", fmt.Errorf("%w: profile a", domain.ErrPersistFailed), http.StatusServiceUnavailable, ErrMsgPersistFailedError},
		{"internal details are hidden", fmt.Errorf("pq: relation kv_store does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
