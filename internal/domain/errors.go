package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Game state errors
	ErrMsgInvalidGameState = "invalid game state"
	ErrMsgPersistFailed    = "failed to persist game state"

	// Onboarding errors
	ErrMsgAlreadyOnboarded = "onboarding already completed"
	ErrMsgNotOnboarded     = "onboarding not completed"

	// Profile errors
	ErrMsgInvalidProfileID = "invalid profile id"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
// Invalid game operations (unknown mission, feeding with no hearts) are reported through
// result values, never through these errors.
var (
	ErrInvalidGameState = errors.New(ErrMsgInvalidGameState)
	ErrPersistFailed    = errors.New(ErrMsgPersistFailed)

	ErrAlreadyOnboarded = errors.New(ErrMsgAlreadyOnboarded)
	ErrNotOnboarded     = errors.New(ErrMsgNotOnboarded)

	ErrInvalidProfileID = errors.New(ErrMsgInvalidProfileID)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
