package session

import "time"

// Active profile tracking
const (
	DefaultActiveProfiles   = 4096
	DefaultActiveProfileTTL = 48 * time.Hour
)

// Log messages
const (
	LogMsgPersistFailed       = "Failed to persist profile, mutation discarded"
	LogMsgProfileOpened       = "Profile opened"
	LogMsgProfileCreated      = "Created new profile state"
	LogMsgDayRolledOver       = "Day rolled over"
	LogMsgOnboardingCompleted = "Onboarding completed"
	LogMsgMissionCompleted    = "Mission completed"
	LogMsgMissionRejected     = "Mission completion rejected"
	LogMsgMissionUnknown      = "Mission id is not in the catalog"
	LogMsgPetFed              = "Pet fed"
	LogMsgPetNotFed           = "Pet not fed, no hearts left"
	LogMsgDemoApplied         = "Demo data applied to profile"
	LogMsgProfileReset        = "Profile data cleared"
	LogMsgPublishFailed       = "Failed to publish event"
	LogMsgListProfilesFailed  = "Could not list stored profiles, using active set"
)
