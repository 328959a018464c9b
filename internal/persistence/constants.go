package persistence

// Storage keys, relative to the profile scope
const (
	KeyOnboardingCompleted = "onboarding-completed"
	KeyUserPreferences     = "user-preferences"
	KeyGameState           = "game-state"
	KeyDailyMissions       = "daily-missions"
	KeyPetState            = "pet-state"
)

// AllKeys lists every key owned by a profile
var AllKeys = []string{
	KeyOnboardingCompleted,
	KeyUserPreferences,
	KeyGameState,
	KeyDailyMissions,
	KeyPetState,
}

// Storage operations, used as metric labels
const (
	opLoad   = "load"
	opSave   = "save"
	opDecode = "decode"
	opEncode = "encode"
	opClear  = "clear"
)

// Demo data
const (
	DemoHearts                 = 5
	DemoDaysCompleted          = 7
	DemoTotalMissionsCompleted = 18
	DemoCompletedToday         = 2
	DemoPetHunger              = 80
	DemoPetEnergy              = 90
	DemoPetLevel               = 2
	DemoPetExperience          = 6
)

// Log messages
const (
	LogMsgStorageReadFailed  = "Storage read failed, using default"
	LogMsgStorageWriteFailed = "Storage write failed"
	LogMsgDecodeFailed       = "Stored value could not be decoded, using default"
	LogMsgEncodeFailed       = "Value could not be encoded"
	LogMsgInvalidGameState   = "Stored game state violates invariants, using default"
	LogMsgGameStateCreated   = "No stored game state, created default"
	LogMsgDailyMissionsStale = "Stored daily missions are from another day, discarded"
	LogMsgMirrorWriteFailed  = "Game state saved but the daily missions mirror was not"
	LogMsgClearFailed        = "Failed to clear persisted data"
	LogMsgDemoApplied        = "Demo data applied"
	LogMsgDemoFailed         = "Failed to apply demo data"
)
