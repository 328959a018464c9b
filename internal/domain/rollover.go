package domain

import "time"

// SweepResult summarises one rollover pass over the known profiles
type SweepResult struct {
	Date            string `json:"date"`
	ProfilesScanned int    `json:"profiles_scanned"`
	ProfilesRolled  int    `json:"profiles_rolled"`
	ProfilesFailed  int    `json:"profiles_failed"`
}

// RolloverStatus reports the scheduled rollover sweep
type RolloverStatus struct {
	LastSweepAt *time.Time   `json:"last_sweep_at,omitempty"`
	LastResult  *SweepResult `json:"last_result,omitempty"`
	NextSweepAt time.Time    `json:"next_sweep_at"`
}
