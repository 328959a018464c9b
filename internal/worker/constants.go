package worker

import (
	"errors"
	"time"
)

// ErrPoolStopped is returned when a job is enqueued after Stop
var ErrPoolStopped = errors.New("worker pool stopped")

// Pool defaults
const (
	// DefaultQueueSize is the job queue length used by cmd/app
	DefaultQueueSize = 256

	// DefaultJobTimeout bounds a single job
	DefaultJobTimeout = 30 * time.Second
)

// Rollover scheduling
const (
	// RolloverGrace runs the sweep slightly after midnight so the new date is already current
	RolloverGrace = time.Second

	// StandbyThreshold switches scheduling from standby to final approach
	StandbyThreshold = time.Hour

	// StandbyLead is how long before midnight the standby timer wakes up
	StandbyLead = 45 * time.Minute

	// EarlyFireTolerance is how early a timer may fire before it is rescheduled
	EarlyFireTolerance = 10 * time.Second

	// LateFireWindow distinguishes a timer that fired just after midnight from an early one
	LateFireWindow = 23 * time.Hour
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Daily Rollover Worker
// ============================================================================

// Log messages for daily rollover worker operations
const (
	LogMsgRolloverStarting      = "Daily rollover sweep starting"
	LogMsgRolloverCompleted     = "Daily rollover sweep completed"
	LogMsgRolloverProfileFailed = "Rollover failed for profile"
	LogMsgRolloverEnqueueFailed = "Failed to enqueue rollover job"
	LogMsgRolloverStandby       = "Daily rollover standby"
	LogMsgRolloverApproach      = "Daily rollover scheduled"
	LogMsgRolloverManualTrigger = "Daily rollover manually triggered"
	LogMsgRolloverShuttingDown  = "Shutting down daily rollover worker"
	LogMsgRolloverShutdownDone  = "Daily rollover worker shutdown complete"
	LogMsgRolloverShutdownSlow  = "Daily rollover worker shutdown timeout, a sweep may still be running"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
