package stream

import "github.com/osse101/WellnessQuest_Go/internal/domain"

// Message is one frame sent to stream clients
type Message struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	Timestamp int64            `json:"timestamp"`
	Cause     string           `json:"cause,omitempty"`
	Snapshot  *domain.Snapshot `json:"snapshot"`
}

// delivery is an encoded message addressed to every client of one profile
type delivery struct {
	profileID string
	data      []byte
}
