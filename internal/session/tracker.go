package session

import (
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/WellnessQuest_Go/internal/metrics"
)

// activeSet remembers which profiles were used recently
type activeSet struct {
	lru *expirable.LRU[string, time.Time]
}

func newActiveSet(size int, ttl time.Duration) *activeSet {
	return &activeSet{
		lru: expirable.NewLRU[string, time.Time](size, nil, ttl),
	}
}

func (a *activeSet) touch(profileID string, at time.Time) {
	a.lru.Add(profileID, at)
	metrics.ActiveProfiles.Set(float64(a.lru.Len()))
}

func (a *activeSet) forget(profileID string) {
	a.lru.Remove(profileID)
	metrics.ActiveProfiles.Set(float64(a.lru.Len()))
}

func (a *activeSet) ids() []string {
	keys := a.lru.Keys()
	sort.Strings(keys)
	return keys
}
