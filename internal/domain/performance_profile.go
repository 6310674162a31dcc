package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type contextKey string

const ContextProfileKey contextKey = "performanceProfile"

// PerformanceProfile records how long each stage of a request took,
// e.g. fetching simulations vs deriving metrics
type PerformanceProfile struct {
	StartTime time.Time                 `json:"-"`
	Events    []PerformanceProfileEvent `json:"events"`
	TotalMs   int64                     `json:"totalMs"`
}

type PerformanceProfileEvent struct {
	Name      string    `json:"name"`
	ElapsedMs int64     `json:"elapsedMs"`
	Time      time.Time `json:"time"`
}

func NewPerformanceProfile() *PerformanceProfile {
	return &PerformanceProfile{
		StartTime: time.Now(),
	}
}

func WithPerformanceProfile(ctx context.Context, p *PerformanceProfile) context.Context {
	return context.WithValue(ctx, ContextProfileKey, p)
}

// GetPerformanceProfile never returns nil. callers that didn't set
// up a profile get a throwaway one so they can record unconditionally
func GetPerformanceProfile(ctx context.Context) *PerformanceProfile {
	p, ok := ctx.Value(ContextProfileKey).(*PerformanceProfile)
	if !ok || p == nil {
		return NewPerformanceProfile()
	}
	return p
}

func (p *PerformanceProfile) End() {
	p.TotalMs = time.Since(p.StartTime).Milliseconds()
}

// Add records the time elapsed since the previous event (or since
// the profile started, for the first one)
func (p *PerformanceProfile) Add(name string) {
	last := p.StartTime
	if len(p.Events) > 0 {
		last = p.Events[len(p.Events)-1].Time
	}
	now := time.Now()
	p.Events = append(p.Events, PerformanceProfileEvent{
		Name:      name,
		ElapsedMs: now.Sub(last).Milliseconds(),
		Time:      now,
	})
}

func (p PerformanceProfile) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal performance profile: %w", err)
	}
	return bytes, nil
}
