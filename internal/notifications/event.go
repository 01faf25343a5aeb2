// Package notifications carries the structured events the progression
// engine emits. Presentation is entirely the caller's concern; this
// package only persists and serves the feed.
package notifications

import (
	"context"
	"time"
)

type EventType string

const (
	EventXPAwarded           EventType = "xp-awarded"
	EventLevelUp             EventType = "level-up"
	EventAchievementUnlocked EventType = "achievement-unlocked"
)

func (et EventType) IsValid() bool {
	switch et {
	case EventXPAwarded, EventLevelUp, EventAchievementUnlocked:
		return true
	default:
		return false
	}
}

// Event is one progression event for a user's feed.
type Event struct {
	ID        int               `json:"id"`
	UserID    string            `json:"userId"`
	Type      EventType         `json:"type"`
	Payload   map[string]string `json:"payload"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Notifier receives engine events. The persisting repo is the default
// implementation; tests plug in their own.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}
