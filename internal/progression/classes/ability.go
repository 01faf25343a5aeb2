// Package classes implements the six character classes and their
// passive skills. Pure per-workout abilities and cooldown-gated
// abilities are kept as two distinct shapes so the computation path
// stays side-effect free.
package classes

import (
	"time"

	"github.com/ironquest/backend/internal/progression/xp"
)

// BonusContext is everything a passive ability may inspect when
// deciding whether and how much to award.
type BonusContext struct {
	Facts      xp.WorkoutFacts
	Components xp.Components
	Streak     int
}

// BonusLine is one itemized class bonus in the XP breakdown.
type BonusLine struct {
	Skill       string `json:"skill"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

// PassiveAbility is a pure per-workout rule. Implementations must be
// deterministic and free of side effects.
type PassiveAbility interface {
	Name() string
	IsApplicable(ctx BonusContext) bool
	Calculate(ctx BonusContext) BonusLine
}

// TriggeredAbility requires persisted state: it may fire at most once
// per cooldown window per user.
type TriggeredAbility interface {
	Name() string
	Cooldown() time.Duration
}

// XPTrigger is a triggered ability that pays out XP when it fires.
type XPTrigger interface {
	TriggeredAbility
	IsApplicable(ctx BonusContext) bool
	Bonus(ctx BonusContext) BonusLine
}

// StreakPreserver is a triggered ability that saves part of a streak
// which would otherwise reset after a missed day.
type StreakPreserver interface {
	TriggeredAbility
	Preserve(streak int) int
}
