// Package profiles owns the user progression state: XP, level, streak,
// class, achievement tallies and rank. All counter mutations happen
// server-side in SQL so concurrent awards cannot lose updates.
package profiles

import (
	"time"

	"github.com/ironquest/backend/internal/progression/classes"
	"github.com/ironquest/backend/internal/progression/rank"
)

// Profile is one user's progression state. Level is always derived
// from XP, never incremented on its own.
type Profile struct {
	ID                string     `json:"id"`
	Username          string     `json:"username"`
	XP                int        `json:"xp"`
	Level             int        `json:"level"`
	Streak            int        `json:"streak"`
	DailyXP           int        `json:"dailyXp"`
	WorkoutsCount     int        `json:"workoutsCount"`
	RecordsCount      int        `json:"recordsCount"`
	LastWorkoutAt     *time.Time `json:"lastWorkoutAt,omitempty"`
	Class             classes.ID `json:"class,omitempty"`
	AchievementsCount int        `json:"achievementsCount"`
	AchievementPoints int        `json:"achievementPoints"`
	Rank              rank.Tier  `json:"rank"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// HasClass reports whether the user picked a character class yet.
func (p Profile) HasClass() bool {
	return p.Class != ""
}
