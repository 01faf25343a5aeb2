// Package achievements evaluates threshold achievements against user
// statistics, tracks per-achievement progress and unlocks. Evaluation
// is idempotent: re-running it with unchanged stats changes nothing.
package achievements

import "time"

type Category string

const (
	CategoryWorkout Category = "workout"
	CategoryStreak  Category = "streak"
	CategoryRecord  Category = "record"
	CategoryXP      Category = "xp"
	CategoryLevel   Category = "level"
	CategoryVariety Category = "variety"
)

// Categories lists all evaluation groups. Grouping is organizational
// only; groups can run in any order with the same outcome.
func Categories() []Category {
	return []Category{
		CategoryWorkout, CategoryStreak, CategoryRecord,
		CategoryXP, CategoryLevel, CategoryVariety,
	}
}

type RequirementType string

const (
	RequirementWorkoutCount  RequirementType = "workout_count"
	RequirementStreakDays    RequirementType = "streak_days"
	RequirementRecordCount   RequirementType = "record_count"
	RequirementTotalXP       RequirementType = "total_xp"
	RequirementLevel         RequirementType = "level"
	RequirementExerciseTypes RequirementType = "exercise_types"
)

// Definition is one row of the static achievement catalog, read-only
// at runtime.
type Definition struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         Category        `json:"category"`
	Rank             string          `json:"rank"`
	RequirementType  RequirementType `json:"requirementType"`
	RequirementValue int             `json:"requirementValue"`
	Points           int             `json:"points"`
	XPReward         int             `json:"xpReward"`
}

// Progress tracks how close a user is to one achievement. CurrentValue
// never decreases for count metrics and IsComplete is a one-way latch.
type Progress struct {
	UserID        string `json:"userId"`
	AchievementID string `json:"achievementId"`
	CurrentValue  int    `json:"currentValue"`
	TargetValue   int    `json:"targetValue"`
	IsComplete    bool   `json:"isComplete"`
}

// Unlocked records a completed achievement, at most once per user.
type Unlocked struct {
	UserID        string    `json:"userId"`
	AchievementID string    `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}

// UserStats is the snapshot of metrics one evaluation runs against.
// The caller assembles it from the authoritative store.
type UserStats struct {
	WorkoutsCount         int `json:"workoutsCount"`
	RecordsCount          int `json:"recordsCount"`
	TotalXP               int `json:"totalXp"`
	Level                 int `json:"level"`
	Streak                int `json:"streak"`
	DistinctExerciseTypes int `json:"distinctExerciseTypes"`
}

// MetricFor picks the stat a requirement type is measured against.
func (s UserStats) MetricFor(reqType RequirementType) int {
	switch reqType {
	case RequirementWorkoutCount:
		return s.WorkoutsCount
	case RequirementStreakDays:
		return s.Streak
	case RequirementRecordCount:
		return s.RecordsCount
	case RequirementTotalXP:
		return s.TotalXP
	case RequirementLevel:
		return s.Level
	case RequirementExerciseTypes:
		return s.DistinctExerciseTypes
	default:
		return 0
	}
}
