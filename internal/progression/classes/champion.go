package classes

import (
	"time"

	"github.com/ironquest/backend/internal/progression/xp"
)

// Champion favors sport sessions. Game Day pays a share of the XP
// earned on sport work; Clutch Performance pays a flat bonus on a
// personal record, at most once per week.
func Champion() Class {
	return Class{
		ID:          ClassChampion,
		Name:        "Champion",
		FavoredType: xp.ExerciseTypeSport,
		Primary: typedPrimary{
			skill:       "Game Day",
			favored:     xp.ExerciseTypeSport,
			description: "bonus XP for sport sessions",
		},
		Triggered: clutchPerformance{},
	}
}

const clutchPerformanceXP = 25

type clutchPerformance struct{}

func (clutchPerformance) Name() string { return "Clutch Performance" }

func (clutchPerformance) Cooldown() time.Duration { return 7 * 24 * time.Hour }

func (clutchPerformance) IsApplicable(ctx BonusContext) bool {
	return ctx.Facts.HasPersonalRecord
}

func (clutchPerformance) Bonus(ctx BonusContext) BonusLine {
	return BonusLine{
		Skill:       "Clutch Performance",
		Amount:      clutchPerformanceXP,
		Description: "weekly bonus for a personal record",
	}
}
