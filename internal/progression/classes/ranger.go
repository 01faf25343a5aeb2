package classes

import (
	"math"

	"github.com/ironquest/backend/internal/progression/xp"
)

// Ranger favors cardio. Pathfinder pays a share of the XP earned on
// cardio work; Endurance rewards long sessions with extra time XP.
func Ranger() Class {
	return Class{
		ID:          ClassRanger,
		Name:        "Ranger",
		FavoredType: xp.ExerciseTypeCardio,
		Primary: typedPrimary{
			skill:       "Pathfinder",
			favored:     xp.ExerciseTypeCardio,
			description: "bonus XP for cardio training",
		},
		Secondary: endurance{},
	}
}

const (
	enduranceRate       = 0.15
	enduranceMinSeconds = 60 * 60
)

type endurance struct{}

func (endurance) Name() string { return "Endurance" }

func (endurance) IsApplicable(ctx BonusContext) bool {
	return ctx.Facts.DurationSeconds >= enduranceMinSeconds
}

func (endurance) Calculate(ctx BonusContext) BonusLine {
	return BonusLine{
		Skill:       "Endurance",
		Amount:      int(math.Round(float64(ctx.Components.TimeXP) * enduranceRate)),
		Description: "extra time XP for training an hour or longer",
	}
}
