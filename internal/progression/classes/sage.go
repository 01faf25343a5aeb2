package classes

import (
	"github.com/ironquest/backend/internal/progression/xp"
)

// Sage favors mobility work. Limber Mind pays a share of the XP earned
// on mobility exercises; Harmony rewards varied sessions.
func Sage() Class {
	return Class{
		ID:          ClassSage,
		Name:        "Sage",
		FavoredType: xp.ExerciseTypeMobility,
		Primary: typedPrimary{
			skill:       "Limber Mind",
			favored:     xp.ExerciseTypeMobility,
			description: "bonus XP for mobility training",
		},
		Secondary: harmony{},
	}
}

const (
	harmonyBonusXP  = 15
	harmonyMinTypes = 3
)

type harmony struct{}

func (harmony) Name() string { return "Harmony" }

func (harmony) IsApplicable(ctx BonusContext) bool {
	return ctx.Facts.DistinctExerciseTypes() >= harmonyMinTypes
}

func (harmony) Calculate(ctx BonusContext) BonusLine {
	return BonusLine{
		Skill:       "Harmony",
		Amount:      harmonyBonusXP,
		Description: "extra XP for mixing three or more exercise types",
	}
}
