package classes

import (
	"math"

	"github.com/ironquest/backend/internal/progression/xp"
)

// Warrior favors strength training. Iron Grip pays a share of the XP
// earned on strength exercises; Battle Fury rewards workouts that set
// a personal record.
func Warrior() Class {
	return Class{
		ID:          ClassWarrior,
		Name:        "Warrior",
		FavoredType: xp.ExerciseTypeStrength,
		Primary: typedPrimary{
			skill:       "Iron Grip",
			favored:     xp.ExerciseTypeStrength,
			description: "bonus XP for strength training",
		},
		Secondary: battleFury{},
	}
}

const battleFuryRate = 0.10

type battleFury struct{}

func (battleFury) Name() string { return "Battle Fury" }

func (battleFury) IsApplicable(ctx BonusContext) bool {
	return ctx.Facts.HasPersonalRecord
}

func (battleFury) Calculate(ctx BonusContext) BonusLine {
	base := ctx.Components.ExerciseXP + ctx.Components.SetsXP
	return BonusLine{
		Skill:       "Battle Fury",
		Amount:      int(math.Round(float64(base) * battleFuryRate)),
		Description: "extra XP for setting a personal record",
	}
}
