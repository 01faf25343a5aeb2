package classes

import "math"

// Berserker has no favored exercise type; it rewards sheer volume and
// relentless consistency instead.
func Berserker() Class {
	return Class{
		ID:        ClassBerserker,
		Name:      "Berserker",
		Primary:   rampage{},
		Secondary: bloodlust{},
	}
}

const (
	rampageRate         = 0.20
	rampageMinExercises = 5
)

type rampage struct{}

func (rampage) Name() string { return "Rampage" }

func (rampage) IsApplicable(ctx BonusContext) bool {
	return len(ctx.Facts.Exercises) >= rampageMinExercises
}

func (rampage) Calculate(ctx BonusContext) BonusLine {
	base := ctx.Components.ExerciseXP + ctx.Components.SetsXP
	return BonusLine{
		Skill:       "Rampage",
		Amount:      int(math.Round(float64(base) * rampageRate)),
		Description: "bonus XP for a high volume session",
	}
}

const (
	bloodlustBonusXP   = 20
	bloodlustMinStreak = 5
)

type bloodlust struct{}

func (bloodlust) Name() string { return "Bloodlust" }

func (bloodlust) IsApplicable(ctx BonusContext) bool {
	return ctx.Streak >= bloodlustMinStreak
}

func (bloodlust) Calculate(ctx BonusContext) BonusLine {
	return BonusLine{
		Skill:       "Bloodlust",
		Amount:      bloodlustBonusXP,
		Description: "extra XP for keeping the streak alive",
	}
}
