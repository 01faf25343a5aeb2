package classes

import (
	"math"

	"github.com/ironquest/backend/internal/progression/xp"
)

// primaryRate is the share of matched exercise+set XP every primary
// ability awards. Primaries never scale the whole base XP, only the XP
// earned on exercises of the class's favored type.
const primaryRate = 0.20

// typedPrimary is the common shape of all primary abilities: a
// percentage of the exercise+set XP earned on the favored exercise type.
type typedPrimary struct {
	skill       string
	favored     xp.ExerciseType
	description string
}

func (p typedPrimary) Name() string { return p.skill }

func (p typedPrimary) IsApplicable(ctx BonusContext) bool {
	return xp.MatchedExerciseAndSetXP(ctx.Facts, p.favored) > 0
}

func (p typedPrimary) Calculate(ctx BonusContext) BonusLine {
	matched := xp.MatchedExerciseAndSetXP(ctx.Facts, p.favored)
	return BonusLine{
		Skill:       p.skill,
		Amount:      int(math.Round(float64(matched) * primaryRate)),
		Description: p.description,
	}
}
