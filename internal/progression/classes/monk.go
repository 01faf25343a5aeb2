package classes

import (
	"math"
	"time"

	"github.com/ironquest/backend/internal/progression/xp"
)

// Monk favors calisthenics. Flowing Form pays a share of the XP earned
// on bodyweight work; Inner Stillness lets the monk skip one day and
// keep 95% of the streak, at most once per week.
func Monk() Class {
	return Class{
		ID:          ClassMonk,
		Name:        "Monk",
		FavoredType: xp.ExerciseTypeCalisthenics,
		Primary: typedPrimary{
			skill:       "Flowing Form",
			favored:     xp.ExerciseTypeCalisthenics,
			description: "bonus XP for calisthenics training",
		},
		Triggered: innerStillness{},
	}
}

const innerStillnessKeepRate = 0.95

type innerStillness struct{}

func (innerStillness) Name() string { return "Inner Stillness" }

func (innerStillness) Cooldown() time.Duration { return 7 * 24 * time.Hour }

func (innerStillness) Preserve(streak int) int {
	if streak <= 0 {
		return 0
	}
	return int(math.Round(float64(streak) * innerStillnessKeepRate))
}
