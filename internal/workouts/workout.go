// Package workouts stores completed workouts and answers the count
// and record queries the progression engine runs against them.
package workouts

import (
	"time"

	"github.com/ironquest/backend/internal/progression/xp"
)

// Workout is one completed training session.
type Workout struct {
	ID                int                `json:"id"`
	UserID            string             `json:"userId"`
	Difficulty        xp.Difficulty      `json:"difficulty"`
	DurationSeconds   int                `json:"durationSeconds"`
	Exercises         []xp.ExerciseEntry `json:"exercises"`
	HasPersonalRecord bool               `json:"hasPersonalRecord"`
	CompletedAt       time.Time          `json:"completedAt"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// Facts converts the stored workout into the immutable input the XP
// computation runs on.
func (w Workout) Facts() xp.WorkoutFacts {
	return xp.WorkoutFacts{
		Exercises:         w.Exercises,
		DurationSeconds:   w.DurationSeconds,
		Difficulty:        w.Difficulty,
		HasPersonalRecord: w.HasPersonalRecord,
	}
}

// maxCompletedKilos returns the heaviest completed set of one exercise.
func maxCompletedKilos(exercise xp.ExerciseEntry) float64 {
	var best float64
	for _, set := range exercise.Sets {
		if set.Completed && set.Kilos > best {
			best = set.Kilos
		}
	}
	return best
}
