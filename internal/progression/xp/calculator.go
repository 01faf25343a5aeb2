// Package xp holds the pure XP computation: base components per workout,
// the streak multiplier and the daily cap arbiter. Everything in here is
// deterministic and side-effect free; persistence happens elsewhere.
package xp

import "math"

const (
	BaseExerciseXP = 5
	BaseSetXP      = 2
	// MaxXPSets caps the number of sets that can contribute XP,
	// so grinding endless sets does not farm XP.
	MaxXPSets = 10
	// PRBonusXP is awarded on a personal record and is exempt from the daily cap.
	PRBonusXP = 50
)

// timeTiers is the diminishing-returns schedule for workout duration.
// Each tier covers 30 minutes and is worth progressively less; time
// beyond 90 minutes earns nothing.
var timeTiers = []struct {
	minutes float64
	xp      float64
}{
	{30, 40},
	{30, 30},
	{30, 20},
}

// Components is the per-workout base XP breakdown.
type Components struct {
	TimeXP     int `json:"timeXp"`
	ExerciseXP int `json:"exerciseXp"`
	SetsXP     int `json:"setsXp"`
	PRBonus    int `json:"prBonus"`
	TotalBase  int `json:"totalBase"`
}

// CalculateComponents converts raw workout facts into base XP components.
// The order of operations is fixed: each component is computed and rounded
// independently, time XP is rounded once at the end (not per tier), so the
// result is reproducible for identical inputs.
func CalculateComponents(facts WorkoutFacts) Components {
	multiplier := facts.Difficulty.Multiplier()

	timeXP := timeXPForDuration(facts.DurationSeconds)
	exerciseXP := int(math.Round(float64(len(facts.Exercises)) * BaseExerciseXP * multiplier))

	completedSets := facts.CompletedSets()
	if completedSets > MaxXPSets {
		completedSets = MaxXPSets
	}
	setsXP := int(math.Round(float64(completedSets) * BaseSetXP * multiplier))

	var prBonus int
	if facts.HasPersonalRecord {
		prBonus = PRBonusXP
	}

	return Components{
		TimeXP:     timeXP,
		ExerciseXP: exerciseXP,
		SetsXP:     setsXP,
		PRBonus:    prBonus,
		TotalBase:  timeXP + exerciseXP + setsXP + prBonus,
	}
}

// MatchedExerciseAndSetXP computes the exercise and set XP attributable
// to exercises of the given type only, using the same base values,
// difficulty multiplier and set cap as CalculateComponents. Class
// abilities scale this subset instead of the whole base XP, so training
// unrelated to the class earns no class bonus.
func MatchedExerciseAndSetXP(facts WorkoutFacts, exerciseType ExerciseType) int {
	multiplier := facts.Difficulty.Multiplier()

	var matchedExercises, matchedSets int
	for _, e := range facts.Exercises {
		if e.Type != exerciseType {
			continue
		}
		matchedExercises++
		matchedSets += e.CompletedSets()
	}
	if matchedSets > MaxXPSets {
		matchedSets = MaxXPSets
	}

	return int(math.Round(
		float64(matchedExercises)*BaseExerciseXP*multiplier +
			float64(matchedSets)*BaseSetXP*multiplier,
	))
}

// timeXPForDuration walks the tier schedule, prorating the partially
// filled tier by the fraction of its minutes actually used. The sum is
// rounded exactly once.
func timeXPForDuration(durationSeconds int) int {
	if durationSeconds <= 0 {
		return 0
	}

	minutes := float64(durationSeconds) / 60
	var total float64
	for _, tier := range timeTiers {
		if minutes <= 0 {
			break
		}
		if minutes >= tier.minutes {
			total += tier.xp
			minutes -= tier.minutes
			continue
		}
		total += tier.xp * (minutes / tier.minutes)
		minutes = 0
	}

	return int(math.Round(total))
}
