package xp

// Difficulty is the self-reported intensity level of a workout.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// Multiplier scales the exercise and set XP components.
// Beginner stays at 1.0 so that a plain workout maps 1:1 to the base values.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyIntermediate:
		return 1.25
	case DifficultyAdvanced:
		return 1.5
	default:
		return 1.0
	}
}

// ExerciseType groups exercises for class bonus matching and variety stats.
type ExerciseType string

const (
	ExerciseTypeStrength     ExerciseType = "strength"
	ExerciseTypeCalisthenics ExerciseType = "calisthenics"
	ExerciseTypeCardio       ExerciseType = "cardio"
	ExerciseTypeMobility     ExerciseType = "mobility"
	ExerciseTypeSport        ExerciseType = "sport"
)

func (et ExerciseType) IsValid() bool {
	switch et {
	case ExerciseTypeStrength, ExerciseTypeCalisthenics,
		ExerciseTypeCardio, ExerciseTypeMobility, ExerciseTypeSport:
		return true
	default:
		return false
	}
}

type SetEntry struct {
	Kilos     float64 `json:"kilos"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

type ExerciseEntry struct {
	Name string       `json:"name"`
	Type ExerciseType `json:"type"`
	Sets []SetEntry   `json:"sets"`
}

// CompletedSets counts only the sets actually finished.
func (e ExerciseEntry) CompletedSets() int {
	var count int
	for _, s := range e.Sets {
		if s.Completed {
			count++
		}
	}
	return count
}

// WorkoutFacts is the immutable input to one XP computation,
// assembled by the caller from the persisted workout and set rows.
type WorkoutFacts struct {
	Exercises         []ExerciseEntry `json:"exercises"`
	DurationSeconds   int             `json:"durationSeconds"`
	Difficulty        Difficulty      `json:"difficulty"`
	HasPersonalRecord bool            `json:"hasPersonalRecord"`
}

func (f WorkoutFacts) CompletedSets() int {
	var count int
	for _, e := range f.Exercises {
		count += e.CompletedSets()
	}
	return count
}

// DistinctExerciseTypes returns the number of different exercise types
// present in the workout.
func (f WorkoutFacts) DistinctExerciseTypes() int {
	seen := make(map[ExerciseType]bool)
	for _, e := range f.Exercises {
		seen[e.Type] = true
	}
	return len(seen)
}
