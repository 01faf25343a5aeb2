package achievements

import "github.com/ironquest/backend/internal/progression/rank"

// pointsForRank and xpRewardForRank keep the payout consistent across
// categories: the rank of an achievement decides what it is worth.
var pointsForRank = map[rank.Tier]int{
	rank.TierE: 10,
	rank.TierD: 20,
	rank.TierC: 40,
	rank.TierB: 80,
	rank.TierA: 150,
	rank.TierS: 300,
}

var xpRewardForRank = map[rank.Tier]int{
	rank.TierE: 50,
	rank.TierD: 100,
	rank.TierC: 200,
	rank.TierB: 400,
	rank.TierA: 750,
	rank.TierS: 1500,
}

func define(id, name string, category Category, tier rank.Tier, reqType RequirementType, reqValue int) Definition {
	return Definition{
		ID:               id,
		Name:             name,
		Category:         category,
		Rank:             string(tier),
		RequirementType:  reqType,
		RequirementValue: reqValue,
		Points:           pointsForRank[tier],
		XPReward:         xpRewardForRank[tier],
	}
}

// catalog is the static achievement table. IDs are stable: progress
// and unlock rows reference them, so entries are only ever added.
var catalog = []Definition{
	define("workouts-1", "First Steps", CategoryWorkout, rank.TierE, RequirementWorkoutCount, 1),
	define("workouts-7", "Regular", CategoryWorkout, rank.TierD, RequirementWorkoutCount, 7),
	define("workouts-30", "Dedicated", CategoryWorkout, rank.TierC, RequirementWorkoutCount, 30),
	define("workouts-100", "Veteran", CategoryWorkout, rank.TierB, RequirementWorkoutCount, 100),
	define("workouts-250", "Iron Will", CategoryWorkout, rank.TierA, RequirementWorkoutCount, 250),
	define("workouts-500", "Living Legend", CategoryWorkout, rank.TierS, RequirementWorkoutCount, 500),

	define("streak-3", "Warming Up", CategoryStreak, rank.TierE, RequirementStreakDays, 3),
	define("streak-7", "One Full Week", CategoryStreak, rank.TierD, RequirementStreakDays, 7),
	define("streak-14", "Fortnight Fighter", CategoryStreak, rank.TierC, RequirementStreakDays, 14),
	define("streak-30", "Month of Fire", CategoryStreak, rank.TierB, RequirementStreakDays, 30),
	define("streak-60", "Unstoppable", CategoryStreak, rank.TierA, RequirementStreakDays, 60),
	define("streak-100", "Eternal Flame", CategoryStreak, rank.TierS, RequirementStreakDays, 100),

	define("records-1", "Record Breaker", CategoryRecord, rank.TierE, RequirementRecordCount, 1),
	define("records-5", "Pushing Limits", CategoryRecord, rank.TierD, RequirementRecordCount, 5),
	define("records-15", "Limit Crusher", CategoryRecord, rank.TierC, RequirementRecordCount, 15),
	define("records-30", "Beyond Measure", CategoryRecord, rank.TierB, RequirementRecordCount, 30),
	define("records-60", "Record Collector", CategoryRecord, rank.TierA, RequirementRecordCount, 60),
	define("records-100", "Apex", CategoryRecord, rank.TierS, RequirementRecordCount, 100),

	define("xp-100", "Spark", CategoryXP, rank.TierE, RequirementTotalXP, 100),
	define("xp-1000", "Kindled", CategoryXP, rank.TierD, RequirementTotalXP, 1000),
	define("xp-5000", "Burning Bright", CategoryXP, rank.TierC, RequirementTotalXP, 5000),
	define("xp-15000", "Blazing", CategoryXP, rank.TierB, RequirementTotalXP, 15000),
	define("xp-50000", "Inferno", CategoryXP, rank.TierA, RequirementTotalXP, 50000),
	define("xp-100000", "Supernova", CategoryXP, rank.TierS, RequirementTotalXP, 100000),

	define("level-5", "Apprentice", CategoryLevel, rank.TierE, RequirementLevel, 5),
	define("level-10", "Adept", CategoryLevel, rank.TierD, RequirementLevel, 10),
	define("level-25", "Expert", CategoryLevel, rank.TierC, RequirementLevel, 25),
	define("level-50", "Master", CategoryLevel, rank.TierB, RequirementLevel, 50),
	define("level-75", "Grandmaster", CategoryLevel, rank.TierA, RequirementLevel, 75),
	define("level-99", "Transcendent", CategoryLevel, rank.TierS, RequirementLevel, 99),

	define("variety-2", "Cross Trainer", CategoryVariety, rank.TierE, RequirementExerciseTypes, 2),
	define("variety-3", "Well Rounded", CategoryVariety, rank.TierD, RequirementExerciseTypes, 3),
	define("variety-4", "Jack of All Trades", CategoryVariety, rank.TierC, RequirementExerciseTypes, 4),
	define("variety-5", "Renaissance Athlete", CategoryVariety, rank.TierB, RequirementExerciseTypes, 5),
}

// Catalog returns the full achievement table.
func Catalog() []Definition {
	return catalog
}

// CatalogByCategory returns the definitions of one evaluation group.
func CatalogByCategory(category Category) []Definition {
	var defs []Definition
	for _, def := range catalog {
		if def.Category == category {
			defs = append(defs, def)
		}
	}
	return defs
}
