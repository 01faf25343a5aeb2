package xp

import "math"

const (
	// streakBonusPerDay is the extra fraction of base XP per consecutive day.
	streakBonusPerDay = 0.05
	// StreakBonusCapDays caps the streak contribution at +35%.
	StreakBonusCapDays = 7
)

// StreakMultiplier maps the current consecutive-day streak to a bonus
// multiplier: 1 + min(streak, 7) * 0.05. A streak of 0 or 1 gives no bonus.
func StreakMultiplier(streak int) float64 {
	if streak <= 1 {
		return 1.0
	}
	if streak > StreakBonusCapDays {
		streak = StreakBonusCapDays
	}
	return 1 + float64(streak)*streakBonusPerDay
}

// StreakBonus returns the streak bonus XP for the given total base XP.
func StreakBonus(totalBaseXP, streak int) int {
	multiplier := StreakMultiplier(streak)
	if multiplier <= 1.0 {
		return 0
	}
	return int(math.Round(float64(totalBaseXP) * (multiplier - 1)))
}
