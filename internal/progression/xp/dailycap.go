package xp

import "math"

const (
	// DailyXPCap is the normal daily XP ceiling per user.
	DailyXPCap = 300
	// PowerDayXPCap is the raised ceiling on an active Power Day.
	PowerDayXPCap = 500
)

// CapDecision is the outcome of clipping one award against the daily cap.
type CapDecision struct {
	Cap        int  `json:"cap"`
	AwardedXP  int  `json:"awardedXp"`
	NewDailyXP int  `json:"newDailyXp"`
	Capped     bool `json:"capped"`
}

// CapArbiter applies the daily XP ceiling. Disabled lifts the cap
// entirely; it is an explicit toggle for QA setups and is never inferred.
type CapArbiter struct {
	Disabled bool
}

// Clip applies the daily cap to the cappable portion of an award.
// The PR bonus is exempt: callers pass it separately and it is added back
// after clipping, so a personal record is never swallowed by the cap.
func (a CapArbiter) Clip(currentDailyXP, cappableXP, prBonus int, powerDay bool) CapDecision {
	if a.Disabled {
		return CapDecision{
			Cap:        math.MaxInt32,
			AwardedXP:  cappableXP + prBonus,
			NewDailyXP: currentDailyXP + cappableXP,
		}
	}

	cap := DailyXPCap
	if powerDay {
		cap = PowerDayXPCap
	}

	allowed := cap - currentDailyXP
	if allowed < 0 {
		allowed = 0
	}

	awarded := cappableXP
	if awarded > allowed {
		awarded = allowed
	}

	newDaily := currentDailyXP + cappableXP
	if newDaily > cap {
		newDaily = cap
	}

	return CapDecision{
		Cap:        cap,
		AwardedXP:  awarded + prBonus,
		NewDailyXP: newDaily,
		Capped:     awarded < cappableXP,
	}
}
