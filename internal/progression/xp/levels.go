package xp

// MaxLevel is the level ceiling.
const MaxLevel = 99

// xpRequiredForLevel returns the total XP needed to reach the given level.
// Level L requires the sum of 100*1 + 100*2 + ... + 100*(L-1), i.e. 50*L*(L-1).
func xpRequiredForLevel(level int) int {
	return 50 * level * (level - 1)
}

// LevelForXP derives the level from total XP. The level is always
// recomputed from the authoritative XP total, never incremented on its
// own, so it is monotone in XP and bounded to [1, MaxLevel].
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	level := 1
	for level < MaxLevel && xpRequiredForLevel(level+1) <= totalXP {
		level++
	}
	return level
}

// XPToNextLevel returns how much XP is missing until the next level,
// or 0 when already at the ceiling.
func XPToNextLevel(totalXP int) int {
	level := LevelForXP(totalXP)
	if level >= MaxLevel {
		return 0
	}
	return xpRequiredForLevel(level+1) - totalXP
}
