// Package rank derives a named tier from a user's level and
// achievement points.
package rank

// Tier is a named rank, from Unranked up to S.
type Tier string

const (
	TierUnranked Tier = "unranked"
	TierE        Tier = "E"
	TierD        Tier = "D"
	TierC        Tier = "C"
	TierB        Tier = "B"
	TierA        Tier = "A"
	TierS        Tier = "S"
)

func (t Tier) IsValid() bool {
	switch t {
	case TierUnranked, TierE, TierD, TierC, TierB, TierA, TierS:
		return true
	default:
		return false
	}
}

// threshold is one row of the ordered tier table. maxScore is the
// exclusive upper bound; nil means the tier is unbounded above. Bounds
// are exclusive because scores move in half-point steps (level carries
// a 1.5 weight), so integer-inclusive ranges would leave gaps.
type threshold struct {
	tier     Tier
	minScore float64
	maxScore *float64
}

func boundary(v float64) *float64 { return &v }

// thresholds covers the whole non-negative score range with no gaps.
var thresholds = []threshold{
	{tier: TierUnranked, minScore: 0, maxScore: boundary(10)},
	{tier: TierE, minScore: 10, maxScore: boundary(40)},
	{tier: TierD, minScore: 40, maxScore: boundary(80)},
	{tier: TierC, minScore: 80, maxScore: boundary(120)},
	{tier: TierB, minScore: 120, maxScore: boundary(200)},
	{tier: TierA, minScore: 200, maxScore: boundary(300)},
	{tier: TierS, minScore: 300},
}

const (
	levelWeight  = 1.5
	pointsWeight = 2.0
)

// Score combines level and achievement points into the rank score.
// The score is not capped.
func Score(level, achievementPoints int) float64 {
	return levelWeight*float64(level) + pointsWeight*float64(achievementPoints)
}

// TierForScore returns the first tier whose range contains the score.
// Negative scores cannot occur for valid profiles and map to Unranked.
func TierForScore(score float64) Tier {
	for _, th := range thresholds {
		if score < th.minScore {
			continue
		}
		if th.maxScore == nil || score < *th.maxScore {
			return th.tier
		}
	}
	return TierUnranked
}

// Calculate derives the tier for the given level and achievement points.
func Calculate(level, achievementPoints int) (Tier, float64) {
	score := Score(level, achievementPoints)
	return TierForScore(score), score
}
