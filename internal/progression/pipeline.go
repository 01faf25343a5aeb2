// Package progression wires the XP award, achievement evaluation and
// rank recalculation into the single flow that runs after every
// completed workout.
package progression

import (
	"context"
	"fmt"

	"github.com/ironquest/backend/internal/profiles"
	"github.com/ironquest/backend/internal/progression/achievements"
	"github.com/ironquest/backend/internal/progression/award"
	"github.com/ironquest/backend/internal/progression/rank"
	"github.com/ironquest/backend/internal/progression/xp"
	"github.com/ironquest/backend/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=pipeline_mocks_test.go -package=progression_test

type awarder interface {
	Award(ctx context.Context, userID string, facts xp.WorkoutFacts) (*award.Result, error)
}

type achievementEvaluator interface {
	Evaluate(ctx context.Context, userID string, stats achievements.UserStats) ([]achievements.Definition, error)
}

type profileStore interface {
	Get(ctx context.Context, userID string) (*profiles.Profile, error)
	UpdateLevel(ctx context.Context, userID string, level int) error
	UpdateRank(ctx context.Context, userID string, tier rank.Tier) error
	IncrementRecordsCount(ctx context.Context, userID string) error
}

type varietySource interface {
	DistinctExerciseTypes(ctx context.Context, userID string) (int, error)
}

// Outcome is everything one workout completion produced.
type Outcome struct {
	Award                *award.Result             `json:"award"`
	UnlockedAchievements []achievements.Definition `json:"unlockedAchievements,omitempty"`
	Rank                 rank.Tier                 `json:"rank"`
	RankScore            float64                   `json:"rankScore"`
}

type Pipeline struct {
	coordinator awarder
	engine      achievementEvaluator
	profiles    profileStore
	variety     varietySource
	metrics     *metrics.Manager
}

func NewPipeline(
	coordinator awarder,
	engine achievementEvaluator,
	profileRepo profileStore,
	variety varietySource,
	metricsManager *metrics.Manager,
) *Pipeline {
	return &Pipeline{
		coordinator: coordinator,
		engine:      engine,
		profiles:    profileRepo,
		variety:     variety,
		metrics:     metricsManager,
	}
}

// OnWorkoutCompleted awards XP for the already-persisted workout, then
// re-checks achievements against the updated state and recomputes the
// rank. Achievement and rank steps are best-effort: their failure does
// not roll back the award, and the next evaluation catches up because
// every step is idempotent.
func (p *Pipeline) OnWorkoutCompleted(ctx context.Context, userID string, facts xp.WorkoutFacts) (*Outcome, error) {
	result, err := p.coordinator.Award(ctx, userID, facts)
	if err != nil {
		return nil, fmt.Errorf("award xp: %w", err)
	}

	p.countAward(result)

	if facts.HasPersonalRecord {
		if err := p.profiles.IncrementRecordsCount(ctx, userID); err != nil {
			log.Errorf("increment records count for user %s: %s", userID, err)
		}
	}

	outcome := &Outcome{Award: result}

	unlocked, err := p.evaluateAchievements(ctx, userID, result)
	if err != nil {
		log.Errorf("evaluate achievements for user %s: %s", userID, err)
	}
	outcome.UnlockedAchievements = unlocked
	if p.metrics != nil {
		p.metrics.CounterAchievementsUnlocked.Add(float64(len(unlocked)))
	}

	tier, score, err := p.syncRank(ctx, userID)
	if err != nil {
		log.Errorf("sync rank for user %s: %s", userID, err)
	}
	outcome.Rank = tier
	outcome.RankScore = score

	return outcome, nil
}

// EvaluateUser re-runs achievement evaluation and the rank sync from
// the current persisted state, outside of any award. Used by retries
// and by events other than workout completion.
func (p *Pipeline) EvaluateUser(ctx context.Context, userID string) (*Outcome, error) {
	profile, err := p.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	stats, err := p.assembleStats(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("assemble stats: %w", err)
	}

	unlocked, err := p.engine.Evaluate(ctx, userID, stats)
	if err != nil {
		return nil, fmt.Errorf("evaluate achievements: %w", err)
	}
	if p.metrics != nil {
		p.metrics.CounterAchievementsUnlocked.Add(float64(len(unlocked)))
	}

	tier, score, err := p.syncRank(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sync rank: %w", err)
	}

	return &Outcome{
		UnlockedAchievements: unlocked,
		Rank:                 tier,
		RankScore:            score,
	}, nil
}

func (p *Pipeline) evaluateAchievements(ctx context.Context, userID string, result *award.Result) ([]achievements.Definition, error) {
	profile, err := p.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	stats, err := p.assembleStats(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("assemble stats: %w", err)
	}
	// the award already knows the freshest streak and level
	if result.NewStreak > stats.Streak {
		stats.Streak = result.NewStreak
	}
	if result.NewLevel > stats.Level {
		stats.Level = result.NewLevel
	}

	return p.engine.Evaluate(ctx, userID, stats)
}

func (p *Pipeline) assembleStats(ctx context.Context, profile *profiles.Profile) (achievements.UserStats, error) {
	distinctTypes, err := p.variety.DistinctExerciseTypes(ctx, profile.ID)
	if err != nil {
		return achievements.UserStats{}, fmt.Errorf("distinct exercise types: %w", err)
	}

	return achievements.UserStats{
		WorkoutsCount:         profile.WorkoutsCount,
		RecordsCount:          profile.RecordsCount,
		TotalXP:               profile.XP,
		Level:                 profile.Level,
		Streak:                profile.Streak,
		DistinctExerciseTypes: distinctTypes,
	}, nil
}

// syncRank re-reads the profile after achievements may have credited
// XP and points, re-derives level and rank, and writes back whatever
// changed. Both writes are no-ops when nothing moved.
func (p *Pipeline) syncRank(ctx context.Context, userID string) (rank.Tier, float64, error) {
	profile, err := p.profiles.Get(ctx, userID)
	if err != nil {
		return "", 0, fmt.Errorf("get profile: %w", err)
	}

	level := xp.LevelForXP(profile.XP)
	if level != profile.Level {
		if err := p.profiles.UpdateLevel(ctx, userID, level); err != nil {
			return "", 0, fmt.Errorf("update level: %w", err)
		}
	}

	tier, score := rank.Calculate(level, profile.AchievementPoints)
	if err := p.profiles.UpdateRank(ctx, userID, tier); err != nil {
		return "", 0, fmt.Errorf("update rank: %w", err)
	}

	return tier, score, nil
}

func (p *Pipeline) countAward(result *award.Result) {
	if p.metrics == nil {
		return
	}
	p.metrics.CounterWorkoutsCompleted.Inc()
	p.metrics.CounterXPAwarded.Add(float64(result.FinalXP))
	if result.LeveledUp {
		p.metrics.CounterLevelUps.Inc()
	}
	if result.Breakdown.PowerDay {
		p.metrics.CounterPowerDays.Inc()
	}
	if result.Breakdown.Capped {
		p.metrics.CounterCappedAwards.Inc()
	}
}
