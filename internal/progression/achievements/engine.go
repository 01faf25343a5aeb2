package achievements

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ironquest/backend/internal/notifications"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=achievements_test

type achievementsStore interface {
	UpsertProgress(ctx context.Context, progress Progress) error
	InsertUnlockedIfAbsent(ctx context.Context, userID, achievementID string, unlockedAt time.Time) (bool, error)
	ListUnlocked(ctx context.Context, userID string) ([]Unlocked, error)
}

type profileCrediter interface {
	CreditAchievement(ctx context.Context, userID string, points, xpReward int) error
}

// Engine checks the catalog against a user's current stats, advances
// progress and unlocks whatever crossed its threshold. Safe to run
// repeatedly and concurrently for the same user: progress writes are
// monotone upserts and unlocks are insert-if-absent.
type Engine struct {
	store    achievementsStore
	profiles profileCrediter
	notifier notifications.Notifier
	now      func() time.Time
}

func NewEngine(store achievementsStore, profiles profileCrediter, notifier notifications.Notifier) *Engine {
	return &Engine{
		store:    store,
		profiles: profiles,
		notifier: notifier,
		now:      time.Now,
	}
}

// Evaluate runs all category groups and returns the newly unlocked
// definitions. A failure in one category does not stop the others;
// their errors are collected and returned together.
func (e *Engine) Evaluate(ctx context.Context, userID string, stats UserStats) ([]Definition, error) {
	if userID == "" {
		return nil, fmt.Errorf("evaluate achievements: empty user id")
	}

	unlockedRows, err := e.store.ListUnlocked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocked achievements: %w", err)
	}
	alreadyUnlocked := make(map[string]bool, len(unlockedRows))
	for _, u := range unlockedRows {
		alreadyUnlocked[u.AchievementID] = true
	}

	var newlyUnlocked []Definition
	var evalErr error
	for _, category := range Categories() {
		unlocked, err := e.evaluateCategory(ctx, userID, category, stats, alreadyUnlocked)
		if err != nil {
			evalErr = multierr.Append(evalErr, fmt.Errorf("category %s: %w", category, err))
			continue
		}
		newlyUnlocked = append(newlyUnlocked, unlocked...)
	}

	return newlyUnlocked, evalErr
}

func (e *Engine) evaluateCategory(
	ctx context.Context,
	userID string,
	category Category,
	stats UserStats,
	alreadyUnlocked map[string]bool,
) ([]Definition, error) {
	var unlocked []Definition
	for _, def := range CatalogByCategory(category) {
		metric := stats.MetricFor(def.RequirementType)
		complete := metric >= def.RequirementValue

		if err := e.store.UpsertProgress(ctx, Progress{
			UserID:        userID,
			AchievementID: def.ID,
			CurrentValue:  metric,
			TargetValue:   def.RequirementValue,
			IsComplete:    complete,
		}); err != nil {
			return unlocked, fmt.Errorf("upsert progress for %s: %w", def.ID, err)
		}

		if !complete || alreadyUnlocked[def.ID] {
			continue
		}

		inserted, err := e.store.InsertUnlockedIfAbsent(ctx, userID, def.ID, e.now())
		if err != nil {
			return unlocked, fmt.Errorf("insert unlocked %s: %w", def.ID, err)
		}
		if !inserted {
			// a concurrent evaluation beat us to it
			alreadyUnlocked[def.ID] = true
			continue
		}

		if err := e.profiles.CreditAchievement(ctx, userID, def.Points, def.XPReward); err != nil {
			return unlocked, fmt.Errorf("credit achievement %s: %w", def.ID, err)
		}

		alreadyUnlocked[def.ID] = true
		unlocked = append(unlocked, def)
		e.notifyUnlocked(ctx, userID, def)
	}
	return unlocked, nil
}

func (e *Engine) notifyUnlocked(ctx context.Context, userID string, def Definition) {
	if e.notifier == nil {
		return
	}
	err := e.notifier.Notify(ctx, notifications.Event{
		UserID: userID,
		Type:   notifications.EventAchievementUnlocked,
		Payload: map[string]string{
			"achievementId": def.ID,
			"name":          def.Name,
			"rank":          def.Rank,
			"points":        strconv.Itoa(def.Points),
			"xpReward":      strconv.Itoa(def.XPReward),
		},
	})
	if err != nil {
		log.Errorf("notify achievement %s unlocked for user %s: %s", def.ID, userID, err)
	}
}
