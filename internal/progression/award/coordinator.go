// Package award orchestrates one XP award: base components, streak,
// class bonuses, completion bonuses, the daily cap and finally the
// profile write. The whole computation is deterministic; wall clock
// and randomness only enter at the persistence boundary.
package award

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ironquest/backend/internal/notifications"
	"github.com/ironquest/backend/internal/profiles"
	"github.com/ironquest/backend/internal/progression/classes"
	"github.com/ironquest/backend/internal/progression/xp"
	"github.com/ironquest/backend/pkg/retry"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=coordinator_mocks_test.go -package=award_test

var (
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidWorkoutFacts = errors.New("invalid workout facts")
)

const (
	weeklyBonusXP      = 100
	weeklyBonusCount   = 3
	monthlyBonusXP     = 300
	monthlyBonusCount  = 12
	powerDaysPerWeek   = 2
	powerDayMinWorkout = 2
)

type profileStore interface {
	Get(ctx context.Context, userID string) (*profiles.Profile, error)
	ApplyAward(ctx context.Context, params profiles.AwardParams) (int, error)
	UpdateLevel(ctx context.Context, userID string, level int) error
}

type workoutCounter interface {
	CompletedCount(ctx context.Context, userID string, from, to time.Time) (int, error)
}

type powerDayStore interface {
	UsageCount(ctx context.Context, userID string, isoYear, isoWeek int) (int, error)
	InsertUsage(ctx context.Context, userID string, isoYear, isoWeek, ordinal int) (bool, error)
}

type classBonusResolver interface {
	Resolve(ctx context.Context, userID string, classID classes.ID, bonusCtx classes.BonusContext) ([]classes.BonusLine, error)
	PreserveStreak(ctx context.Context, userID string, classID classes.ID, streak int) (int, bool, error)
}

// Breakdown itemizes one award so the caller can show exactly where
// the XP came from. It exists only for the duration of the response.
type Breakdown struct {
	Base           xp.Components       `json:"base"`
	StreakBonus    int                 `json:"streakBonus"`
	ClassBonus     int                 `json:"classBonus"`
	RecordBonus    int                 `json:"recordBonus"`
	WeeklyBonus    int                 `json:"weeklyBonus"`
	MonthlyBonus   int                 `json:"monthlyBonus"`
	BonusDetails   []classes.BonusLine `json:"bonusDetails,omitempty"`
	TotalBeforeCap int                 `json:"totalBeforeCap"`
	Capped         bool                `json:"capped"`
	PowerDay       bool                `json:"powerDay"`
}

// Result is the outcome of one award.
type Result struct {
	FinalXP     int       `json:"finalXp"`
	NewXP       int       `json:"newXp"`
	NewLevel    int       `json:"newLevel"`
	LeveledUp   bool      `json:"leveledUp"`
	NewStreak   int       `json:"newStreak"`
	StreakSaved bool      `json:"streakSaved"`
	Breakdown   Breakdown `json:"breakdown"`
}

type Coordinator struct {
	profiles    profileStore
	workouts    workoutCounter
	powerDays   powerDayStore
	resolver    classBonusResolver
	notifier    notifications.Notifier
	arbiter     xp.CapArbiter
	retryPolicy retry.Policy
	now         func() time.Time
}

func NewCoordinator(
	profileRepo profileStore,
	workouts workoutCounter,
	powerDays powerDayStore,
	resolver classBonusResolver,
	notifier notifications.Notifier,
	arbiter xp.CapArbiter,
) *Coordinator {
	return &Coordinator{
		profiles:    profileRepo,
		workouts:    workouts,
		powerDays:   powerDays,
		resolver:    resolver,
		notifier:    notifier,
		arbiter:     arbiter,
		retryPolicy: retry.DefaultPolicy(),
		now:         time.Now,
	}
}

// Award turns one completed workout into an XP award and applies it to
// the user profile. The workout must already be persisted as completed
// so the weekly, monthly and same-day counts include it. Call exactly
// once per workout id.
func (c *Coordinator) Award(ctx context.Context, userID string, facts xp.WorkoutFacts) (_ *Result, err error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if err := ValidateFacts(facts); err != nil {
		return nil, err
	}

	var profile *profiles.Profile
	if err := c.withRetry(ctx, func() error {
		p, err := c.profiles.Get(ctx, userID)
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return retry.Permanent(err)
		}
		if err != nil {
			return err
		}
		profile = p
		return nil
	}); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	now := c.now()

	// daily XP resets on the first workout of a new day
	currentDailyXP := profile.DailyXP
	if profile.LastWorkoutAt == nil || daysBetween(*profile.LastWorkoutAt, now) != 0 {
		currentDailyXP = 0
	}

	components := xp.CalculateComponents(facts)

	newStreak, streakSaved, err := c.nextStreak(ctx, profile, now)
	if err != nil {
		return nil, fmt.Errorf("streak transition: %w", err)
	}

	streakBonus := xp.StreakBonus(components.TotalBase, newStreak)

	var classLines []classes.BonusLine
	if profile.HasClass() {
		classLines, err = c.resolver.Resolve(ctx, userID, profile.Class, classes.BonusContext{
			Facts:      facts,
			Components: components,
			Streak:     newStreak,
		})
		if err != nil {
			return nil, fmt.Errorf("resolve class bonuses: %w", err)
		}
	}
	var classBonus int
	for _, line := range classLines {
		classBonus += line.Amount
	}

	weeklyBonus, monthlyBonus, err := c.completionBonuses(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("completion bonuses: %w", err)
	}

	// the PR bonus bypasses the cap, everything else counts against it
	cappable := components.TotalBase - components.PRBonus +
		streakBonus + classBonus + weeklyBonus + monthlyBonus

	powerDay, err := c.tryPowerDay(ctx, userID, now, currentDailyXP, cappable)
	if err != nil {
		return nil, fmt.Errorf("power day check: %w", err)
	}

	decision := c.arbiter.Clip(currentDailyXP, cappable, components.PRBonus, powerDay)

	var newXP int
	if err := c.withRetry(ctx, func() error {
		total, err := c.profiles.ApplyAward(ctx, profiles.AwardParams{
			UserID:        userID,
			XPDelta:       decision.AwardedXP,
			DailyXP:       decision.NewDailyXP,
			Streak:        newStreak,
			LastWorkoutAt: now,
		})
		if err != nil {
			return err
		}
		newXP = total
		return nil
	}); err != nil {
		return nil, fmt.Errorf("apply award: %w", err)
	}

	newLevel := xp.LevelForXP(newXP)
	leveledUp := newLevel > profile.Level
	if newLevel != profile.Level {
		if err := c.withRetry(ctx, func() error {
			return c.profiles.UpdateLevel(ctx, userID, newLevel)
		}); err != nil {
			return nil, fmt.Errorf("update level: %w", err)
		}
	}

	result := &Result{
		FinalXP:     decision.AwardedXP,
		NewXP:       newXP,
		NewLevel:    newLevel,
		LeveledUp:   leveledUp,
		NewStreak:   newStreak,
		StreakSaved: streakSaved,
		Breakdown: Breakdown{
			Base:           components,
			StreakBonus:    streakBonus,
			ClassBonus:     classBonus,
			RecordBonus:    components.PRBonus,
			WeeklyBonus:    weeklyBonus,
			MonthlyBonus:   monthlyBonus,
			BonusDetails:   classLines,
			TotalBeforeCap: cappable + components.PRBonus,
			Capped:         decision.Capped,
			PowerDay:       powerDay,
		},
	}

	c.notify(ctx, userID, result)

	return result, nil
}

func (c *Coordinator) withRetry(ctx context.Context, op func() error) error {
	return retry.Do(ctx, c.retryPolicy, op)
}

// nextStreak computes the streak including today's workout. A missed
// single day can be rescued by a class streak preserver; a longer gap
// always resets.
func (c *Coordinator) nextStreak(ctx context.Context, profile *profiles.Profile, now time.Time) (int, bool, error) {
	if profile.LastWorkoutAt == nil {
		return 1, false, nil
	}

	switch days := daysBetween(*profile.LastWorkoutAt, now); {
	case days <= 0:
		// another workout on the same calendar day
		if profile.Streak < 1 {
			return 1, false, nil
		}
		return profile.Streak, false, nil
	case days == 1:
		return profile.Streak + 1, false, nil
	case days == 2 && profile.HasClass():
		kept, fired, err := c.resolver.PreserveStreak(ctx, profile.ID, profile.Class, profile.Streak)
		if err != nil {
			return 0, false, err
		}
		if fired {
			return kept + 1, true, nil
		}
		return 1, false, nil
	default:
		return 1, false, nil
	}
}

func (c *Coordinator) completionBonuses(ctx context.Context, userID string, now time.Time) (weekly int, monthly int, err error) {
	var weekCount, monthCount int
	if err := c.withRetry(ctx, func() error {
		count, err := c.workouts.CompletedCount(ctx, userID, startOfWeek(now), now)
		if err != nil {
			return err
		}
		weekCount = count
		return nil
	}); err != nil {
		return 0, 0, fmt.Errorf("weekly count: %w", err)
	}
	if err := c.withRetry(ctx, func() error {
		count, err := c.workouts.CompletedCount(ctx, userID, startOfMonth(now), now)
		if err != nil {
			return err
		}
		monthCount = count
		return nil
	}); err != nil {
		return 0, 0, fmt.Errorf("monthly count: %w", err)
	}

	if weekCount >= weeklyBonusCount {
		weekly = weeklyBonusXP
	}
	if monthCount >= monthlyBonusCount {
		monthly = monthlyBonusXP
	}
	return weekly, monthly, nil
}

// tryPowerDay checks eligibility and claims a Power Day slot. The slot
// insert is keyed on (user, week, ordinal), so two concurrent workouts
// cannot claim the same slot twice.
func (c *Coordinator) tryPowerDay(ctx context.Context, userID string, now time.Time, currentDailyXP, cappableXP int) (bool, error) {
	if currentDailyXP+cappableXP <= xp.DailyXPCap {
		return false, nil
	}

	var todayCount int
	if err := c.withRetry(ctx, func() error {
		count, err := c.workouts.CompletedCount(ctx, userID, startOfDay(now), now)
		if err != nil {
			return err
		}
		todayCount = count
		return nil
	}); err != nil {
		return false, fmt.Errorf("today's count: %w", err)
	}
	if todayCount < powerDayMinWorkout {
		return false, nil
	}

	isoYear, isoWeek := now.ISOWeek()

	var used int
	if err := c.withRetry(ctx, func() error {
		count, err := c.powerDays.UsageCount(ctx, userID, isoYear, isoWeek)
		if err != nil {
			return err
		}
		used = count
		return nil
	}); err != nil {
		return false, fmt.Errorf("usage count: %w", err)
	}
	if used >= powerDaysPerWeek {
		return false, nil
	}

	var claimed bool
	if err := c.withRetry(ctx, func() error {
		inserted, err := c.powerDays.InsertUsage(ctx, userID, isoYear, isoWeek, used+1)
		if err != nil {
			return err
		}
		claimed = inserted
		return nil
	}); err != nil {
		return false, fmt.Errorf("insert usage: %w", err)
	}

	return claimed, nil
}

func (c *Coordinator) notify(ctx context.Context, userID string, result *Result) {
	if c.notifier == nil {
		return
	}

	err := c.notifier.Notify(ctx, notifications.Event{
		UserID: userID,
		Type:   notifications.EventXPAwarded,
		Payload: map[string]string{
			"finalXp":  strconv.Itoa(result.FinalXP),
			"capped":   strconv.FormatBool(result.Breakdown.Capped),
			"powerDay": strconv.FormatBool(result.Breakdown.PowerDay),
		},
	})
	if err != nil {
		log.Errorf("notify xp awarded for user %s: %s", userID, err)
	}

	if !result.LeveledUp {
		return
	}
	err = c.notifier.Notify(ctx, notifications.Event{
		UserID: userID,
		Type:   notifications.EventLevelUp,
		Payload: map[string]string{
			"newLevel": strconv.Itoa(result.NewLevel),
		},
	})
	if err != nil {
		log.Errorf("notify level up for user %s: %s", userID, err)
	}
}

// ValidateFacts rejects workout facts that must never reach storage or
// the award computation: negative durations, unknown difficulties or
// exercise types, nameless exercises and negative set values.
func ValidateFacts(facts xp.WorkoutFacts) error {
	if facts.DurationSeconds < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidWorkoutFacts)
	}
	if !facts.Difficulty.IsValid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidWorkoutFacts, facts.Difficulty)
	}
	for _, exercise := range facts.Exercises {
		if exercise.Name == "" {
			return fmt.Errorf("%w: exercise without a name", ErrInvalidWorkoutFacts)
		}
		if !exercise.Type.IsValid() {
			return fmt.Errorf("%w: unknown exercise type %q", ErrInvalidWorkoutFacts, exercise.Type)
		}
		for _, set := range exercise.Sets {
			if set.Reps < 0 || set.Kilos < 0 {
				return fmt.Errorf("%w: negative set values", ErrInvalidWorkoutFacts)
			}
		}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek is Monday-aligned.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days, not 24h spans: a midnight DST
// switch makes a day 23 or 25 hours long and a duration division
// would miscount it.
func daysBetween(from, to time.Time) int {
	y1, m1, d1 := from.In(to.Location()).Date()
	y2, m2, d2 := to.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
