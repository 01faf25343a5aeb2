package classes

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=classes_test

type cooldownStore interface {
	LastTriggered(ctx context.Context, userID string, ability string) (time.Time, error)
	MarkTriggered(ctx context.Context, userID string, ability string, at time.Time) error
}

// Resolver looks up a user's class in the registry and collects the
// bonus line items its abilities produce for one workout.
type Resolver struct {
	registry  *Registry
	cooldowns cooldownStore
	now       func() time.Time
}

func NewResolver(registry *Registry, cooldowns cooldownStore) *Resolver {
	return &Resolver{
		registry:  registry,
		cooldowns: cooldowns,
		now:       time.Now,
	}
}

// Resolve returns the bonus lines for the given user and class. Pure
// abilities are evaluated directly; a cooldown-gated XP ability fires
// only when its window has elapsed, and firing records the trigger.
func (r *Resolver) Resolve(ctx context.Context, userID string, classID ID, bonusCtx BonusContext) ([]BonusLine, error) {
	class, err := r.registry.Get(classID)
	if err != nil {
		return nil, err
	}

	var lines []BonusLine
	for _, ability := range []PassiveAbility{class.Primary, class.Secondary} {
		if ability == nil || !ability.IsApplicable(bonusCtx) {
			continue
		}
		if line := ability.Calculate(bonusCtx); line.Amount > 0 {
			lines = append(lines, line)
		}
	}

	trigger, ok := class.Triggered.(XPTrigger)
	if !ok {
		return lines, nil
	}
	if !trigger.IsApplicable(bonusCtx) {
		return lines, nil
	}

	canFire, err := r.offCooldown(ctx, userID, trigger)
	if err != nil {
		return nil, fmt.Errorf("check cooldown for %s: %w", trigger.Name(), err)
	}
	if !canFire {
		return lines, nil
	}

	if err := r.cooldowns.MarkTriggered(ctx, userID, trigger.Name(), r.now()); err != nil {
		return nil, fmt.Errorf("mark %s triggered: %w", trigger.Name(), err)
	}
	lines = append(lines, trigger.Bonus(bonusCtx))

	return lines, nil
}

// PreserveStreak applies the class's streak-saving ability, if it has
// one and it is off cooldown. It returns the streak to keep and whether
// the ability fired; when it did not fire the input streak is returned
// unchanged.
func (r *Resolver) PreserveStreak(ctx context.Context, userID string, classID ID, streak int) (int, bool, error) {
	class, err := r.registry.Get(classID)
	if err != nil {
		return streak, false, err
	}

	preserver, ok := class.Triggered.(StreakPreserver)
	if !ok {
		return streak, false, nil
	}

	canFire, err := r.offCooldown(ctx, userID, preserver)
	if err != nil {
		return streak, false, fmt.Errorf("check cooldown for %s: %w", preserver.Name(), err)
	}
	if !canFire {
		return streak, false, nil
	}

	if err := r.cooldowns.MarkTriggered(ctx, userID, preserver.Name(), r.now()); err != nil {
		return streak, false, fmt.Errorf("mark %s triggered: %w", preserver.Name(), err)
	}

	kept := preserver.Preserve(streak)
	log.Debugf("user %s: %s preserved streak %d -> %d", userID, preserver.Name(), streak, kept)
	return kept, true, nil
}

func (r *Resolver) offCooldown(ctx context.Context, userID string, ability TriggeredAbility) (bool, error) {
	lastTriggeredAt, err := r.cooldowns.LastTriggered(ctx, userID, ability.Name())
	if errors.Is(err, ErrNeverTriggered) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return r.now().Sub(lastTriggeredAt) >= ability.Cooldown(), nil
}
