package classes

import (
	"context"
	"errors"
	"time"

	"github.com/ironquest/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNeverTriggered = errors.New("ability never triggered")

// CooldownRepo persists when a triggered ability last fired per user.
// MarkTriggered is an upsert keyed on (user_id, ability), so retried
// writes are harmless.
type CooldownRepo struct {
	db *pgxpool.Pool
}

func NewCooldownRepo(db *pgxpool.Pool) *CooldownRepo {
	return &CooldownRepo{
		db: db,
	}
}

func (r *CooldownRepo) LastTriggered(ctx context.Context, userID string, ability string) (_ time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.classes.lastTriggered")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var lastTriggeredAt time.Time
	err = r.db.QueryRow(
		ctx,
		`SELECT last_triggered_at FROM ability_cooldown WHERE user_id = $1 AND ability = $2;`,
		userID, ability,
	).Scan(&lastTriggeredAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, ErrNeverTriggered
	}
	if err != nil {
		return time.Time{}, err
	}

	return lastTriggeredAt, nil
}

func (r *CooldownRepo) MarkTriggered(ctx context.Context, userID string, ability string, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.classes.markTriggered")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO ability_cooldown (user_id, ability, last_triggered_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, ability)
			DO UPDATE SET last_triggered_at = EXCLUDED.last_triggered_at;`,
		userID, ability, at,
	)
	return err
}
