package award

import (
	"context"
	"time"

	"github.com/ironquest/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PowerDayRepo tracks Power Day usage per user and ISO week. Slots are
// keyed on (user, year, week, ordinal) so a slot can be claimed once.
type PowerDayRepo struct {
	db *pgxpool.Pool
}

func NewPowerDayRepo(db *pgxpool.Pool) *PowerDayRepo {
	return &PowerDayRepo{
		db: db,
	}
}

func (r *PowerDayRepo) UsageCount(ctx context.Context, userID string, isoYear, isoWeek int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.powerday.usageCount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM power_day_usage
		WHERE user_id = $1 AND year = $2 AND week = $3;`,
		userID, isoYear, isoWeek,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// InsertUsage claims one Power Day slot. It reports whether this call
// got the slot; losing the race to a concurrent workout is not an error.
func (r *PowerDayRepo) InsertUsage(ctx context.Context, userID string, isoYear, isoWeek, ordinal int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.powerday.insertUsage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		INSERT INTO power_day_usage (user_id, year, week, ordinal, used_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, year, week, ordinal) DO NOTHING;`,
		userID, isoYear, isoWeek, ordinal, time.Now(),
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}
