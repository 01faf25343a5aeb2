package achievements

import (
	"context"
	"fmt"
	"time"

	"github.com/ironquest/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// UpsertProgress writes progress monotonically: the stored value only
// ever grows and a completed row stays completed, even when a stale
// read hands us a smaller metric.
func (r *Repo) UpsertProgress(ctx context.Context, progress Progress) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.upsertProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO achievement_progress
			(user_id, achievement_id, current_value, target_value, is_complete)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, achievement_id) DO UPDATE SET
			current_value = GREATEST(achievement_progress.current_value, EXCLUDED.current_value),
			is_complete = achievement_progress.is_complete OR EXCLUDED.is_complete
	`,
		progress.UserID,
		progress.AchievementID,
		progress.CurrentValue,
		progress.TargetValue,
		progress.IsComplete,
	)
	return err
}

func (r *Repo) GetProgress(ctx context.Context, userID string) (_ []Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.getProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, achievement_id, current_value, target_value, is_complete
		FROM achievement_progress
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []Progress
	for rows.Next() {
		var p Progress
		if err := rows.Scan(&p.UserID, &p.AchievementID, &p.CurrentValue, &p.TargetValue, &p.IsComplete); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		all = append(all, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return all, nil
}

// InsertUnlockedIfAbsent records an unlock exactly once. It reports
// whether this call created the row; a conflict with an existing row
// is success, not an error.
func (r *Repo) InsertUnlockedIfAbsent(ctx context.Context, userID, achievementID string, unlockedAt time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.insertUnlocked")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		INSERT INTO unlocked_achievement (user_id, achievement_id, unlocked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement_id) DO NOTHING
	`, userID, achievementID, unlockedAt)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repo) ListUnlocked(ctx context.Context, userID string) (_ []Unlocked, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.listUnlocked")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, achievement_id, unlocked_at
		FROM unlocked_achievement
		WHERE user_id = $1
		ORDER BY unlocked_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocked []Unlocked
	for rows.Next() {
		var u Unlocked
		if err := rows.Scan(&u.UserID, &u.AchievementID, &u.UnlockedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		unlocked = append(unlocked, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return unlocked, nil
}
