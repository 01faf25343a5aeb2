package profiles

import (
	"context"
	"errors"
	"time"

	"github.com/ironquest/backend/internal/progression/classes"
	"github.com/ironquest/backend/internal/progression/rank"
	"github.com/ironquest/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const profileColumns = `
	id, username, xp, level, streak, daily_xp, workouts_count, records_count,
	last_workout_at, class, achievements_count, achievement_points, rank, created_at`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	var class *string
	err := row.Scan(
		&p.ID, &p.Username, &p.XP, &p.Level, &p.Streak, &p.DailyXP,
		&p.WorkoutsCount, &p.RecordsCount, &p.LastWorkoutAt, &class,
		&p.AchievementsCount, &p.AchievementPoints, &p.Rank, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	if class != nil {
		p.Class = classes.ID(*class)
	}
	return &p, nil
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profile WHERE id = $1;`, userID,
	))
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profile WHERE username = $1;`, username,
	))
}

func (r *Repo) Create(ctx context.Context, userID, username string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanProfile(r.db.QueryRow(ctx, `
		INSERT INTO user_profile (id, username, level, rank, created_at)
		VALUES ($1, $2, 1, $3, $4)
		RETURNING `+profileColumns+`;`,
		userID, username, rank.TierUnranked, time.Now(),
	))
}

// AwardParams carries the state written after one XP award.
type AwardParams struct {
	UserID        string
	XPDelta       int
	DailyXP       int
	Streak        int
	LastWorkoutAt time.Time
}

// ApplyAward applies one award as a server-side increment and returns
// the new XP total, so concurrent awards both land instead of one
// overwriting the other.
func (r *Repo) ApplyAward(ctx context.Context, params AwardParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.applyAward")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var newXP int
	err = r.db.QueryRow(ctx, `
		UPDATE user_profile SET
			xp = xp + $2,
			daily_xp = $3,
			streak = $4,
			workouts_count = workouts_count + 1,
			last_workout_at = $5
		WHERE id = $1
		RETURNING xp;`,
		params.UserID, params.XPDelta, params.DailyXP, params.Streak, params.LastWorkoutAt,
	).Scan(&newXP)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrProfileNotFound
	}
	if err != nil {
		return 0, err
	}

	return newXP, nil
}

func (r *Repo) UpdateLevel(ctx context.Context, userID string, level int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.updateLevel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx,
		`UPDATE user_profile SET level = $2 WHERE id = $1 AND level <> $2;`,
		userID, level,
	)
	return err
}

// CreditAchievement books the points and XP reward of one unlocked
// achievement, again as server-side increments.
func (r *Repo) CreditAchievement(ctx context.Context, userID string, points, xpReward int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.creditAchievement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		UPDATE user_profile SET
			achievements_count = achievements_count + 1,
			achievement_points = achievement_points + $2,
			xp = xp + $3
		WHERE id = $1;`,
		userID, points, xpReward,
	)
	return err
}

func (r *Repo) IncrementRecordsCount(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.incrementRecordsCount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx,
		`UPDATE user_profile SET records_count = records_count + 1 WHERE id = $1;`,
		userID,
	)
	return err
}

// UpdateRank writes the tier only when it changed, so an unchanged
// rank is a true no-op.
func (r *Repo) UpdateRank(ctx context.Context, userID string, tier rank.Tier) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.updateRank")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx,
		`UPDATE user_profile SET rank = $2 WHERE id = $1 AND rank <> $2;`,
		userID, tier,
	)
	return err
}

func (r *Repo) SetClass(ctx context.Context, userID string, classID classes.ID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.setClass")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx,
		`UPDATE user_profile SET class = $2 WHERE id = $1;`,
		userID, classID,
	)
	return err
}
