package workouts

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ironquest/backend/internal/progression/award"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	MaxKilos(ctx context.Context, userID, exerciseName string) (float64, error)
}

// Service completes workouts: it detects personal records against the
// user's history and persists the session.
type Service struct {
	repo workoutsRepo
}

func NewService(repo workoutsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Complete stamps, checks for personal records and stores the workout.
// Facts are validated up front: a workout the award coordinator would
// reject must never be persisted, or it would inflate the completion
// counts behind weekly, monthly and power day checks.
// The workout is persisted before any XP is awarded, so progression
// counts already include it.
func (s *Service) Complete(ctx context.Context, workout Workout) (*Workout, error) {
	if err := award.ValidateFacts(workout.Facts()); err != nil {
		return nil, err
	}

	if workout.CompletedAt.IsZero() {
		workout.CompletedAt = time.Now()
	}
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	isRecord, err := s.detectPersonalRecord(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("detect personal record: %w", err)
	}
	workout.HasPersonalRecord = isRecord

	added, err := s.repo.Add(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}

	return added, nil
}

// detectPersonalRecord compares each exercise's heaviest completed set
// with the user's history. Only a strictly heavier set counts, and
// bodyweight sets never do.
func (s *Service) detectPersonalRecord(ctx context.Context, workout Workout) (bool, error) {
	for _, exercise := range workout.Exercises {
		best := maxCompletedKilos(exercise)
		if best <= 0 {
			continue
		}

		previousBest, err := s.repo.MaxKilos(ctx, workout.UserID, exercise.Name)
		if err != nil {
			return false, err
		}
		if best > previousBest {
			log.Debugf(
				"user %s: new record on %s, %.1f kg (previous %.1f kg)",
				workout.UserID, exercise.Name, best, previousBest,
			)
			return true, nil
		}
	}
	return false, nil
}
