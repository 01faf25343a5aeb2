package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ironquest/backend/internal/cache"
	"github.com/ironquest/backend/internal/profiles"
	"github.com/ironquest/backend/internal/progression"
	"github.com/ironquest/backend/internal/progression/award"
	"github.com/ironquest/backend/internal/progression/xp"
	"github.com/ironquest/backend/internal/telemetry/tracing"
	"github.com/ironquest/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutCompleter interface {
	Complete(ctx context.Context, workout Workout) (*Workout, error)
}

type workoutReader interface {
	Get(ctx context.Context, id int) (*Workout, error)
	List(ctx context.Context, userID string, params ListParams) ([]Workout, error)
}

type progressionPipeline interface {
	OnWorkoutCompleted(ctx context.Context, userID string, facts xp.WorkoutFacts) (*progression.Outcome, error)
}

type CompleteWorkoutRequest struct {
	Difficulty      xp.Difficulty      `json:"difficulty"`
	DurationSeconds int                `json:"durationSeconds"`
	Exercises       []xp.ExerciseEntry `json:"exercises"`
}

type CompleteWorkoutResponse struct {
	Workout Workout              `json:"workout"`
	Outcome *progression.Outcome `json:"outcome"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
}

type Handler struct {
	service      workoutCompleter
	repo         workoutReader
	pipeline     progressionPipeline
	profileCache cache.Cache
}

func NewHandler(
	service workoutCompleter,
	repo workoutReader,
	pipeline progressionPipeline,
	profileCache cache.Cache,
) *Handler {
	return &Handler{
		service:      service,
		repo:         repo,
		pipeline:     pipeline,
		profileCache: profileCache,
	}
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.complete")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	var req CompleteWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("complete workout, unmarshal json params: %s", err)
		http.Error(w, "complete workout failed", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.Complete(ctx, Workout{
		UserID:          userID,
		Difficulty:      req.Difficulty,
		DurationSeconds: req.DurationSeconds,
		Exercises:       req.Exercises,
	})
	if err != nil {
		if errors.Is(err, award.ErrInvalidWorkoutFacts) {
			http.Error(w, "invalid workout", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to complete workout for user %s: %s", userID, err)
		http.Error(w, "error, failed to complete workout", http.StatusInternalServerError)
		return
	}

	outcome, err := handler.pipeline.OnWorkoutCompleted(ctx, userID, workout.Facts())
	if err != nil {
		if errors.Is(err, award.ErrInvalidWorkoutFacts) || errors.Is(err, award.ErrInvalidUserID) {
			http.Error(w, "invalid workout", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to award workout %d for user %s: %s", workout.ID, userID, err)
		http.Error(w, "error, failed to award workout", http.StatusInternalServerError)
		return
	}

	// the award changed the profile, a cached snapshot is now stale
	handler.profileCache.Del(profiles.CacheKey(userID))

	respJson, err := json.Marshal(CompleteWorkoutResponse{
		Workout: *workout,
		Outcome: outcome,
	})
	if err != nil {
		log.Errorf("failed to marshal complete workout response: %s", err)
		http.Error(w, "error, failed to complete workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, "error, failed to get workout", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout %d: %s", id, err)
		http.Error(w, "error, failed to get workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	var params ListParams
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		params.Page = page
	}
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			http.Error(w, "invalid size", http.StatusBadRequest)
			return
		}
		params.Size = size
	}

	workouts, err := handler.repo.List(ctx, userID, params)
	if err != nil {
		log.Errorf("failed to list workouts for user %s: %s", userID, err)
		http.Error(w, "error, failed to list workouts", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListResponse{Workouts: workouts})
	if err != nil {
		log.Errorf("failed to marshal workouts for user %s: %s", userID, err)
		http.Error(w, "error, failed to list workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listJson)
}
