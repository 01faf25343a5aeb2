package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ironquest/backend/internal/cache"
	"github.com/ironquest/backend/internal/progression/classes"
	"github.com/ironquest/backend/internal/progression/rank"
	"github.com/ironquest/backend/internal/progression/xp"
	"github.com/ironquest/backend/internal/telemetry/tracing"
	"github.com/ironquest/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profiles_test

type profileStore interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Create(ctx context.Context, userID, username string) (*Profile, error)
	SetClass(ctx context.Context, userID string, classID classes.ID) error
}

type CreateProfileRequest struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type SetClassRequest struct {
	Class classes.ID `json:"class"`
}

// ProfileResponse is the profile plus the derived numbers clients
// render next to it.
type ProfileResponse struct {
	Profile       Profile   `json:"profile"`
	XPToNextLevel int       `json:"xpToNextLevel"`
	RankScore     float64   `json:"rankScore"`
	Rank          rank.Tier `json:"rank"`
}

type ClassInfo struct {
	ID          classes.ID      `json:"id"`
	Name        string          `json:"name"`
	FavoredType xp.ExerciseType `json:"favoredType"`
}

type Handler struct {
	repo     profileStore
	registry *classes.Registry
	cache    cache.Cache
}

func NewHandler(repo profileStore, registry *classes.Registry, cache cache.Cache) *Handler {
	return &Handler{
		repo:     repo,
		registry: registry,
		cache:    cache,
	}
}

// CacheKey is the cache key of one user's marshalled profile response.
// Every write path that changes the profile must Del this key.
func CacheKey(userID string) string {
	return fmt.Sprintf("profile::%s", userID)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.get")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	cacheKey := CacheKey(userID)
	if cached, ok := handler.cache.Get(cacheKey); ok {
		span.SetAttributes(tracing.CacheHitAttr(true))
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	profile, err := handler.repo.Get(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get profile %s: %s", userID, err)
		http.Error(w, "error, failed to get profile", http.StatusInternalServerError)
		return
	}

	tier, score := rank.Calculate(profile.Level, profile.AchievementPoints)
	respJson, err := json.Marshal(ProfileResponse{
		Profile:       *profile,
		XPToNextLevel: xp.XPToNextLevel(profile.XP),
		RankScore:     score,
		Rank:          tier,
	})
	if err != nil {
		log.Errorf("failed to marshal profile %s: %s", userID, err)
		http.Error(w, "error, failed to get profile", http.StatusInternalServerError)
		return
	}

	handler.cache.Set(cacheKey, respJson)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create profile, unmarshal json params: %s", err)
		http.Error(w, "create profile failed", http.StatusBadRequest)
		return
	}
	if req.ID == "" || req.Username == "" {
		http.Error(w, "error, id and username required", http.StatusBadRequest)
		return
	}

	profile, err := handler.repo.Create(ctx, req.ID, req.Username)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "error, profile already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to create profile %s: %s", req.ID, err)
		http.Error(w, "error, failed to create profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("failed to marshal profile %s: %s", req.ID, err)
		http.Error(w, "error, failed to create profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusCreated)
}

func (handler *Handler) HandleSetClass(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.setClass")
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

	var req SetClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set class, unmarshal json params: %s", err)
		http.Error(w, "set class failed", http.StatusBadRequest)
		return
	}

	if _, err := handler.registry.Get(req.Class); err != nil {
		http.Error(w, "unknown class", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetClass(ctx, userID, req.Class); err != nil {
		log.Errorf("failed to set class for %s: %s", userID, err)
		http.Error(w, "error, failed to set class", http.StatusInternalServerError)
		return
	}

	handler.cache.Del(CacheKey(userID))
	pkg.WriteTextResponseOK(w, "class updated")
}

// HandleListClasses returns the classes a user can pick from.
func (handler *Handler) HandleListClasses(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.listClasses")
	defer span.End()

	all := handler.registry.All()
	infos := make([]ClassInfo, 0, len(all))
	for _, c := range all {
		infos = append(infos, ClassInfo{
			ID:          c.ID,
			Name:        c.Name,
			FavoredType: c.FavoredType,
		})
	}

	classesJson, err := json.Marshal(infos)
	if err != nil {
		log.Errorf("failed to marshal classes: %s", err)
		http.Error(w, "error, failed to list classes", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, classesJson)
}
