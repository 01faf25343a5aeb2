package achievements

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ironquest/backend/internal/telemetry/tracing"
	"github.com/ironquest/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=achievements_test

type unlockedLister interface {
	ListUnlocked(ctx context.Context, userID string) ([]Unlocked, error)
	GetProgress(ctx context.Context, userID string) ([]Progress, error)
}

// UserAchievementsResponse pairs the unlocked achievements with the
// per-achievement progress towards the rest.
type UserAchievementsResponse struct {
	Unlocked []Unlocked `json:"unlocked"`
	Progress []Progress `json:"progress"`
}

type Handler struct {
	repo unlockedLister
}

func NewHandler(repo unlockedLister) *Handler {
	return &Handler{
		repo: repo,
	}
}

// HandleCatalog serves the full achievement catalog. The catalog is
// static, clients cache it freely.
func (handler *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.catalog")
	defer span.End()

	catalogJson, err := json.Marshal(Catalog())
	if err != nil {
		log.Errorf("failed to marshal achievement catalog: %s", err)
		http.Error(w, "error, failed to get catalog", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, catalogJson)
}

func (handler *Handler) HandleForUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.forUser")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	unlocked, err := handler.repo.ListUnlocked(ctx, userID)
	if err != nil {
		log.Errorf("failed to list unlocked achievements for %s: %s", userID, err)
		http.Error(w, "error, failed to get achievements", http.StatusInternalServerError)
		return
	}

	progress, err := handler.repo.GetProgress(ctx, userID)
	if err != nil {
		log.Errorf("failed to get achievement progress for %s: %s", userID, err)
		http.Error(w, "error, failed to get achievements", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UserAchievementsResponse{
		Unlocked: unlocked,
		Progress: progress,
	})
	if err != nil {
		log.Errorf("failed to marshal achievements for %s: %s", userID, err)
		http.Error(w, "error, failed to get achievements", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
