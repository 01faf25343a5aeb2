package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ironquest/backend/internal/telemetry/tracing"
	"github.com/ironquest/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=notifications_test

type eventsLister interface {
	List(ctx context.Context, userID string, params ListParams) ([]Event, error)
}

type ListEventsResponse struct {
	Events []Event `json:"events"`
}

type Handler struct {
	repo eventsLister
}

func NewHandler(repo eventsLister) *Handler {
	return &Handler{
		repo: repo,
	}
}

// HandleList serves a user's progression feed, newest first. Optional
// query params: type, from, to (RFC 3339), page, size.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.list")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	var params ListParams
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		eventType := EventType(typeStr)
		if !eventType.IsValid() {
			http.Error(w, "invalid event type", http.StatusBadRequest)
			return
		}
		params.Type = &eventType
	}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid from timestamp", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid to timestamp", http.StatusBadRequest)
			return
		}
		params.To = &to
	}
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

	events, err := handler.repo.List(ctx, userID, params)
	if err != nil {
		log.Errorf("failed to list events for user %s: %s", userID, err)
		http.Error(w, "error, failed to list events", http.StatusInternalServerError)
		return
	}

	eventsJson, err := json.Marshal(ListEventsResponse{Events: events})
	if err != nil {
		log.Errorf("failed to marshal events for user %s: %s", userID, err)
		http.Error(w, "error, failed to list events", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, eventsJson)
}
