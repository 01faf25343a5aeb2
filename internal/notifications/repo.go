package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ironquest/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ListParams struct {
	Type *EventType
	From *time.Time
	To   *time.Time
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Notify persists the event so the feed survives restarts. Implements
// the Notifier interface.
func (r *Repo) Notify(ctx context.Context, event Event) error {
	_, err := r.Add(ctx, event)
	return err
}

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payloadJson, err := json.Marshal(event.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO progression_event (user_id, type, payload, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		event.UserID,
		event.Type,
		payloadJson,
		event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *Repo) List(ctx context.Context, userID string, params ListParams) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	args := []interface{}{userID}
	query := `
		SELECT id, user_id, type, payload, created_at
		FROM progression_event
		WHERE user_id = $1`
	argCount := 1
	if params.Type != nil {
		argCount++
		query += fmt.Sprintf(" AND type = $%d", argCount)
		args = append(args, *params.Type)
	}
	if params.From != nil {
		argCount++
		query += fmt.Sprintf(" AND created_at >= $%d", argCount)
		args = append(args, *params.From)
	}
	if params.To != nil {
		argCount++
		query += fmt.Sprintf(" AND created_at <= $%d", argCount)
		args = append(args, *params.To)
	}

	query += " ORDER BY created_at DESC"
	if params.Size > 0 {
		page := params.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
		args = append(args, params.Size, (page-1)*params.Size)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var event Event
		var payloadJson []byte
		if err := rows.Scan(&event.ID, &event.UserID, &event.Type, &payloadJson, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if len(payloadJson) > 0 {
			if err := json.Unmarshal(payloadJson, &event.Payload); err != nil {
				return nil, fmt.Errorf("unmarshal payload: %w", err)
			}
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
