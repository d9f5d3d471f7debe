package dto

import (
	"database/sql"
	"encoding/json"
	"time"

	"arthive/internal/domains/analytics/model"
	gModel "arthive/shared/model"
	"arthive/shared/timezone"

	"github.com/google/uuid"
)

type TrackEventRequest struct {
	EventType    string          `json:"event_type"    validate:"required,oneof=page_view exhibition_view search favorite share"`
	Path         string          `json:"path"          validate:"required,max=500"`
	ExhibitionID string          `json:"exhibition_id" validate:"omitempty,uuid"`
	VisitorID    string          `json:"visitor_id"    validate:"required,max=100"`
	Referrer     string          `json:"referrer"      validate:"omitempty,max=500"`
	Metadata     json.RawMessage `json:"metadata"      validate:"omitempty"`
}

func (t *TrackEventRequest) ToModel(userAgent, user string) model.Event {
	exhibitionID := sql.NullString{}
	if t.ExhibitionID != "" {
		exhibitionID = sql.NullString{String: t.ExhibitionID, Valid: true}
	}

	return model.Event{
		ID:           uuid.NewString(),
		EventType:    t.EventType,
		Path:         t.Path,
		ExhibitionID: exhibitionID,
		VisitorID:    t.VisitorID,
		Referrer:     t.Referrer,
		UserAgent:    userAgent,
		Payload:      t.Metadata,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// TrackedEvent mirrors the stored row on the analytics topic so downstream
// consumers never need database access.
type TrackedEvent struct {
	ID           string          `json:"id"`
	EventType    string          `json:"event_type"`
	Path         string          `json:"path"`
	ExhibitionID string          `json:"exhibition_id,omitempty"`
	VisitorID    string          `json:"visitor_id"`
	Referrer     string          `json:"referrer,omitempty"`
	UserAgent    string          `json:"user_agent,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	OccurredAt   string          `json:"occurred_at"`
}

func (e *TrackedEvent) FromModel(mod model.Event) {
	e.ID = mod.ID
	e.EventType = mod.EventType
	e.Path = mod.Path
	e.VisitorID = mod.VisitorID
	e.Referrer = mod.Referrer
	e.UserAgent = mod.UserAgent
	e.Metadata = mod.Payload
	e.OccurredAt = timezone.Format(mod.CreatedAt, time.RFC3339)

	if mod.ExhibitionID.Valid {
		e.ExhibitionID = mod.ExhibitionID.String
	}
}
