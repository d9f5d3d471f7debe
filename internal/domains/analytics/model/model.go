package model

import (
	"database/sql"

	"arthive/shared/model"
)

const (
	TableName  = "analytics_events"
	EntityName = "analytics_event"

	FieldID           = "id"
	FieldEventType    = "event_type"
	FieldPath         = "path"
	FieldExhibitionID = "exhibition_id"
	FieldVisitorID    = "visitor_id"
	FieldReferrer     = "referrer"
	FieldUserAgent    = "user_agent"
	FieldMetadata     = "metadata"
)

type Event struct {
	ID           string         `db:"id"`
	EventType    string         `db:"event_type"`
	Path         string         `db:"path"`
	ExhibitionID sql.NullString `db:"exhibition_id"`
	VisitorID    string         `db:"visitor_id"`
	Referrer     string         `db:"referrer"`
	UserAgent    string         `db:"user_agent"`
	Payload      []byte         `db:"metadata"`
	model.Metadata
}
