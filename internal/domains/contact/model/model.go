package model

import (
	"database/sql"

	"arthive/shared/model"
)

const (
	TableName  = "contact_messages"
	EntityName = "contact_message"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldSubject   = "subject"
	FieldMessage   = "message"
	FieldHandled   = "handled"
	FieldHandledAt = "handled_at"
)

type ContactMessage struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	Email     string       `db:"email"`
	Subject   string       `db:"subject"`
	Message   string       `db:"message"`
	Handled   bool         `db:"handled"`
	HandledAt sql.NullTime `db:"handled_at"`
	model.Metadata
}
