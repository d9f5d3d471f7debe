package model

import "arthive/shared/model"

const (
	TableName  = "newsletter_subscribers"
	EntityName = "newsletter_subscriber"

	FieldID    = "id"
	FieldEmail = "email"
)

type Subscriber struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	model.Metadata
}
