package model

import "arthive/shared/model"

const (
	TableName  = "tags"
	EntityName = "tag"

	FieldID   = "id"
	FieldName = "name"
)

type Tag struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}
