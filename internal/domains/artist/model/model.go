package model

import "arthive/shared/model"

const (
	TableName  = "artists"
	EntityName = "artist"

	FieldID         = "id"
	FieldName       = "name"
	FieldBio        = "bio"
	FieldWebsiteURL = "website_url"
)

type Artist struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Bio        string `db:"bio"`
	WebsiteURL string `db:"website_url"`
	model.Metadata
}
