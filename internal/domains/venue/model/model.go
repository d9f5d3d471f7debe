package model

import (
	"database/sql"

	"arthive/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "venues"
	EntityName = "venue"

	FieldID         = "id"
	FieldName       = "name"
	FieldAddress    = "address"
	FieldCity       = "city"
	FieldCountry    = "country"
	FieldPostalCode = "postal_code"
	FieldLatitude   = "latitude"
	FieldLongitude  = "longitude"
	FieldClosedDays = "closed_days"
	FieldWebsiteURL = "website_url"
	FieldActive     = "active"
)

type Venue struct {
	ID         string          `db:"id"`
	Name       string          `db:"name"`
	Address    string          `db:"address"`
	City       string          `db:"city"`
	Country    string          `db:"country"`
	PostalCode string          `db:"postal_code"`
	Latitude   sql.NullFloat64 `db:"latitude"`
	Longitude  sql.NullFloat64 `db:"longitude"`
	ClosedDays pq.StringArray  `db:"closed_days"`
	WebsiteURL string          `db:"website_url"`
	Active     bool            `db:"active"`
	model.Metadata
}
