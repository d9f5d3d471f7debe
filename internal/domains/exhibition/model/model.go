package model

import (
	"database/sql"
	"time"

	"arthive/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "exhibitions"
	EntityName = "exhibition"

	VenueTableName = "venues"

	FieldID           = "id"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldCoverImage   = "cover_image"
	FieldImages       = "images"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldVenueID      = "venue_id"
	FieldLocationName = "location_name"
	FieldAddress      = "address"
	FieldCity         = "city"
	FieldCountry      = "country"
	FieldLatitude     = "latitude"
	FieldLongitude    = "longitude"
	FieldCategories   = "categories"
	FieldArtists      = "artists"
	FieldTags         = "tags"
	FieldTicketPrice  = "ticket_price"
	FieldTicketURL    = "ticket_url"
	FieldWebsiteURL   = "website_url"
	FieldPopularity   = "popularity"
	FieldFeatured     = "featured"
	FieldActive       = "active"
	FieldSearchVector = "search_vector"
)

type Exhibition struct {
	ID           string          `db:"id"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	CoverImage   string          `db:"cover_image"`
	Images       pq.StringArray  `db:"images"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	VenueID      sql.NullString  `db:"venue_id"`
	LocationName string          `db:"location_name"`
	Address      string          `db:"address"`
	City         string          `db:"city"`
	Country      string          `db:"country"`
	Latitude     sql.NullFloat64 `db:"latitude"`
	Longitude    sql.NullFloat64 `db:"longitude"`
	Categories   pq.StringArray  `db:"categories"`
	Artists      pq.StringArray  `db:"artists"`
	Tags         pq.StringArray  `db:"tags"`
	TicketPrice  sql.NullFloat64 `db:"ticket_price"`
	TicketURL    string          `db:"ticket_url"`
	WebsiteURL   string          `db:"website_url"`
	Popularity   int             `db:"popularity"`
	Featured     bool            `db:"featured"`
	Active       bool            `db:"active"`

	VenueName    sql.NullString `db:"venue_name"    table:"venues" column:"name"`
	VenueAddress sql.NullString `db:"venue_address" table:"venues" column:"address"`
	VenueWebsite sql.NullString `db:"venue_website" table:"venues" column:"website_url"`

	model.Metadata
}

// GetJoinQuery attaches the venue columns to every exhibition read.
func (Exhibition) GetJoinQuery() string {
	return "LEFT JOIN venues ON venues.id = exhibitions.venue_id"
}

// HasCoordinates reports whether the exhibition can take part in geo queries.
func (e *Exhibition) HasCoordinates() bool {
	return e.Latitude.Valid && e.Longitude.Valid
}
