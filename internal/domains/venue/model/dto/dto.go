package dto

import (
	"database/sql"

	"arthive/internal/domains/venue/model"
	"arthive/shared"
	gDto "arthive/shared/dto"
	gModel "arthive/shared/model"
	"arthive/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateVenueRequest struct {
	Name       string   `json:"name"        validate:"required,max=200"`
	Address    string   `json:"address"     validate:"omitempty,max=300"`
	City       string   `json:"city"        validate:"omitempty,max=100"`
	Country    string   `json:"country"     validate:"omitempty,max=100"`
	PostalCode string   `json:"postal_code" validate:"omitempty,max=20"`
	Latitude   *float64 `json:"latitude"    validate:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude"   validate:"omitempty,longitude"`
	ClosedDays []string `json:"closed_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	WebsiteURL string   `json:"website_url" validate:"omitempty,url"`
}

func (c *CreateVenueRequest) ToModel(user string) model.Venue {
	mod := model.Venue{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Address:    c.Address,
		City:       c.City,
		Country:    c.Country,
		PostalCode: c.PostalCode,
		ClosedDays: pq.StringArray(c.ClosedDays),
		WebsiteURL: c.WebsiteURL,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if c.Latitude != nil {
		mod.Latitude = sql.NullFloat64{Float64: *c.Latitude, Valid: true}
	}

	if c.Longitude != nil {
		mod.Longitude = sql.NullFloat64{Float64: *c.Longitude, Valid: true}
	}

	return mod
}

type UpdateVenueRequest struct {
	Name       string   `db:"name"        json:"name"        validate:"omitempty,max=200"`
	Address    string   `db:"address"     json:"address"     validate:"omitempty,max=300"`
	City       string   `db:"city"        json:"city"        validate:"omitempty,max=100"`
	Country    string   `db:"country"     json:"country"     validate:"omitempty,max=100"`
	PostalCode string   `db:"postal_code" json:"postal_code" validate:"omitempty,max=20"`
	Latitude   *float64 `db:"latitude"    json:"latitude"    validate:"omitempty,latitude"`
	Longitude  *float64 `db:"longitude"   json:"longitude"   validate:"omitempty,longitude"`
	ClosedDays []string `db:"closed_days" json:"closed_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	WebsiteURL string   `db:"website_url" json:"website_url" validate:"omitempty,url"`
	Active     *bool    `db:"active"      json:"active"      validate:"omitempty"`
}

type VenueResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	City       string   `json:"city,omitempty"`
	Country    string   `json:"country,omitempty"`
	PostalCode string   `json:"postal_code,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	ClosedDays []string `json:"closed_days,omitempty"`
	WebsiteURL string   `json:"website_url,omitempty"`
	Active     bool     `json:"active"`
	gDto.Metadata
}

func (r *VenueResponse) FromModel(mod model.Venue) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Address = mod.Address
	r.City = mod.City
	r.Country = mod.Country
	r.PostalCode = mod.PostalCode
	r.ClosedDays = mod.ClosedDays
	r.WebsiteURL = mod.WebsiteURL
	r.Active = mod.Active

	if mod.Latitude.Valid {
		r.Latitude = &mod.Latitude.Float64
	}

	if mod.Longitude.Valid {
		r.Longitude = &mod.Longitude.Float64
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetVenuesResponse struct {
	Venues    []VenueResponse `json:"venues"`
	TotalData int             `json:"total_data"`
	TotalPage int             `json:"total_page"`
}

func (r *GetVenuesResponse) FromModels(models []model.Venue, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Venues = make([]VenueResponse, len(models))
	for i, mod := range models {
		r.Venues[i].FromModel(mod)
	}
}
