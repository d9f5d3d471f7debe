package dto

import (
	"database/sql"
	"time"

	"arthive/internal/domains/exhibition/model"
	"arthive/shared"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	gModel "arthive/shared/model"
	"arthive/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SearchExhibitionsRequest carries the public search parameters. Absent
// fields contribute no predicate; date bounds are parsed and validated by the
// handler before the request reaches the service.
type SearchExhibitionsRequest struct {
	City      string
	Country   string
	Category  string
	Artist    string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// ToFilterGroup translates the request into store predicates. Only active
// exhibitions are visible; a date range matches by inclusive overlap, not
// containment.
func (r *SearchExhibitionsRequest) ToFilterGroup() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	if r.City != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorLike,
			Value:    r.City,
			Table:    model.TableName,
		})
	}

	if r.Country != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCountry,
			Operator: gDto.FilterOperatorLike,
			Value:    r.Country,
			Table:    model.TableName,
		})
	}

	if r.Category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategories,
			Operator: gDto.FilterOperatorAnyLike,
			Value:    r.Category,
			Table:    model.TableName,
		})
	}

	if r.Artist != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldArtists,
			Operator: gDto.FilterOperatorAnyLike,
			Value:    r.Artist,
			Table:    model.TableName,
		})
	}

	if r.Search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSearchVector,
			Operator: gDto.FilterOperatorText,
			Value:    r.Search,
			Table:    model.TableName,
			ArgName:  constant.RequestParamSearch,
		})
	}

	if r.StartDate != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEndDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *r.StartDate,
			Table:    model.TableName,
			ArgName:  "range_start",
		})
	}

	if r.EndDate != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStartDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    *r.EndDate,
			Table:    model.TableName,
			ArgName:  "range_end",
		})
	}

	return filterGroup
}

type VenueSummary struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

type ExhibitionResponse struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	CoverImage   string        `json:"cover_image,omitempty"`
	Images       []string      `json:"images,omitempty"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	LocationName string        `json:"location_name,omitempty"`
	Address      string        `json:"address,omitempty"`
	City         string        `json:"city,omitempty"`
	Country      string        `json:"country,omitempty"`
	Latitude     *float64      `json:"latitude,omitempty"`
	Longitude    *float64      `json:"longitude,omitempty"`
	Categories   []string      `json:"categories,omitempty"`
	Artists      []string      `json:"artists,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	TicketPrice  *float64      `json:"ticket_price,omitempty"`
	TicketURL    string        `json:"ticket_url,omitempty"`
	WebsiteURL   string        `json:"website_url,omitempty"`
	Popularity   int           `json:"popularity"`
	Featured     bool          `json:"featured"`
	Active       bool          `json:"active"`
	Venue        *VenueSummary `json:"venue,omitempty"`
	DistanceKm   *float64      `json:"distance_km,omitempty"`
	gDto.Metadata
}

func (r *ExhibitionResponse) FromModel(mod model.Exhibition) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Description = mod.Description
	r.CoverImage = mod.CoverImage
	r.Images = mod.Images
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.LocationName = mod.LocationName
	r.Address = mod.Address
	r.City = mod.City
	r.Country = mod.Country
	r.Categories = mod.Categories
	r.Artists = mod.Artists
	r.Tags = mod.Tags
	r.TicketURL = mod.TicketURL
	r.WebsiteURL = mod.WebsiteURL
	r.Popularity = mod.Popularity
	r.Featured = mod.Featured
	r.Active = mod.Active

	if mod.Latitude.Valid {
		r.Latitude = &mod.Latitude.Float64
	}

	if mod.Longitude.Valid {
		r.Longitude = &mod.Longitude.Float64
	}

	if mod.TicketPrice.Valid {
		r.TicketPrice = &mod.TicketPrice.Float64
	}

	if mod.VenueID.Valid {
		r.Venue = &VenueSummary{
			ID:      mod.VenueID.String,
			Name:    mod.VenueName.String,
			Address: mod.VenueAddress.String,
			Website: mod.VenueWebsite.String,
		}
	}

	r.Metadata.FromModel(mod.Metadata)
}

type FilterOptions struct {
	Cities     []string `json:"cities"`
	Countries  []string `json:"countries"`
	Categories []string `json:"categories"`
}

type SearchExhibitionsResponse struct {
	Exhibitions   []ExhibitionResponse `json:"exhibitions"`
	TotalData     int                  `json:"total_data"`
	TotalPage     int                  `json:"total_page"`
	FilterOptions *FilterOptions       `json:"filter_options,omitempty"`
}

func (r *SearchExhibitionsResponse) FromModels(models []model.Exhibition, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Exhibitions = make([]ExhibitionResponse, len(models))
	for i, mod := range models {
		r.Exhibitions[i].FromModel(mod)
	}
}

type NearbyExhibitionsResponse struct {
	Exhibitions []ExhibitionResponse `json:"exhibitions"`
	TotalData   int                  `json:"total_data"`
	// RadiusKm is the radius actually applied, defaults included. The
	// handler echoes it in meta rather than in the payload.
	RadiusKm float64 `json:"-"`
}

type RecommendationsResponse struct {
	Exhibitions    []ExhibitionResponse `json:"exhibitions"`
	HasPreferences bool                 `json:"has_preferences"`
}

type CreateExhibitionRequest struct {
	Title        string   `json:"title"         validate:"required,max=200"`
	Description  string   `json:"description"   validate:"omitempty,max=5000"`
	CoverImage   string   `json:"cover_image"   validate:"omitempty"`
	Images       []string `json:"images"        validate:"omitempty,dive,url"`
	StartDate    string   `json:"start_date"    validate:"required"`
	EndDate      string   `json:"end_date"      validate:"required"`
	VenueID      string   `json:"venue_id"      validate:"omitempty,uuid"`
	LocationName string   `json:"location_name" validate:"omitempty,max=200"`
	Address      string   `json:"address"       validate:"omitempty,max=300"`
	City         string   `json:"city"          validate:"omitempty,max=100"`
	Country      string   `json:"country"       validate:"omitempty,max=100"`
	Latitude     *float64 `json:"latitude"      validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude"     validate:"omitempty,longitude"`
	Categories   []string `json:"categories"    validate:"omitempty,dive,max=100"`
	Artists      []string `json:"artists"       validate:"omitempty,dive,max=200"`
	Tags         []string `json:"tags"          validate:"omitempty,dive,max=100"`
	TicketPrice  *float64 `json:"ticket_price"  validate:"omitempty,gte=0"`
	TicketURL    string   `json:"ticket_url"    validate:"omitempty,url"`
	WebsiteURL   string   `json:"website_url"   validate:"omitempty,url"`
	Featured     *bool    `json:"featured"      validate:"omitempty"`
	Active       *bool    `json:"active"        validate:"omitempty"`
}

func (c *CreateExhibitionRequest) ToModel(user, coverImageURL string, startDate, endDate time.Time) model.Exhibition {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	featured := false
	if c.Featured != nil {
		featured = *c.Featured
	}

	mod := model.Exhibition{
		ID:           uuid.NewString(),
		Title:        c.Title,
		Description:  c.Description,
		CoverImage:   coverImageURL,
		Images:       pq.StringArray(c.Images),
		StartDate:    startDate,
		EndDate:      endDate,
		LocationName: c.LocationName,
		Address:      c.Address,
		City:         c.City,
		Country:      c.Country,
		Categories:   pq.StringArray(c.Categories),
		Artists:      pq.StringArray(c.Artists),
		Tags:         pq.StringArray(c.Tags),
		TicketURL:    c.TicketURL,
		WebsiteURL:   c.WebsiteURL,
		Featured:     featured,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if c.VenueID != "" {
		mod.VenueID = sql.NullString{String: c.VenueID, Valid: true}
	}

	if c.Latitude != nil {
		mod.Latitude = sql.NullFloat64{Float64: *c.Latitude, Valid: true}
	}

	if c.Longitude != nil {
		mod.Longitude = sql.NullFloat64{Float64: *c.Longitude, Valid: true}
	}

	if c.TicketPrice != nil {
		mod.TicketPrice = sql.NullFloat64{Float64: *c.TicketPrice, Valid: true}
	}

	return mod
}

type UpdateExhibitionRequest struct {
	Title        string   `db:"title"         json:"title"         validate:"omitempty,max=200"`
	Description  string   `db:"description"   json:"description"   validate:"omitempty,max=5000"`
	CoverImage   string   `json:"cover_image"  validate:"omitempty"`
	Images       []string `db:"images"        json:"images"        validate:"omitempty,dive,url"`
	StartDate    string   `json:"start_date"   validate:"omitempty"`
	EndDate      string   `json:"end_date"     validate:"omitempty"`
	VenueID      string   `db:"venue_id"      json:"venue_id"      validate:"omitempty,uuid"`
	LocationName string   `db:"location_name" json:"location_name" validate:"omitempty,max=200"`
	Address      string   `db:"address"       json:"address"       validate:"omitempty,max=300"`
	City         string   `db:"city"          json:"city"          validate:"omitempty,max=100"`
	Country      string   `db:"country"       json:"country"       validate:"omitempty,max=100"`
	Latitude     *float64 `db:"latitude"      json:"latitude"      validate:"omitempty,latitude"`
	Longitude    *float64 `db:"longitude"     json:"longitude"     validate:"omitempty,longitude"`
	Categories   []string `db:"categories"    json:"categories"    validate:"omitempty,dive,max=100"`
	Artists      []string `db:"artists"       json:"artists"       validate:"omitempty,dive,max=200"`
	Tags         []string `db:"tags"          json:"tags"          validate:"omitempty,dive,max=100"`
	TicketPrice  *float64 `db:"ticket_price"  json:"ticket_price"  validate:"omitempty,gte=0"`
	TicketURL    string   `db:"ticket_url"    json:"ticket_url"    validate:"omitempty,url"`
	WebsiteURL   string   `db:"website_url"   json:"website_url"   validate:"omitempty,url"`
	Popularity   *int     `db:"popularity"    json:"popularity"    validate:"omitempty,gte=0"`
	Featured     *bool    `db:"featured"      json:"featured"      validate:"omitempty"`
	Active       *bool    `db:"active"        json:"active"        validate:"omitempty"`
}
