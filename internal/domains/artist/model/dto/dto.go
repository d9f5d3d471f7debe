package dto

import (
	"arthive/internal/domains/artist/model"
	"arthive/shared"
	gDto "arthive/shared/dto"
	gModel "arthive/shared/model"
	"arthive/shared/timezone"

	"github.com/google/uuid"
)

type CreateArtistRequest struct {
	Name       string `json:"name"        validate:"required,max=200"`
	Bio        string `json:"bio"         validate:"omitempty,max=5000"`
	WebsiteURL string `json:"website_url" validate:"omitempty,url"`
}

func (c *CreateArtistRequest) ToModel(user string) model.Artist {
	return model.Artist{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Bio:        c.Bio,
		WebsiteURL: c.WebsiteURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateArtistRequest struct {
	Name       string `db:"name"        json:"name"        validate:"omitempty,max=200"`
	Bio        string `db:"bio"         json:"bio"         validate:"omitempty,max=5000"`
	WebsiteURL string `db:"website_url" json:"website_url" validate:"omitempty,url"`
}

type ArtistResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Bio        string `json:"bio,omitempty"`
	WebsiteURL string `json:"website_url,omitempty"`
	gDto.Metadata
}

func (r *ArtistResponse) FromModel(mod model.Artist) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Bio = mod.Bio
	r.WebsiteURL = mod.WebsiteURL
	r.Metadata.FromModel(mod.Metadata)
}

type GetArtistsResponse struct {
	Artists   []ArtistResponse `json:"artists"`
	TotalData int              `json:"total_data"`
	TotalPage int              `json:"total_page"`
}

func (r *GetArtistsResponse) FromModels(models []model.Artist, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Artists = make([]ArtistResponse, len(models))
	for i, mod := range models {
		r.Artists[i].FromModel(mod)
	}
}
