package dto

import (
	"arthive/internal/domains/tag/model"
	gDto "arthive/shared/dto"
	gModel "arthive/shared/model"
	"arthive/shared/timezone"

	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (c *CreateTagRequest) ToModel(user string) model.Tag {
	return model.Tag{
		ID:   uuid.NewString(),
		Name: c.Name,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTagRequest struct {
	Name string `db:"name" json:"name" validate:"required,max=100"`
}

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	gDto.Metadata
}

func (r *TagResponse) FromModel(mod model.Tag) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Metadata.FromModel(mod.Metadata)
}

type GetTagsResponse struct {
	Tags      []TagResponse `json:"tags"`
	TotalData int           `json:"total_data"`
}

func (r *GetTagsResponse) FromModels(models []model.Tag, totalData int) {
	r.TotalData = totalData

	r.Tags = make([]TagResponse, len(models))
	for i, mod := range models {
		r.Tags[i].FromModel(mod)
	}
}
