package dto

import (
	"arthive/internal/domains/newsletter/model"
	"arthive/shared"
	gDto "arthive/shared/dto"
	gModel "arthive/shared/model"
	"arthive/shared/timezone"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (s *SubscribeRequest) ToModel(user string) model.Subscriber {
	return model.Subscriber{
		ID:    uuid.NewString(),
		Email: s.Email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SubscriberResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	gDto.Metadata
}

func (r *SubscriberResponse) FromModel(mod model.Subscriber) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.Metadata.FromModel(mod.Metadata)
}

type GetSubscribersResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
	TotalData   int                  `json:"total_data"`
	TotalPage   int                  `json:"total_page"`
}

func (r *GetSubscribersResponse) FromModels(models []model.Subscriber, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Subscribers = make([]SubscriberResponse, len(models))
	for i, mod := range models {
		r.Subscribers[i].FromModel(mod)
	}
}

// SubscribedEvent is the payload published to the notifications topic when a
// new subscriber joins.
type SubscribedEvent struct {
	Event string `json:"event"`
	Email string `json:"email"`
}
