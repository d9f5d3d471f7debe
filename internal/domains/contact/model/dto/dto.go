package dto

import (
	"time"

	"arthive/internal/domains/contact/model"
	"arthive/shared"
	gDto "arthive/shared/dto"
	gModel "arthive/shared/model"
	"arthive/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactMessageRequest struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=250"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (c *CreateContactMessageRequest) ToModel(user string) model.ContactMessage {
	return model.ContactMessage{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		Subject: c.Subject,
		Message: c.Message,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ContactMessageResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Handled   bool   `json:"handled"`
	HandledAt string `json:"handled_at,omitempty"`
	gDto.Metadata
}

func (r *ContactMessageResponse) FromModel(mod model.ContactMessage) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Subject = mod.Subject
	r.Message = mod.Message
	r.Handled = mod.Handled
	r.Metadata.FromModel(mod.Metadata)

	if mod.HandledAt.Valid {
		r.HandledAt = mod.HandledAt.Time.Format(time.RFC3339)
	}
}

type GetContactMessagesResponse struct {
	Messages  []ContactMessageResponse `json:"messages"`
	TotalData int                      `json:"total_data"`
	TotalPage int                      `json:"total_page"`
}

func (r *GetContactMessagesResponse) FromModels(models []model.ContactMessage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]ContactMessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}

// ContactMessageEvent is published to the notifications topic when a message
// arrives, so the back office gets pinged without polling.
type ContactMessageEvent struct {
	Event   string `json:"event"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}
