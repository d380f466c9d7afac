package conversation

import (
	"strings"

	conversationDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/conversation"
	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/core/common/validation"
)

type StartConversationDTO struct {
	ClientID int64  `json:"client_id"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

func (d *StartConversationDTO) Validate() error {
	d.Subject = strings.TrimSpace(d.Subject)

	v := validation.NewValidator()
	v.Field("client_id", d.ClientID).Required()
	v.Field("subject", d.Subject).MaxLength(200)
	v.Field("body", d.Body).MaxLength(10000)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type PostMessageDTO struct {
	Body string `json:"body"`
}

func (d *PostMessageDTO) Validate() error {
	if strings.TrimSpace(d.Body) == "" {
		return internal.NewValidationFieldError("body", "body is required", internal.ErrCodeValidationFailed)
	}
	if len(d.Body) > 10000 {
		return internal.NewValidationFieldError("body", "body must not exceed 10000 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}

type ConversationWithMessages struct {
	Conversation *conversationDatamodel.Conversation `json:"conversation"`
	Messages     []*conversationDatamodel.Message    `json:"messages"`
}
