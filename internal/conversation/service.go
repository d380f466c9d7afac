package conversation

import (
	"context"
	"log/slog"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	conversationDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/conversation"
)

type Repository interface {
	Create(ctx context.Context, c *conversationDatamodel.Conversation) error
	GetByID(ctx context.Context, companyID, id int64) (*conversationDatamodel.Conversation, error)
	FindOpenByClient(ctx context.Context, companyID, clientID int64) (*conversationDatamodel.Conversation, error)
	List(ctx context.Context, companyID int64, openOnly bool, limit, offset int) ([]*conversationDatamodel.Conversation, error)
	Update(ctx context.Context, c *conversationDatamodel.Conversation) error
	CreateMessage(ctx context.Context, m *conversationDatamodel.Message) error
	ListMessages(ctx context.Context, conversationID int64, limit, offset int) ([]*conversationDatamodel.Message, error)
}

// Service manages client chat threads. Besides user messages it records
// system messages produced by appointment and payment lifecycle events.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) StartConversation(ctx context.Context, companyID int64, p *internal.Principal, dto StartConversationDTO) (*conversationDatamodel.Conversation, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("conversation validation failed", "error", err, "company_id", companyID)
		return nil, err
	}

	conv := &conversationDatamodel.Conversation{
		CompanyID: companyID,
		ClientID:  dto.ClientID,
		Subject:   dto.Subject,
		IsOpen:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, conv); err != nil {
		s.logger.Error("failed to create conversation", "error", err, "company_id", companyID)
		return nil, err
	}

	if dto.Body != "" {
		msg := &conversationDatamodel.Message{
			ConversationID: conv.ID,
			SenderType:     string(p.AccountType),
			SenderID:       &p.ID,
			Body:           dto.Body,
			SentAt:         time.Now(),
		}
		if err := s.repo.CreateMessage(ctx, msg); err != nil {
			s.logger.Error("failed to create opening message", "error", err, "conversation_id", conv.ID)
			return nil, err
		}
	}

	s.logger.Info("conversation started", "conversation_id", conv.ID, "company_id", companyID, "client_id", dto.ClientID)
	return conv, nil
}

func (s *Service) GetConversation(ctx context.Context, companyID, id int64) (*ConversationWithMessages, error) {
	conv, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		s.logger.Error("failed to get conversation", "error", err, "conversation_id", id)
		return nil, err
	}
	if conv == nil {
		return nil, internal.ErrConversationNotFound
	}

	messages, err := s.repo.ListMessages(ctx, conv.ID, 200, 0)
	if err != nil {
		s.logger.Error("failed to list messages", "error", err, "conversation_id", id)
		return nil, err
	}

	return &ConversationWithMessages{Conversation: conv, Messages: messages}, nil
}

func (s *Service) ListConversations(ctx context.Context, companyID int64, openOnly bool, limit, offset int) ([]*conversationDatamodel.Conversation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, companyID, openOnly, limit, offset)
}

func (s *Service) PostMessage(ctx context.Context, companyID, conversationID int64, p *internal.Principal, dto PostMessageDTO) (*conversationDatamodel.Message, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	conv, err := s.repo.GetByID(ctx, companyID, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, internal.ErrConversationNotFound
	}

	msg := &conversationDatamodel.Message{
		ConversationID: conv.ID,
		SenderType:     string(p.AccountType),
		SenderID:       &p.ID,
		Body:           dto.Body,
		SentAt:         time.Now(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		s.logger.Error("failed to post message", "error", err, "conversation_id", conversationID)
		return nil, err
	}

	conv.IsOpen = true
	conv.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, conv); err != nil {
		s.logger.Error("failed to touch conversation", "error", err, "conversation_id", conversationID)
	}

	return msg, nil
}

func (s *Service) CloseConversation(ctx context.Context, companyID, id int64) error {
	conv, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if conv == nil {
		return internal.ErrConversationNotFound
	}

	conv.IsOpen = false
	conv.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, conv); err != nil {
		s.logger.Error("failed to close conversation", "error", err, "conversation_id", id)
		return err
	}

	s.logger.Info("conversation closed", "conversation_id", id, "company_id", companyID)
	return nil
}

// PostSystemMessage appends an automated note to the client's open thread,
// creating the thread when none exists. Called by the event subscribers.
func (s *Service) PostSystemMessage(ctx context.Context, companyID, clientID int64, body string) error {
	conv, err := s.repo.FindOpenByClient(ctx, companyID, clientID)
	if err != nil {
		return err
	}
	if conv == nil {
		conv = &conversationDatamodel.Conversation{
			CompanyID: companyID,
			ClientID:  clientID,
			Subject:   "Notificações",
			IsOpen:    true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.repo.Create(ctx, conv); err != nil {
			return err
		}
	}

	msg := &conversationDatamodel.Message{
		ConversationID: conv.ID,
		SenderType:     conversationDatamodel.SenderSystem,
		Body:           body,
		SentAt:         time.Now(),
	}
	return s.repo.CreateMessage(ctx, msg)
}
