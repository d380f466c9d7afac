package postgres

import (
	"context"

	conversationDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/conversation"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, c *conversationDatamodel.Conversation) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) GetByID(ctx context.Context, companyID, id int64) (*conversationDatamodel.Conversation, error) {
	var c conversationDatamodel.Conversation
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindOpenByClient(ctx context.Context, companyID, clientID int64) (*conversationDatamodel.Conversation, error) {
	var c conversationDatamodel.Conversation
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND client_id = ? AND is_open = ?", companyID, clientID, true).
		Order("updated_at DESC").
		First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) List(ctx context.Context, companyID int64, openOnly bool, limit, offset int) ([]*conversationDatamodel.Conversation, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if openOnly {
		q = q.Where("is_open = ?", true)
	}

	var conversations []*conversationDatamodel.Conversation
	err := q.Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *Repository) Update(ctx context.Context, c *conversationDatamodel.Conversation) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *Repository) CreateMessage(ctx context.Context, m *conversationDatamodel.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repository) ListMessages(ctx context.Context, conversationID int64, limit, offset int) ([]*conversationDatamodel.Message, error) {
	var messages []*conversationDatamodel.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
