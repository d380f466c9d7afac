package conversation

import "time"

const (
	SenderProfessional = "professional"
	SenderEmployee     = "employee"
	SenderClient       = "client"
	SenderSystem       = "system"
)

type Conversation struct {
	ID        int64     `gorm:"primaryKey"`
	CompanyID int64     `gorm:"column:company_id;not null;index"`
	ClientID  int64     `gorm:"column:client_id;not null;index"`
	Subject   string    `gorm:"column:subject"`
	IsOpen    bool      `gorm:"column:is_open;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type Message struct {
	ID             int64     `gorm:"primaryKey"`
	ConversationID int64     `gorm:"column:conversation_id;not null;index"`
	SenderType     string    `gorm:"column:sender_type;not null"`
	SenderID       *int64    `gorm:"column:sender_id"`
	Body           string    `gorm:"column:body;not null"`
	SentAt         time.Time `gorm:"column:sent_at;default:now()"`
}

func (Message) TableName() string {
	return "messages"
}
