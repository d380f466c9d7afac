package payment

import "time"

const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusRefunded = "refunded"
)

const (
	MethodCash     = "cash"
	MethodCard     = "card"
	MethodPix      = "pix"
	MethodTransfer = "transfer"
)

type Payment struct {
	ID            int64      `gorm:"primaryKey"`
	CompanyID     int64      `gorm:"column:company_id;not null;index"`
	AppointmentID int64      `gorm:"column:appointment_id;not null;index"`
	AmountCents   int64      `gorm:"column:amount_cents;not null"`
	Method        string     `gorm:"column:method;not null"`
	Status        string     `gorm:"column:status;default:'pending'"`
	PaidAt        *time.Time `gorm:"column:paid_at"`
	RefundedAt    *time.Time `gorm:"column:refunded_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Payment) TableName() string {
	return "payments"
}
