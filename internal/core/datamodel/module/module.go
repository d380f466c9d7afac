package module

import "time"

// Well-known module codes used by the route gates and the seeder. The
// registry may configure more, but these ship with the product.
const (
	CodeAgendamentos = "agendamentos"
	CodeClientes     = "clientes"
	CodeServicos     = "servicos"
	CodePagamentos   = "pagamentos"
	CodeConversas    = "conversas"
	CodeFormularios  = "formularios"
	CodeEquipe       = "equipe"
)

// Module is a permission-gated feature area. Code is the stable lookup key
// used by every access check and must never be reused with a different
// meaning. Modules are soft-disabled via IsActive, never hard-deleted while
// grants reference them.
type Module struct {
	ID        int64     `gorm:"primaryKey"`
	Code      string    `gorm:"column:code;uniqueIndex;not null"`
	Name      string    `gorm:"column:name;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}

func (Module) TableName() string {
	return "modules"
}
