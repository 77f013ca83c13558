package baixa

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TituloBaixa registra um pagamento (total ou parcial) contra um título.
// ValorPago = ValorBaixa + Juros - Desconto, sempre calculado, nunca
// informado. Baixas canceladas permanecem no histórico para auditoria e
// contribuem zero no recálculo de saldo.
type TituloBaixa struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TituloID  uint      `gorm:"not null;index" json:"tituloId"`
	DataBaixa time.Time `gorm:"not null" json:"dataBaixa"`

	ValorBaixa decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valorBaixa"`
	Juros      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"juros"`
	Desconto   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"desconto"`
	ValorPago  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valorPago"`

	Observacao string `gorm:"type:text" json:"observacao"`
	Cancelada  bool   `gorm:"not null;default:false;index" json:"cancelada"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TituloBaixa{})
}
