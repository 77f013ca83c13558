package titulo

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status do título. Cancelado só é atribuído pelo cancelamento; os demais
// são sempre derivados do recálculo de saldo.
const (
	StatusAberto    = 1
	StatusParcial   = 2
	StatusPago      = 3
	StatusCancelado = 4
)

// Titulo representa uma parcela a pagar, gerada por contrato ou lançada
// manualmente. SaldoPagar fica sempre entre zero e ValorTotal para títulos
// não cancelados.
type Titulo struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	EmpresaID     uint  `gorm:"not null;index" json:"empresaId"`
	FornecedorID  uint  `gorm:"not null;index" json:"fornecedorId"`
	ContratoID    *uint `gorm:"index" json:"contratoId,omitempty"`
	PlanoContasID uint  `gorm:"not null;index" json:"planoContasId"`

	NumeroTitulo string `gorm:"size:100;not null" json:"numeroTitulo"`
	// Parcela é o índice da parcela dentro do contrato (zero em títulos avulsos).
	Parcela int `gorm:"not null;default:0" json:"parcela"`

	DataEmissao    time.Time `gorm:"not null" json:"dataEmissao"`
	DataVencimento time.Time `gorm:"not null;index" json:"dataVencimento"`

	ValorTotal decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valorTotal"`
	SaldoPagar decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"saldoPagar"`

	Descricao   string `gorm:"size:255;not null" json:"descricao"`
	Observacoes string `gorm:"type:text" json:"observacoes"`

	Status    int  `gorm:"not null;default:1;index" json:"status"`
	Cancelado bool `gorm:"not null;default:false" json:"cancelado"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Titulo{})
}
