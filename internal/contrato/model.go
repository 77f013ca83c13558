package contrato

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Máscara de numeração dos títulos gerados.
const (
	MascaraNumeroParcelaTotal = 1 // "numero - parcela/total"
	MascaraNumeroParcela      = 2 // "numero - parcela"
	MascaraNumeroSimples      = 3 // "numero"
)

// Contrato gera títulos a pagar recorrentes, uma parcela por mês. Uma vez
// gerados os títulos, os campos que definem a forma financeira do contrato
// (valor total, quantidade de parcelas, data de início, dia de vencimento e
// parcela inicial) ficam bloqueados para edição direta.
type Contrato struct {
	gorm.Model

	EmpresaID     uint `gorm:"not null;index" json:"empresaId"`
	FornecedorID  uint `gorm:"not null;index" json:"fornecedorId"`
	PlanoContasID uint `gorm:"not null;index" json:"planoContasId"`

	Descricao string `gorm:"size:255;not null" json:"descricao"`

	ValorTotal   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valorTotal"`
	ValorParcela decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valorParcela"`

	NumParcelas    int `gorm:"not null" json:"numParcelas"`
	ParcelaInicial int `gorm:"not null;default:1" json:"parcelaInicial"`

	DataInicio    time.Time `gorm:"not null" json:"dataInicio"`
	DiaVencimento int       `gorm:"not null" json:"diaVencimento"`

	NumeroTitulo     string `gorm:"size:100;not null" json:"numeroTitulo"`
	MascaraNumeracao int    `gorm:"not null;default:1" json:"mascaraNumeracao"`

	Ativo       bool   `gorm:"not null;default:true" json:"ativo"`
	Observacoes string `gorm:"type:text" json:"observacoes"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
