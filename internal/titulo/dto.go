package titulo

import (
	"time"

	"github.com/shopspring/decimal"
)

// TituloCreateDTO é o corpo do POST /titulos (lançamento manual, sem contrato).
type TituloCreateDTO struct {
	EmpresaID      uint            `json:"empresaId" validate:"required"`
	FornecedorID   uint            `json:"fornecedorId" validate:"required"`
	PlanoContasID  uint            `json:"planoContasId" validate:"required"`
	NumeroTitulo   string          `json:"numeroTitulo" validate:"required"`
	DataEmissao    time.Time       `json:"dataEmissao"`
	DataVencimento time.Time       `json:"dataVencimento" validate:"required"`
	ValorTotal     decimal.Decimal `json:"valorTotal"`
	Descricao      string          `json:"descricao" validate:"required"`
	Observacoes    string          `json:"observacoes"`
}

// TituloUpdateDTO é o corpo do PUT /titulos/{id}. ValorTotal só pode mudar
// enquanto o título não tiver baixas ativas.
type TituloUpdateDTO struct {
	PlanoContasID  uint            `json:"planoContasId" validate:"required"`
	NumeroTitulo   string          `json:"numeroTitulo" validate:"required"`
	DataVencimento time.Time       `json:"dataVencimento" validate:"required"`
	ValorTotal     decimal.Decimal `json:"valorTotal"`
	Descricao      string          `json:"descricao" validate:"required"`
	Observacoes    string          `json:"observacoes"`
}
