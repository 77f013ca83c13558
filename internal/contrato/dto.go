package contrato

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContratoCreateDTO é o corpo do POST /contratos.
type ContratoCreateDTO struct {
	EmpresaID     uint   `json:"empresaId" validate:"required"`
	FornecedorID  uint   `json:"fornecedorId" validate:"required"`
	PlanoContasID uint   `json:"planoContasId" validate:"required"`
	Descricao     string `json:"descricao" validate:"required"`

	ValorTotal   decimal.Decimal `json:"valorTotal"`
	ValorParcela decimal.Decimal `json:"valorParcela"`

	NumParcelas    int `json:"numParcelas" validate:"required,min=1"`
	ParcelaInicial int `json:"parcelaInicial" validate:"omitempty,min=1"` // se vazio, assume 1

	DataInicio    time.Time `json:"dataInicio" validate:"required"`
	DiaVencimento int       `json:"diaVencimento" validate:"required,min=1,max=31"`

	NumeroTitulo     string `json:"numeroTitulo" validate:"required"`
	MascaraNumeracao int    `json:"mascaraNumeracao" validate:"omitempty,oneof=1 2 3"` // se vazio, assume 1

	Observacoes string `json:"observacoes"`
}

// ContratoUpdateDTO é o corpo do PUT /contratos/{id}. Os campos financeiros
// (valorTotal, numParcelas, parcelaInicial, dataInicio, diaVencimento) só são
// aceitos enquanto o contrato não tiver títulos gerados. AtualizarTitulos
// dispara a propagação dos campos editáveis para os títulos sem baixa ativa.
type ContratoUpdateDTO struct {
	PlanoContasID uint   `json:"planoContasId" validate:"required"`
	Descricao     string `json:"descricao" validate:"required"`

	ValorTotal   decimal.Decimal `json:"valorTotal"`
	ValorParcela decimal.Decimal `json:"valorParcela"`

	NumParcelas    int `json:"numParcelas" validate:"required,min=1"`
	ParcelaInicial int `json:"parcelaInicial" validate:"omitempty,min=1"`

	DataInicio    time.Time `json:"dataInicio" validate:"required"`
	DiaVencimento int       `json:"diaVencimento" validate:"required,min=1,max=31"`

	NumeroTitulo     string `json:"numeroTitulo" validate:"required"`
	MascaraNumeracao int    `json:"mascaraNumeracao" validate:"omitempty,oneof=1 2 3"`

	Ativo       *bool  `json:"ativo"`
	Observacoes string `json:"observacoes"`

	AtualizarTitulos bool `json:"atualizarTitulos"`
}

// ContratoUpdateResponse devolve o contrato salvo e, quando a cascata foi
// solicitada, quantos títulos foram atualizados.
type ContratoUpdateResponse struct {
	Contrato           *Contrato `json:"contrato"`
	TitulosAtualizados int       `json:"titulosAtualizados"`
}
