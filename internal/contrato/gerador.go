package contrato

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gestorpag/api-contas-pagar/internal/titulo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrContratoJaGerado indica que o contrato já possui títulos; a geração
	// nunca roda duas vezes.
	ErrContratoJaGerado = errors.New("contrato já possui títulos gerados")
	// ErrContratoIncompleto indica campos financeiros ausentes ou inválidos
	// para a geração.
	ErrContratoIncompleto = errors.New("contrato sem campos financeiros válidos para geração de títulos")
)

// FormatarNumeroTitulo monta o rótulo de uma parcela conforme a máscara do
// contrato. A largura do zero à esquerda acompanha a quantidade de dígitos
// do total de parcelas ("01/12" ... "12/12").
func FormatarNumeroTitulo(numero string, mascara, parcela, totalParcelas int) string {
	largura := len(strconv.Itoa(totalParcelas))
	switch mascara {
	case MascaraNumeroParcela:
		return fmt.Sprintf("%s - %0*d", numero, largura, parcela)
	case MascaraNumeroSimples:
		return numero
	default:
		return fmt.Sprintf("%s - %0*d/%0*d", numero, largura, parcela, largura, totalParcelas)
	}
}

// ultimoDiaDoMes devolve o último dia válido do mês de t.
func ultimoDiaDoMes(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// dataVencimentoParcela avança o mês da data de início e aplica o dia de
// vencimento, limitado ao último dia válido do mês resultante. O avanço
// parte do dia 1 para o mês nunca transbordar (31/jan + 1 mês = fev, não
// mar).
func dataVencimentoParcela(inicio time.Time, diaVencimento, mesesAvancados int) time.Time {
	base := time.Date(inicio.Year(), inicio.Month(), 1, 0, 0, 0, 0, inicio.Location()).
		AddDate(0, mesesAvancados, 0)
	dia := diaVencimento
	if ultimo := ultimoDiaDoMes(base); dia > ultimo {
		dia = ultimo
	}
	if dia < 1 {
		dia = 1
	}
	return time.Date(base.Year(), base.Month(), dia, 0, 0, 0, 0, inicio.Location())
}

// validarCamposFinanceiros falha rápido antes de qualquer inserção.
func validarCamposFinanceiros(c *Contrato) error {
	switch {
	case c.ValorParcela.LessThanOrEqual(decimal.Zero),
		c.ValorTotal.LessThanOrEqual(decimal.Zero),
		c.NumParcelas < 1,
		c.ParcelaInicial < 1,
		c.ParcelaInicial > c.NumParcelas,
		c.DiaVencimento < 1 || c.DiaVencimento > 31,
		c.DataInicio.IsZero(),
		c.NumeroTitulo == "":
		return ErrContratoIncompleto
	}
	return nil
}

// GerarTitulos expande o contrato em um título por parcela, de
// ParcelaInicial até NumParcelas, dentro de uma única transação. A primeira
// parcela gerada vence no mês da data de início; cada parcela seguinte, um
// mês depois.
func GerarTitulos(db *gorm.DB, c *Contrato) ([]*titulo.Titulo, error) {
	if err := validarCamposFinanceiros(c); err != nil {
		return nil, err
	}

	var titulos []*titulo.Titulo
	err := db.Transaction(func(tx *gorm.DB) error {
		repo := titulo.NewRepository(tx)
		existentes, err := repo.ContarPorContrato(c.ID)
		if err != nil {
			return err
		}
		if existentes > 0 {
			return ErrContratoJaGerado
		}

		emissao := time.Now()
		for i := c.ParcelaInicial; i <= c.NumParcelas; i++ {
			contratoID := c.ID
			titulos = append(titulos, &titulo.Titulo{
				EmpresaID:      c.EmpresaID,
				FornecedorID:   c.FornecedorID,
				ContratoID:     &contratoID,
				PlanoContasID:  c.PlanoContasID,
				NumeroTitulo:   FormatarNumeroTitulo(c.NumeroTitulo, c.MascaraNumeracao, i, c.NumParcelas),
				Parcela:        i,
				DataEmissao:    emissao,
				DataVencimento: dataVencimentoParcela(c.DataInicio, c.DiaVencimento, i-c.ParcelaInicial),
				ValorTotal:     c.ValorParcela,
				SaldoPagar:     c.ValorParcela,
				Descricao:      c.Descricao,
				Observacoes:    c.Observacoes,
				Status:         titulo.StatusAberto,
			})
		}
		return repo.CriarEmLote(titulos)
	})
	if err != nil {
		return nil, err
	}
	return titulos, nil
}
