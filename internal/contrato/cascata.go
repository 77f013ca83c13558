package contrato

import (
	"time"

	"github.com/gestorpag/api-contas-pagar/internal/baixa"
	"github.com/gestorpag/api-contas-pagar/internal/titulo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ObservacaoBaixaAutomatica marca a baixa sintética gravada ao cancelar um
// contrato com título parcialmente pago.
const ObservacaoBaixaAutomatica = "Baixa automática por cancelamento do contrato"

// AtualizarTitulos propaga os campos editáveis do contrato (descrição,
// valor da parcela, número, conta e observações) para os títulos que ainda
// não receberam nenhuma baixa ativa. Títulos com movimentação ou cancelados
// ficam intactos. Roda em uma única transação: ou todos os títulos
// elegíveis são atualizados ou nenhum.
func AtualizarTitulos(db *gorm.DB, c *Contrato) (int, error) {
	atualizados := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		repo := titulo.NewRepository(tx)
		titulos, err := repo.ListarPorContrato(c.ID)
		if err != nil {
			return err
		}

		for i := range titulos {
			t := &titulos[i]
			if t.Cancelado {
				continue
			}
			ativas, err := titulo.ContarBaixasAtivas(tx, t.ID)
			if err != nil {
				return err
			}
			if ativas > 0 {
				continue
			}

			t.Descricao = c.Descricao
			t.ValorTotal = c.ValorParcela
			t.SaldoPagar = c.ValorParcela
			t.NumeroTitulo = FormatarNumeroTitulo(c.NumeroTitulo, c.MascaraNumeracao, t.Parcela, c.NumParcelas)
			t.PlanoContasID = c.PlanoContasID
			t.Observacoes = c.Observacoes
			if err := repo.Atualizar(t); err != nil {
				return err
			}
			atualizados++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return atualizados, nil
}

// ResultadoCancelamento resume o efeito do cancelamento de um contrato
// sobre seus títulos.
type ResultadoCancelamento struct {
	TitulosCancelados int `json:"titulosCancelados"`
	TitulosLiquidados int `json:"titulosLiquidados"`
}

// CancelarContrato desativa o contrato e fecha seus títulos:
//   - sem baixa ativa: cancelado (status 4);
//   - parcialmente pago: liquidado à força com uma baixa sintética de um
//     centavo que abate o restante como desconto, saldo zerado e status
//     Pago gravados direto (fechamento forçado, sem o recálculo geral);
//   - já quitado: intacto.
//
// Tudo dentro de uma única transação.
func CancelarContrato(db *gorm.DB, c *Contrato) (*ResultadoCancelamento, error) {
	var res ResultadoCancelamento
	umCentavo := decimal.RequireFromString("0.01")

	err := db.Transaction(func(tx *gorm.DB) error {
		repo := titulo.NewRepository(tx)
		titulos, err := repo.ListarPorContrato(c.ID)
		if err != nil {
			return err
		}

		for i := range titulos {
			t := &titulos[i]
			if t.Cancelado {
				continue
			}
			ativas, err := titulo.ContarBaixasAtivas(tx, t.ID)
			if err != nil {
				return err
			}

			switch {
			case ativas == 0:
				if err := repo.Cancelar(t.ID); err != nil {
					return err
				}
				res.TitulosCancelados++

			case t.SaldoPagar.GreaterThan(decimal.Zero):
				b := baixa.TituloBaixa{
					TituloID:   t.ID,
					DataBaixa:  time.Now(),
					ValorBaixa: umCentavo,
					Desconto:   t.SaldoPagar.Sub(umCentavo),
					ValorPago:  umCentavo,
					Observacao: ObservacaoBaixaAutomatica,
				}
				if err := tx.Create(&b).Error; err != nil {
					return err
				}
				err := tx.Model(&titulo.Titulo{}).
					Where("id = ?", t.ID).
					Updates(map[string]interface{}{
						"saldo_pagar": decimal.Zero,
						"status":      titulo.StatusPago,
					}).Error
				if err != nil {
					return err
				}
				res.TitulosLiquidados++
			}
		}

		return tx.Model(&Contrato{}).
			Where("id = ?", c.ID).
			Update("ativo", false).Error
	})
	if err != nil {
		return nil, err
	}
	c.Ativo = false
	return &res, nil
}
