package contrato_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gestorpag/api-contas-pagar/internal/baixa"
	"github.com/gestorpag/api-contas-pagar/internal/contrato"
	"github.com/gestorpag/api-contas-pagar/internal/titulo"
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&contrato.Contrato{}, &titulo.Titulo{}, &baixa.TituloBaixa{}))
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func novoContrato(t *testing.T, db *gorm.DB, ajustes func(*contrato.Contrato)) *contrato.Contrato {
	t.Helper()
	c := &contrato.Contrato{
		EmpresaID:        1,
		FornecedorID:     1,
		PlanoContasID:    1,
		Descricao:        "Manutenção predial",
		ValorTotal:       dec("1200"),
		ValorParcela:     dec("100"),
		NumParcelas:      12,
		ParcelaInicial:   1,
		DataInicio:       data(2025, time.January, 15),
		DiaVencimento:    10,
		NumeroTitulo:     "CT-77",
		MascaraNumeracao: contrato.MascaraNumeroParcelaTotal,
		Ativo:            true,
	}
	if ajustes != nil {
		ajustes(c)
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestGerarTitulos_QuantidadeEValores(t *testing.T) {
	db := novoBancoTeste(t)
	c := novoContrato(t, db, nil)

	titulos, err := contrato.GerarTitulos(db, c)
	require.NoError(t, err)
	require.Len(t, titulos, 12)

	for i, tit := range titulos {
		assert.True(t, dec("100").Equal(tit.ValorTotal))
		assert.True(t, tit.SaldoPagar.Equal(tit.ValorTotal))
		assert.Equal(t, titulo.StatusAberto, tit.Status)
		assert.Equal(t, i+1, tit.Parcela)
		assert.Equal(t, c.EmpresaID, tit.EmpresaID)
		assert.Equal(t, c.FornecedorID, tit.FornecedorID)
		assert.Equal(t, c.PlanoContasID, tit.PlanoContasID)
		require.NotNil(t, tit.ContratoID)
		assert.Equal(t, c.ID, *tit.ContratoID)
	}

	// vencimentos: um por mês a partir do mês de início, no dia 10
	assert.Equal(t, data(2025, time.January, 10), titulos[0].DataVencimento)
	assert.Equal(t, data(2025, time.February, 10), titulos[1].DataVencimento)
	assert.Equal(t, data(2025, time.December, 10), titulos[11].DataVencimento)

	// mesma data de emissão em todas as parcelas
	for _, tit := range titulos[1:] {
		assert.Equal(t, titulos[0].DataEmissao, tit.DataEmissao)
	}
}

func TestGerarTitulos_DiaVencimentoComClamp(t *testing.T) {
	db := novoBancoTeste(t)
	c := novoContrato(t, db, func(c *contrato.Contrato) {
		c.NumParcelas = 4
		c.ValorTotal = dec("400")
		c.DataInicio = data(2025, time.January, 5)
		c.DiaVencimento = 31
	})

	titulos, err := contrato.GerarTitulos(db, c)
	require.NoError(t, err)
	require.Len(t, titulos, 4)

	assert.Equal(t, data(2025, time.January, 31), titulos[0].DataVencimento)
	// fevereiro não tem dia 31
	assert.Equal(t, data(2025, time.February, 28), titulos[1].DataVencimento)
	assert.Equal(t, data(2025, time.March, 31), titulos[2].DataVencimento)
	assert.Equal(t, data(2025, time.April, 30), titulos[3].DataVencimento)
}

func TestGerarTitulos_ParcelaInicial(t *testing.T) {
	db := novoBancoTeste(t)
	c := novoContrato(t, db, func(c *contrato.Contrato) {
		c.ParcelaInicial = 5
		c.NumParcelas = 8
	})

	titulos, err := contrato.GerarTitulos(db, c)
	require.NoError(t, err)
	require.Len(t, titulos, 4)

	assert.Equal(t, 5, titulos[0].Parcela)
	assert.Equal(t, 8, titulos[3].Parcela)
	// a primeira parcela gerada vence no mês de início
	assert.Equal(t, data(2025, time.January, 10), titulos[0].DataVencimento)
	assert.Equal(t, data(2025, time.April, 10), titulos[3].DataVencimento)
}

func TestGerarTitulos_Mascaras(t *testing.T) {
	t.Run("numero com parcela e total zero-padded", func(t *testing.T) {
		db := novoBancoTeste(t)
		c := novoContrato(t, db, nil)

		titulos, err := contrato.GerarTitulos(db, c)
		require.NoError(t, err)
		assert.Equal(t, "CT-77 - 01/12", titulos[0].NumeroTitulo)
		assert.Equal(t, "CT-77 - 12/12", titulos[11].NumeroTitulo)
	})

	t.Run("numero com parcela", func(t *testing.T) {
		db := novoBancoTeste(t)
		c := novoContrato(t, db, func(c *contrato.Contrato) {
			c.MascaraNumeracao = contrato.MascaraNumeroParcela
		})

		titulos, err := contrato.GerarTitulos(db, c)
		require.NoError(t, err)
		assert.Equal(t, "CT-77 - 01", titulos[0].NumeroTitulo)
		assert.Equal(t, "CT-77 - 10", titulos[9].NumeroTitulo)
	})

	t.Run("numero simples repete o rotulo", func(t *testing.T) {
		db := novoBancoTeste(t)
		c := novoContrato(t, db, func(c *contrato.Contrato) {
			c.MascaraNumeracao = contrato.MascaraNumeroSimples
		})

		titulos, err := contrato.GerarTitulos(db, c)
		require.NoError(t, err)
		for _, tit := range titulos {
			assert.Equal(t, "CT-77", tit.NumeroTitulo)
		}
	})
}

func TestGerarTitulos_ValidacaoFalhaSemInserir(t *testing.T) {
	db := novoBancoTeste(t)
	c := novoContrato(t, db, func(c *contrato.Contrato) {
		c.ValorParcela = decimal.Zero
	})

	_, err := contrato.GerarTitulos(db, c)
	assert.ErrorIs(t, err, contrato.ErrContratoIncompleto)

	var n int64
	require.NoError(t, db.Model(&titulo.Titulo{}).Count(&n).Error)
	assert.Zero(t, n, "validação deve falhar antes de qualquer inserção")
}

func TestGerarTitulos_NaoGeraDuasVezes(t *testing.T) {
	db := novoBancoTeste(t)
	c := novoContrato(t, db, nil)

	_, err := contrato.GerarTitulos(db, c)
	require.NoError(t, err)

	_, err = contrato.GerarTitulos(db, c)
	assert.ErrorIs(t, err, contrato.ErrContratoJaGerado)

	var n int64
	require.NoError(t, db.Model(&titulo.Titulo{}).Where("contrato_id = ?", c.ID).Count(&n).Error)
	assert.EqualValues(t, 12, n)
}
