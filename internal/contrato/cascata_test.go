package contrato_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpag/api-contas-pagar/internal/baixa"
	"github.com/gestorpag/api-contas-pagar/internal/contrato"
	"github.com/gestorpag/api-contas-pagar/internal/titulo"
)

func TestAtualizarTitulos_PropagaApenasSemBaixa(t *testing.T) {
	db := novoBancoTeste(t)
	c := novoContrato(t, db, func(c *contrato.Contrato) {
		c.NumParcelas = 3
		c.ValorTotal = dec("300")
	})
	titulos, err := contrato.GerarTitulos(db, c)
	require.NoError(t, err)
	require.Len(t, titulos, 3)

	// a segunda parcela recebe uma baixa parcial
	_, _, err = baixa.NewService(db).RegistrarBaixa(titulos[1].ID, baixa.RegistrarBaixaInput{
		ValorBaixa: dec("40"),
	})
	require.NoError(t, err)

	c.Descricao = "Manutenção predial reajustada"
	c.ValorParcela = dec("110")
	c.Observacoes = "reajuste anual"
	require.NoError(t, db.Save(c).Error)

	atualizados, err := contrato.AtualizarTitulos(db, c)
	require.NoError(t, err)
	assert.Equal(t, 2, atualizados)

	repo := titulo.NewRepository(db)

	intocado, err := repo.BuscarPorID(titulos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Manutenção predial reajustada", intocado.Descricao)
	assert.True(t, dec("110").Equal(intocado.ValorTotal))
	assert.True(t, dec("110").Equal(intocado.SaldoPagar), "saldo acompanha o valor em título sem movimentação")
	assert.Equal(t, "reajuste anual", intocado.Observacoes)

	movimentado, err := repo.BuscarPorID(titulos[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Manutenção predial", movimentado.Descricao, "título com baixa fica intacto")
	assert.True(t, dec("100").Equal(movimentado.ValorTotal))
	assert.True(t, dec("60").Equal(movimentado.SaldoPagar))
}

func TestAtualizarTitulos_EstornoNaoLiberaTitulo(t *testing.T) {
	db := novoBancoTeste(t)
	c := novoContrato(t, db, func(c *contrato.Contrato) {
		c.NumParcelas = 1
		c.ValorTotal = dec("100")
	})
	titulos, err := contrato.GerarTitulos(db, c)
	require.NoError(t, err)

	// baixa seguida de estorno: saldo volta ao valor cheio, mas o título
	// segue elegível porque o teste é por contagem de baixas ativas
	svc := baixa.NewService(db)
	b, _, err := svc.RegistrarBaixa(titulos[0].ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("100")})
	require.NoError(t, err)
	_, err = svc.CancelarBaixa(b.ID)
	require.NoError(t, err)

	c.Descricao = "Nova descrição"
	require.NoError(t, db.Save(c).Error)

	atualizados, err := contrato.AtualizarTitulos(db, c)
	require.NoError(t, err)
	assert.Equal(t, 1, atualizados)
}

func TestAtualizarTitulos_RederivaNumeroPelaMascara(t *testing.T) {
	db := novoBancoTeste(t)
	c := novoContrato(t, db, func(c *contrato.Contrato) {
		c.NumParcelas = 12
	})
	titulos, err := contrato.GerarTitulos(db, c)
	require.NoError(t, err)
	require.Equal(t, "CT-77 - 01/12", titulos[0].NumeroTitulo)

	c.NumeroTitulo = "CT-99"
	require.NoError(t, db.Save(c).Error)

	_, err = contrato.AtualizarTitulos(db, c)
	require.NoError(t, err)

	atual, err := titulo.NewRepository(db).BuscarPorID(titulos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "CT-99 - 01/12", atual.NumeroTitulo)
}

func TestCancelarContrato(t *testing.T) {
	db := novoBancoTeste(t)
	c := novoContrato(t, db, func(c *contrato.Contrato) {
		c.NumParcelas = 3
		c.ValorTotal = dec("600")
		c.ValorParcela = dec("200")
	})
	titulos, err := contrato.GerarTitulos(db, c)
	require.NoError(t, err)
	require.Len(t, titulos, 3)

	svc := baixa.NewService(db)
	// segunda parcela: parcialmente paga (saldo 50 de 200)
	_, _, err = svc.RegistrarBaixa(titulos[1].ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("150")})
	require.NoError(t, err)
	// terceira parcela: quitada
	_, _, err = svc.RegistrarBaixa(titulos[2].ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("200")})
	require.NoError(t, err)

	res, err := contrato.CancelarContrato(db, c)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TitulosCancelados)
	assert.Equal(t, 1, res.TitulosLiquidados)
	assert.False(t, c.Ativo)

	repo := titulo.NewRepository(db)

	// intocada: cancelada
	t1, err := repo.BuscarPorID(titulos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, titulo.StatusCancelado, t1.Status)
	assert.True(t, t1.Cancelado)

	// parcial: liquidada à força com baixa sintética de um centavo
	t2, err := repo.BuscarPorID(titulos[1].ID)
	require.NoError(t, err)
	assert.Equal(t, titulo.StatusPago, t2.Status)
	assert.True(t, t2.SaldoPagar.IsZero())

	baixas, err := baixa.NewRepository(db).ListarPorTitulo(t2.ID)
	require.NoError(t, err)
	require.Len(t, baixas, 2)
	sintetica := baixas[len(baixas)-1]
	if sintetica.Observacao != contrato.ObservacaoBaixaAutomatica {
		sintetica = baixas[0]
	}
	assert.Equal(t, contrato.ObservacaoBaixaAutomatica, sintetica.Observacao)
	assert.True(t, dec("0.01").Equal(sintetica.ValorBaixa))
	assert.True(t, dec("49.99").Equal(sintetica.Desconto))
	assert.True(t, dec("0.01").Equal(sintetica.ValorPago))

	// quitada: intacta
	t3, err := repo.BuscarPorID(titulos[2].ID)
	require.NoError(t, err)
	assert.Equal(t, titulo.StatusPago, t3.Status)
	assert.False(t, t3.Cancelado)
	var n int64
	require.NoError(t, db.Model(&baixa.TituloBaixa{}).Where("titulo_id = ?", t3.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n, "título quitado não recebe baixa sintética")

	var persistido contrato.Contrato
	require.NoError(t, db.First(&persistido, c.ID).Error)
	assert.False(t, persistido.Ativo)
}

func TestCancelarContrato_TituloSemSaldoMasComBaixaNaoMuda(t *testing.T) {
	db := novoBancoTeste(t)
	c := novoContrato(t, db, func(c *contrato.Contrato) {
		c.NumParcelas = 1
		c.ValorTotal = dec("100")
	})
	titulos, err := contrato.GerarTitulos(db, c)
	require.NoError(t, err)

	_, _, err = baixa.NewService(db).RegistrarBaixa(titulos[0].ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("100")})
	require.NoError(t, err)

	res, err := contrato.CancelarContrato(db, c)
	require.NoError(t, err)
	assert.Zero(t, res.TitulosCancelados)
	assert.Zero(t, res.TitulosLiquidados)
}
