package baixa_test

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
	"github.com/gestorpag/api-contas-pagar/internal/titulo"
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&titulo.Titulo{}, &baixa.TituloBaixa{}))
	return db
}

func criarTitulo(t *testing.T, db *gorm.DB, valor string) *titulo.Titulo {
	t.Helper()
	v := decimal.RequireFromString(valor)
	tit := &titulo.Titulo{
		EmpresaID:      1,
		FornecedorID:   1,
		PlanoContasID:  1,
		NumeroTitulo:   "NF-1001",
		DataEmissao:    time.Now(),
		DataVencimento: time.Now().AddDate(0, 1, 0),
		ValorTotal:     v,
		SaldoPagar:     v,
		Descricao:      "Aluguel galpão",
		Status:         titulo.StatusAberto,
	}
	require.NoError(t, db.Create(tit).Error)
	return tit
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRegistrarBaixa_Parcial(t *testing.T) {
	db := novoBancoTeste(t)
	svc := baixa.NewService(db)
	tit := criarTitulo(t, db, "200")

	b, atualizado, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{
		ValorBaixa: dec("100"),
		Juros:      dec("10"),
		Desconto:   dec("5"),
		Observacao: "pagamento parcial",
	})
	require.NoError(t, err)

	assert.True(t, dec("105").Equal(b.ValorPago), "valorPago = valorBaixa + juros - desconto")
	assert.True(t, dec("95").Equal(atualizado.SaldoPagar))
	assert.Equal(t, titulo.StatusParcial, atualizado.Status)
	assert.False(t, b.DataBaixa.IsZero())
}

func TestRegistrarBaixa_Quitacao(t *testing.T) {
	db := novoBancoTeste(t)
	svc := baixa.NewService(db)
	tit := criarTitulo(t, db, "150.50")

	_, atualizado, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{
		ValorBaixa: dec("150.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, titulo.StatusPago, atualizado.Status)
	assert.True(t, atualizado.SaldoPagar.IsZero())
}

func TestRegistrarBaixa_DuasParciaisQuitam(t *testing.T) {
	db := novoBancoTeste(t)
	svc := baixa.NewService(db)
	tit := criarTitulo(t, db, "300")

	_, _, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("120")})
	require.NoError(t, err)
	_, atualizado, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("180")})
	require.NoError(t, err)

	assert.Equal(t, titulo.StatusPago, atualizado.Status)
	assert.True(t, atualizado.SaldoPagar.IsZero())
}

func TestRegistrarBaixa_Validacoes(t *testing.T) {
	db := novoBancoTeste(t)
	svc := baixa.NewService(db)
	tit := criarTitulo(t, db, "200")

	t.Run("valorBaixa deve ser positivo", func(t *testing.T) {
		_, _, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("0")})
		assert.ErrorIs(t, err, baixa.ErrValorBaixaInvalido)
	})

	t.Run("valorPago deve ser positivo", func(t *testing.T) {
		_, _, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{
			ValorBaixa: dec("50"),
			Desconto:   dec("60"),
		})
		assert.ErrorIs(t, err, baixa.ErrValorPagoInvalido)
	})

	t.Run("pagamento acima do saldo é rejeitado", func(t *testing.T) {
		_, _, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("200.01")})
		assert.ErrorIs(t, err, baixa.ErrSaldoExcedido)
	})

	t.Run("título inexistente", func(t *testing.T) {
		_, _, err := svc.RegistrarBaixa(9999, baixa.RegistrarBaixaInput{ValorBaixa: dec("10")})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("título cancelado não aceita baixa", func(t *testing.T) {
		cancelado := criarTitulo(t, db, "100")
		require.NoError(t, titulo.NewRepository(db).Cancelar(cancelado.ID))
		_, _, err := svc.RegistrarBaixa(cancelado.ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("10")})
		assert.ErrorIs(t, err, baixa.ErrTituloCancelado)
	})

	// nenhuma validação rejeitada pode deixar linha para trás
	var n int64
	require.NoError(t, db.Model(&baixa.TituloBaixa{}).Where("titulo_id = ?", tit.ID).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCancelarBaixa_RestauraSaldo(t *testing.T) {
	db := novoBancoTeste(t)
	svc := baixa.NewService(db)
	tit := criarTitulo(t, db, "200")

	b, _, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{
		ValorBaixa: dec("100"),
		Juros:      dec("10"),
		Desconto:   dec("5"),
	})
	require.NoError(t, err)

	restaurado, err := svc.CancelarBaixa(b.ID)
	require.NoError(t, err)
	assert.True(t, dec("200").Equal(restaurado.SaldoPagar))
	assert.Equal(t, titulo.StatusAberto, restaurado.Status)

	// a baixa permanece no histórico, apenas marcada
	persistida, err := baixa.NewRepository(db).BuscarPorID(b.ID)
	require.NoError(t, err)
	assert.True(t, persistida.Cancelada)
}

func TestCancelarBaixa_Reincidencia(t *testing.T) {
	db := novoBancoTeste(t)
	svc := baixa.NewService(db)
	tit := criarTitulo(t, db, "200")

	b, _, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("50")})
	require.NoError(t, err)

	_, err = svc.CancelarBaixa(b.ID)
	require.NoError(t, err)

	_, err = svc.CancelarBaixa(b.ID)
	assert.ErrorIs(t, err, baixa.ErrBaixaJaCancelada)

	// o saldo não muda com a segunda tentativa
	atual, err := titulo.NewRepository(db).BuscarPorID(tit.ID)
	require.NoError(t, err)
	assert.True(t, dec("200").Equal(atual.SaldoPagar))
	assert.Equal(t, titulo.StatusAberto, atual.Status)
}

func TestCancelarBaixa_DeVoltaParaParcial(t *testing.T) {
	db := novoBancoTeste(t)
	svc := baixa.NewService(db)
	tit := criarTitulo(t, db, "300")

	_, _, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("100")})
	require.NoError(t, err)
	b2, pago, err := svc.RegistrarBaixa(tit.ID, baixa.RegistrarBaixaInput{ValorBaixa: dec("200")})
	require.NoError(t, err)
	require.Equal(t, titulo.StatusPago, pago.Status)

	parcial, err := svc.CancelarBaixa(b2.ID)
	require.NoError(t, err)
	assert.Equal(t, titulo.StatusParcial, parcial.Status)
	assert.True(t, dec("200").Equal(parcial.SaldoPagar))
}
