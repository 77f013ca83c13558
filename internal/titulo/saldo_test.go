package titulo_test

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

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func novoTitulo(t *testing.T, db *gorm.DB, valor string) *titulo.Titulo {
	t.Helper()
	v := dec(valor)
	tit := &titulo.Titulo{
		EmpresaID:      1,
		FornecedorID:   1,
		PlanoContasID:  1,
		NumeroTitulo:   "NF-500",
		DataEmissao:    time.Now(),
		DataVencimento: time.Now(),
		ValorTotal:     v,
		SaldoPagar:     v,
		Descricao:      "Energia elétrica",
		Status:         titulo.StatusAberto,
	}
	require.NoError(t, db.Create(tit).Error)
	return tit
}

func novaBaixa(t *testing.T, db *gorm.DB, tituloID uint, valorPago string, cancelada bool) {
	t.Helper()
	require.NoError(t, db.Create(&baixa.TituloBaixa{
		TituloID:   tituloID,
		DataBaixa:  time.Now(),
		ValorBaixa: dec(valorPago),
		ValorPago:  dec(valorPago),
		Cancelada:  cancelada,
	}).Error)
}

func TestRecalcularSaldo(t *testing.T) {
	casos := []struct {
		nome       string
		valor      string
		pagas      []string
		canceladas []string
		saldo      string
		status     int
	}{
		{nome: "sem baixas fica aberto", valor: "100", saldo: "100", status: titulo.StatusAberto},
		{nome: "baixa parcial", valor: "100", pagas: []string{"30"}, saldo: "70", status: titulo.StatusParcial},
		{nome: "varias parciais", valor: "100", pagas: []string{"30", "20.50"}, saldo: "49.50", status: titulo.StatusParcial},
		{nome: "quitado", valor: "100", pagas: []string{"60", "40"}, saldo: "0", status: titulo.StatusPago},
		{nome: "baixa cancelada conta zero", valor: "100", canceladas: []string{"100"}, saldo: "100", status: titulo.StatusAberto},
		{nome: "mistura ativa e cancelada", valor: "100", pagas: []string{"25"}, canceladas: []string{"75"}, saldo: "75", status: titulo.StatusParcial},
		{nome: "saldo negativo clampa em zero", valor: "100", pagas: []string{"80", "30"}, saldo: "0", status: titulo.StatusPago},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			db := novoBancoTeste(t)
			tit := novoTitulo(t, db, caso.valor)
			for _, v := range caso.pagas {
				novaBaixa(t, db, tit.ID, v, false)
			}
			for _, v := range caso.canceladas {
				novaBaixa(t, db, tit.ID, v, true)
			}

			require.NoError(t, titulo.RecalcularSaldo(db, tit))

			atual, err := titulo.NewRepository(db).BuscarPorID(tit.ID)
			require.NoError(t, err)
			assert.True(t, dec(caso.saldo).Equal(atual.SaldoPagar),
				"saldo esperado %s, obtido %s", caso.saldo, atual.SaldoPagar)
			assert.Equal(t, caso.status, atual.Status)
		})
	}
}

func TestContarBaixasAtivas(t *testing.T) {
	db := novoBancoTeste(t)
	tit := novoTitulo(t, db, "100")

	n, err := titulo.ContarBaixasAtivas(db, tit.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	novaBaixa(t, db, tit.ID, "10", false)
	novaBaixa(t, db, tit.ID, "20", true)

	n, err = titulo.ContarBaixasAtivas(db, tit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "baixas canceladas não contam")
}

func TestTotalPago(t *testing.T) {
	db := novoBancoTeste(t)
	tit := novoTitulo(t, db, "500")

	novaBaixa(t, db, tit.ID, "100.10", false)
	novaBaixa(t, db, tit.ID, "200.20", false)
	novaBaixa(t, db, tit.ID, "999", true)

	total, err := titulo.TotalPago(db, tit.ID)
	require.NoError(t, err)
	assert.True(t, dec("300.30").Equal(total))
}
