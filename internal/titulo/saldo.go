package titulo

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TotalPago soma o valor_pago das baixas não canceladas do título. A soma é
// feita em Go com decimal para não depender da aritmética do banco.
func TotalPago(db *gorm.DB, tituloID uint) (decimal.Decimal, error) {
	var valores []decimal.Decimal
	err := db.Table("titulo_baixas").
		Where("titulo_id = ? AND cancelada = ?", tituloID, false).
		Pluck("valor_pago", &valores).Error
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, v := range valores {
		total = total.Add(v)
	}
	return total, nil
}

// ContarBaixasAtivas conta as baixas não canceladas do título. É o teste
// autoritativo de "título sem movimentação" (a comparação saldo == valor
// confundiria um título estornado de volta ao valor cheio com um intocado).
func ContarBaixasAtivas(db *gorm.DB, tituloID uint) (int64, error) {
	var n int64
	err := db.Table("titulo_baixas").
		Where("titulo_id = ? AND cancelada = ?", tituloID, false).
		Count(&n).Error
	return n, err
}

// RecalcularSaldo refaz saldo e status do título a partir do histórico
// completo de baixas não canceladas e persiste o resultado. Deve rodar
// dentro da mesma transação que alterou as baixas.
func RecalcularSaldo(db *gorm.DB, t *Titulo) error {
	totalPago, err := TotalPago(db, t.ID)
	if err != nil {
		return err
	}

	novoSaldo := t.ValorTotal.Sub(totalPago)
	switch {
	case novoSaldo.LessThanOrEqual(decimal.Zero):
		t.Status = StatusPago
	case totalPago.GreaterThan(decimal.Zero):
		t.Status = StatusParcial
	default:
		t.Status = StatusAberto
	}
	if novoSaldo.IsNegative() {
		novoSaldo = decimal.Zero
	}
	t.SaldoPagar = novoSaldo

	return db.Model(&Titulo{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"saldo_pagar": t.SaldoPagar,
			"status":      t.Status,
		}).Error
}
