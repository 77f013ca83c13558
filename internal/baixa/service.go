package baixa

import (
	"errors"
	"time"

	"github.com/gestorpag/api-contas-pagar/internal/titulo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrTituloCancelado indica baixa contra título cancelado.
	ErrTituloCancelado = errors.New("título cancelado não aceita baixas")
	// ErrValorBaixaInvalido indica valorBaixa menor ou igual a zero.
	ErrValorBaixaInvalido = errors.New("o campo 'valorBaixa' deve ser maior que zero")
	// ErrValorPagoInvalido indica que juros e desconto levaram o valor pago
	// a zero ou negativo.
	ErrValorPagoInvalido = errors.New("valor pago resultante deve ser maior que zero")
	// ErrSaldoExcedido indica pagamento maior que o saldo em aberto.
	ErrSaldoExcedido = errors.New("valor pago excede o saldo a pagar do título")
	// ErrBaixaJaCancelada indica tentativa de cancelar uma baixa duas vezes.
	ErrBaixaJaCancelada = errors.New("baixa já está cancelada")
)

// Service executa registro e cancelamento de baixas. Cada operação roda em
// uma única transação: inserção/cancelamento da baixa e recálculo de saldo
// ou são persistidos juntos ou nada é persistido.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// RegistrarBaixaInput carrega os campos de pagamento de uma nova baixa.
type RegistrarBaixaInput struct {
	DataBaixa  time.Time
	ValorBaixa decimal.Decimal
	Juros      decimal.Decimal
	Desconto   decimal.Decimal
	Observacao string
}

// RegistrarBaixa valida e persiste uma baixa contra o título e recalcula
// saldo e status a partir do histórico completo de baixas não canceladas.
func (s *Service) RegistrarBaixa(tituloID uint, in RegistrarBaixaInput) (*TituloBaixa, *titulo.Titulo, error) {
	if in.ValorBaixa.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrValorBaixaInvalido
	}
	valorPago := in.ValorBaixa.Add(in.Juros).Sub(in.Desconto)
	if valorPago.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrValorPagoInvalido
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, nil, tx.Error
	}

	var t titulo.Titulo
	if err := tx.First(&t, tituloID).Error; err != nil {
		_ = tx.Rollback()
		return nil, nil, err
	}
	if t.Cancelado {
		_ = tx.Rollback()
		return nil, nil, ErrTituloCancelado
	}
	if valorPago.GreaterThan(t.SaldoPagar) {
		_ = tx.Rollback()
		return nil, nil, ErrSaldoExcedido
	}

	dataBaixa := in.DataBaixa
	if dataBaixa.IsZero() {
		dataBaixa = time.Now()
	}

	b := TituloBaixa{
		TituloID:   tituloID,
		DataBaixa:  dataBaixa,
		ValorBaixa: in.ValorBaixa,
		Juros:      in.Juros,
		Desconto:   in.Desconto,
		ValorPago:  valorPago,
		Observacao: in.Observacao,
	}
	if err := tx.Create(&b).Error; err != nil {
		_ = tx.Rollback()
		return nil, nil, err
	}

	if err := titulo.RecalcularSaldo(tx, &t); err != nil {
		_ = tx.Rollback()
		return nil, nil, err
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return nil, nil, err
	}
	return &b, &t, nil
}

// CancelarBaixa marca a baixa como cancelada (nunca apaga) e recalcula o
// saldo do título sem ela. Cancelar duas vezes é rejeitado.
func (s *Service) CancelarBaixa(baixaID uint) (*titulo.Titulo, error) {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var b TituloBaixa
	if err := tx.First(&b, baixaID).Error; err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if b.Cancelada {
		_ = tx.Rollback()
		return nil, ErrBaixaJaCancelada
	}

	if err := tx.Model(&b).Update("cancelada", true).Error; err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	var t titulo.Titulo
	if err := tx.First(&t, b.TituloID).Error; err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := titulo.RecalcularSaldo(tx, &t); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	return &t, nil
}
