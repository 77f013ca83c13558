package planocontas

import (
	"errors"

	"gorm.io/gorm"
)

// ErrCicloContaPai indica que a conta pai informada criaria um ciclo na
// cadeia de ancestrais.
var ErrCicloContaPai = errors.New("conta pai criaria um ciclo na árvore de contas")

type Repository interface {
	Criar(db *gorm.DB, p *PlanoContas) error
	BuscarPorID(db *gorm.DB, id uint) (*PlanoContas, error)
	ListarTodas(db *gorm.DB) ([]PlanoContas, error)
	Atualizar(db *gorm.DB, p *PlanoContas) error
	Deletar(db *gorm.DB, id uint) error
	ValidarContaPai(db *gorm.DB, contaID uint, contaPaiID *uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *PlanoContas) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*PlanoContas, error) {
	var p PlanoContas
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]PlanoContas, error) {
	var contas []PlanoContas
	err := db.Order("codigo ASC").Find(&contas).Error
	return contas, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, p *PlanoContas) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	res := db.Delete(&PlanoContas{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ValidarContaPai sobe a cadeia de ancestrais a partir de contaPaiID e
// retorna ErrCicloContaPai se encontrar contaID no caminho. contaID zero
// (conta ainda não criada) nunca forma ciclo.
func (r *repositoryImpl) ValidarContaPai(db *gorm.DB, contaID uint, contaPaiID *uint) error {
	visitadas := map[uint]bool{}
	atual := contaPaiID
	for atual != nil {
		if *atual == contaID || visitadas[*atual] {
			return ErrCicloContaPai
		}
		visitadas[*atual] = true

		var pai PlanoContas
		if err := db.First(&pai, *atual).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return gorm.ErrRecordNotFound
			}
			return err
		}
		atual = pai.ContaPaiID
	}
	return nil
}
