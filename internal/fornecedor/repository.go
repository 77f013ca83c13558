package fornecedor

import (
	"github.com/gestorpag/api-contas-pagar/internal/tag"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, f *Fornecedor) error
	BuscarPorID(db *gorm.DB, id uint) (*Fornecedor, error)
	ListarTodos(db *gorm.DB) ([]Fornecedor, error)
	Atualizar(db *gorm.DB, f *Fornecedor) error
	Deletar(db *gorm.DB, id uint) error
	SubstituirTags(db *gorm.DB, f *Fornecedor, tags []tag.Tag) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, f *Fornecedor) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Fornecedor, error) {
	var f Fornecedor
	if err := db.Preload("Tags").First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Fornecedor, error) {
	var fornecedores []Fornecedor
	err := db.Preload("Tags").Order("nome ASC").Find(&fornecedores).Error
	return fornecedores, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, f *Fornecedor) error {
	return db.Save(f).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	res := db.Delete(&Fornecedor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SubstituirTags troca o conjunto de tags do fornecedor pelo informado.
func (r *repositoryImpl) SubstituirTags(db *gorm.DB, f *Fornecedor, tags []tag.Tag) error {
	return db.Model(f).Association("Tags").Replace(tags)
}
