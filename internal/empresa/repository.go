package empresa

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, e *Empresa) error
	BuscarPorID(db *gorm.DB, id uint) (*Empresa, error)
	ListarTodas(db *gorm.DB) ([]Empresa, error)
	Atualizar(db *gorm.DB, e *Empresa) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, e *Empresa) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Empresa, error) {
	var e Empresa
	if err := db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Empresa, error) {
	var empresas []Empresa
	err := db.Order("razao_social ASC").Find(&empresas).Error
	return empresas, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, e *Empresa) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	res := db.Delete(&Empresa{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
