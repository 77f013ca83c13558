package tag

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, t *Tag) error
	BuscarPorID(db *gorm.DB, id uint) (*Tag, error)
	ListarTodas(db *gorm.DB) ([]Tag, error)
	Atualizar(db *gorm.DB, t *Tag) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, t *Tag) error {
	return db.Create(t).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Tag, error) {
	var t Tag
	if err := db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Tag, error) {
	var tags []Tag
	err := db.Order("nome ASC").Find(&tags).Error
	return tags, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, t *Tag) error {
	return db.Save(t).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	res := db.Delete(&Tag{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
