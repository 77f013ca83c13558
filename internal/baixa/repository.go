package baixa

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de baixas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorID busca uma única baixa pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*TituloBaixa, error) {
	var b TituloBaixa
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// ListarPorTitulo busca todas as baixas de um título, inclusive as
// canceladas (histórico completo).
func (r *Repository) ListarPorTitulo(tituloID uint) ([]TituloBaixa, error) {
	var baixas []TituloBaixa
	err := r.DB.
		Where("titulo_id = ?", tituloID).
		Order("data_baixa ASC").
		Find(&baixas).Error
	return baixas, err
}
