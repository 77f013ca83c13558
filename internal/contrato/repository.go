package contrato

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Contratos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um contrato.
func (r *Repository) Criar(c *Contrato) error {
	return r.DB.Create(c).Error
}

// BuscarPorID busca um único contrato pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*Contrato, error) {
	var c Contrato
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListarTodos busca contratos, opcionalmente filtrados por empresa.
func (r *Repository) ListarTodos(empresaID uint) ([]Contrato, error) {
	q := r.DB.Model(&Contrato{})
	if empresaID != 0 {
		q = q.Where("empresa_id = ?", empresaID)
	}
	var contratos []Contrato
	err := q.Order("id ASC").Find(&contratos).Error
	return contratos, err
}

// Atualizar atualiza todos os campos de um contrato existente (Save exige PK).
func (r *Repository) Atualizar(c *Contrato) error {
	return r.DB.Save(c).Error
}

// Deletar apaga o contrato; retorna gorm.ErrRecordNotFound se nada foi
// deletado.
func (r *Repository) Deletar(id uint) error {
	res := r.DB.Delete(&Contrato{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
