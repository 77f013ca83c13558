package titulo

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Títulos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// Criar insere um título.
func (r *Repository) Criar(t *Titulo) error {
	return r.DB.Create(t).Error
}

// CriarEmLote insere vários títulos de uma vez (ignora se vazio).
func (r *Repository) CriarEmLote(titulos []*Titulo) error {
	if len(titulos) == 0 {
		return nil
	}
	return r.DB.Create(titulos).Error
}

// BuscarPorID busca um único título pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*Titulo, error) {
	var t Titulo
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Filtro restringe a listagem de títulos.
type Filtro struct {
	EmpresaID     uint
	FornecedorID  uint
	ContratoID    uint
	Status        int
	VencimentoDe  *time.Time
	VencimentoAte *time.Time
}

// Listar busca títulos aplicando os filtros informados.
func (r *Repository) Listar(f Filtro) ([]Titulo, error) {
	q := r.DB.Model(&Titulo{})
	if f.EmpresaID != 0 {
		q = q.Where("empresa_id = ?", f.EmpresaID)
	}
	if f.FornecedorID != 0 {
		q = q.Where("fornecedor_id = ?", f.FornecedorID)
	}
	if f.ContratoID != 0 {
		q = q.Where("contrato_id = ?", f.ContratoID)
	}
	if f.Status != 0 {
		q = q.Where("status = ?", f.Status)
	}
	if f.VencimentoDe != nil {
		q = q.Where("data_vencimento >= ?", *f.VencimentoDe)
	}
	if f.VencimentoAte != nil {
		q = q.Where("data_vencimento <= ?", *f.VencimentoAte)
	}

	var titulos []Titulo
	err := q.Order("data_vencimento ASC").Find(&titulos).Error
	return titulos, err
}

// ListarPorContrato busca os títulos gerados por um contrato.
func (r *Repository) ListarPorContrato(contratoID uint) ([]Titulo, error) {
	var titulos []Titulo
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("parcela ASC").
		Find(&titulos).Error
	return titulos, err
}

// ContarPorContrato conta os títulos já gerados para um contrato.
func (r *Repository) ContarPorContrato(contratoID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&Titulo{}).
		Where("contrato_id = ?", contratoID).
		Count(&n).Error
	return n, err
}

// Atualizar atualiza todos os campos de um título existente (Save exige PK).
func (r *Repository) Atualizar(t *Titulo) error {
	return r.DB.Save(t).Error
}

// Cancelar marca o título como cancelado (status 4). O registro nunca é
// apagado fisicamente.
func (r *Repository) Cancelar(id uint) error {
	res := r.DB.Model(&Titulo{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"cancelado": true,
			"status":    StatusCancelado,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
