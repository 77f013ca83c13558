package empresa

import (
	"time"

	"gorm.io/gorm"
)

// Empresa representa uma empresa pagadora do grupo.
type Empresa struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	RazaoSocial  string `gorm:"size:255;not null" json:"razaoSocial"`
	NomeFantasia string `gorm:"size:255" json:"nomeFantasia"`
	CNPJ         string `gorm:"size:14;not null;index" json:"cnpj"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Empresa{})
}
