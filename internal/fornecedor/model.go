package fornecedor

import (
	"time"

	"github.com/gestorpag/api-contas-pagar/internal/tag"
	"gorm.io/gorm"
)

// Fornecedor representa um credor de títulos a pagar.
type Fornecedor struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome     string `gorm:"size:255;not null" json:"nome"`
	CNPJCPF  string `gorm:"size:14;index" json:"cnpjCpf"`
	Email    string `gorm:"size:255" json:"email"`
	Telefone string `gorm:"size:20" json:"telefone"`
	Contato  string `gorm:"size:255" json:"contato"`

	Tags []tag.Tag `gorm:"many2many:fornecedor_tags" json:"tags"`
}

// Migrate cria a tabela no banco de dados e a tabela de junção com tags.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Fornecedor{})
}
