package planocontas

import (
	"time"

	"gorm.io/gorm"
)

// PlanoContas é um nó da árvore de contas contábeis. ContaPaiID aponta para
// o nó superior; a cadeia de ancestrais deve ser acíclica.
type PlanoContas struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Codigo     string `gorm:"size:20;not null;uniqueIndex" json:"codigo"`
	Nome       string `gorm:"size:255;not null" json:"nome"`
	ContaPaiID *uint  `gorm:"index" json:"contaPaiId,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PlanoContas{})
}
