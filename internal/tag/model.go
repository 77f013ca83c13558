package tag

import (
	"time"

	"gorm.io/gorm"
)

// Tag é um rótulo livre usado para classificar fornecedores.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome string `gorm:"size:100;not null;uniqueIndex" json:"nome"`
	Cor  string `gorm:"size:7" json:"cor"` // hex, ex: "#FF8800"
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Tag{})
}
