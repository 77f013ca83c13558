package configuracao

import (
	"time"

	"gorm.io/gorm"
)

// Configuracao é um registro único (id=1) com as seleções padrão usadas
// pelos filtros de listagem.
type Configuracao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UpdatedAt time.Time `json:"updatedAt"`

	EmpresaPadraoTitulosID   *uint `json:"empresaPadraoTitulosId"`
	EmpresaPadraoContratosID *uint `json:"empresaPadraoContratosId"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Configuracao{})
}
