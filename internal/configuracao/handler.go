package configuracao

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// carregar busca o registro único, criando-o vazio na primeira leitura.
func (h *Handler) carregar() (*Configuracao, error) {
	var c Configuracao
	err := h.DB.First(&c, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = Configuracao{ID: 1}
		if err := h.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Buscar trata GET /configuracao
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	c, err := h.carregar()
	if err != nil {
		http.Error(w, "Erro ao buscar configuração", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Atualizar trata PUT /configuracao
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	c, err := h.carregar()
	if err != nil {
		http.Error(w, "Erro ao buscar configuração", http.StatusInternalServerError)
		return
	}

	var req struct {
		EmpresaPadraoTitulosID   *uint `json:"empresaPadraoTitulosId"`
		EmpresaPadraoContratosID *uint `json:"empresaPadraoContratosId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	c.EmpresaPadraoTitulosID = req.EmpresaPadraoTitulosID
	c.EmpresaPadraoContratosID = req.EmpresaPadraoContratosID
	if err := h.DB.Save(c).Error; err != nil {
		http.Error(w, "Erro ao salvar configuração", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}
