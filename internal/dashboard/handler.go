package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Resumo trata GET /dashboard. Aceita ?data=YYYY-MM-DD para consultar outro
// dia de referência (padrão: hoje).
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	hoje := time.Now()
	if v := r.URL.Query().Get("data"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "Parâmetro 'data' inválido, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		hoje = parsed
	}

	resumo, err := h.Repo.Montar(hoje)
	if err != nil {
		http.Error(w, "Erro ao montar o dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}
