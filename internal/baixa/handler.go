package baixa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gestorpag/api-contas-pagar/internal/titulo"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Handler struct {
	Repo    *Repository
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:    NewRepository(db),
		Service: NewService(db),
	}
}

// BaixaCreateDTO é o corpo do POST /titulos/{id}/baixas.
type BaixaCreateDTO struct {
	DataBaixa  time.Time       `json:"dataBaixa"`
	ValorBaixa decimal.Decimal `json:"valorBaixa"`
	Juros      decimal.Decimal `json:"juros"`
	Desconto   decimal.Decimal `json:"desconto"`
	Observacao string          `json:"observacao"`
}

// BaixaResponse devolve a baixa criada junto com o título recalculado.
type BaixaResponse struct {
	Baixa  *TituloBaixa   `json:"baixa"`
	Titulo *titulo.Titulo `json:"titulo"`
}

// Registrar trata POST /titulos/{id}/baixas
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do título inválido", http.StatusBadRequest)
		return
	}

	var dto BaixaCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	b, t, err := h.Service.RegistrarBaixa(uint(id), RegistrarBaixaInput{
		DataBaixa:  dto.DataBaixa,
		ValorBaixa: dto.ValorBaixa,
		Juros:      dto.Juros,
		Desconto:   dto.Desconto,
		Observacao: dto.Observacao,
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Título não encontrado", http.StatusNotFound)
		case errors.Is(err, ErrTituloCancelado):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrValorBaixaInvalido),
			errors.Is(err, ErrValorPagoInvalido),
			errors.Is(err, ErrSaldoExcedido):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Erro ao registrar baixa", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(BaixaResponse{Baixa: b, Titulo: t})
}

// ListarPorTitulo trata GET /titulos/{id}/baixas
func (h *Handler) ListarPorTitulo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do título inválido", http.StatusBadRequest)
		return
	}

	baixas, err := h.Repo.ListarPorTitulo(uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar baixas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(baixas)
}

// Cancelar trata POST /baixas/{id}/cancelar
func (h *Handler) Cancelar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da baixa inválido", http.StatusBadRequest)
		return
	}

	t, err := h.Service.CancelarBaixa(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Baixa não encontrada", http.StatusNotFound)
		case errors.Is(err, ErrBaixaJaCancelada):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "Erro ao cancelar baixa", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}
