package titulo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrValorBloqueado indica tentativa de alterar o valor de um título que já
// recebeu baixas ativas.
var ErrValorBloqueado = errors.New("título com baixas ativas não permite alteração de valor")

type Handler struct {
	Repo     *Repository
	validate *validator.Validate
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, validate: validator.New()}
}

// Criar trata POST /titulos (lançamento manual de título avulso)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto TituloCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ValorTotal.LessThanOrEqual(decimal.Zero) {
		http.Error(w, "O campo 'valorTotal' deve ser maior que zero", http.StatusBadRequest)
		return
	}

	emissao := dto.DataEmissao
	if emissao.IsZero() {
		emissao = time.Now()
	}

	t := Titulo{
		EmpresaID:      dto.EmpresaID,
		FornecedorID:   dto.FornecedorID,
		PlanoContasID:  dto.PlanoContasID,
		NumeroTitulo:   dto.NumeroTitulo,
		DataEmissao:    emissao,
		DataVencimento: dto.DataVencimento,
		ValorTotal:     dto.ValorTotal,
		SaldoPagar:     dto.ValorTotal,
		Descricao:      dto.Descricao,
		Observacoes:    dto.Observacoes,
		Status:         StatusAberto,
	}
	if err := h.Repo.Criar(&t); err != nil {
		http.Error(w, "Erro ao criar título", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// Listar trata GET /titulos com filtros opcionais na query string:
// empresaId, fornecedorId, contratoId, status, vencimentoDe, vencimentoAte.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f Filtro
	if v, err := strconv.Atoi(q.Get("empresaId")); err == nil {
		f.EmpresaID = uint(v)
	}
	if v, err := strconv.Atoi(q.Get("fornecedorId")); err == nil {
		f.FornecedorID = uint(v)
	}
	if v, err := strconv.Atoi(q.Get("contratoId")); err == nil {
		f.ContratoID = uint(v)
	}
	if v, err := strconv.Atoi(q.Get("status")); err == nil {
		f.Status = v
	}
	if v, err := time.Parse("2006-01-02", q.Get("vencimentoDe")); err == nil {
		f.VencimentoDe = &v
	}
	if v, err := time.Parse("2006-01-02", q.Get("vencimentoAte")); err == nil {
		f.VencimentoAte = &v
	}

	titulos, err := h.Repo.Listar(f)
	if err != nil {
		http.Error(w, "Erro ao listar títulos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(titulos)
}

// BuscarPorID trata GET /titulos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do título inválido", http.StatusBadRequest)
		return
	}

	t, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Título não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar título", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// Atualizar trata PUT /titulos/{id}. Campos não financeiros são sempre
// editáveis; o valor total só enquanto não houver baixa ativa.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do título inválido", http.StatusBadRequest)
		return
	}

	t, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Título não encontrado", http.StatusNotFound)
		return
	}
	if t.Cancelado {
		http.Error(w, "Título cancelado não pode ser alterado", http.StatusConflict)
		return
	}

	var dto TituloUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	if !dto.ValorTotal.Equal(t.ValorTotal) {
		if dto.ValorTotal.LessThanOrEqual(decimal.Zero) {
			http.Error(w, "O campo 'valorTotal' deve ser maior que zero", http.StatusBadRequest)
			return
		}
		ativas, err := ContarBaixasAtivas(h.Repo.DB, t.ID)
		if err != nil {
			http.Error(w, "Erro ao verificar baixas do título", http.StatusInternalServerError)
			return
		}
		if ativas > 0 {
			http.Error(w, ErrValorBloqueado.Error(), http.StatusConflict)
			return
		}
		t.ValorTotal = dto.ValorTotal
		t.SaldoPagar = dto.ValorTotal
	}

	t.PlanoContasID = dto.PlanoContasID
	t.NumeroTitulo = dto.NumeroTitulo
	t.DataVencimento = dto.DataVencimento
	t.Descricao = dto.Descricao
	t.Observacoes = dto.Observacoes

	if err := h.Repo.Atualizar(t); err != nil {
		http.Error(w, "Erro ao atualizar título", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// Cancelar trata PUT /titulos/{id}/cancelar
func (h *Handler) Cancelar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do título inválido", http.StatusBadRequest)
		return
	}

	t, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Título não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar título", http.StatusInternalServerError)
		return
	}
	if t.Cancelado {
		http.Error(w, "Título já está cancelado", http.StatusConflict)
		return
	}

	if err := h.Repo.Cancelar(t.ID); err != nil {
		http.Error(w, "Erro ao cancelar título", http.StatusInternalServerError)
		return
	}

	t.Cancelado = true
	t.Status = StatusCancelado
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}
