package planocontas

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

type PlanoContasRequest struct {
	Codigo     string `json:"codigo"`
	Nome       string `json:"nome"`
	ContaPaiID *uint  `json:"contaPaiId"`
}

// Criar trata POST /plano-contas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req PlanoContasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Codigo == "" || req.Nome == "" {
		http.Error(w, "Os campos 'codigo' e 'nome' são obrigatórios", http.StatusBadRequest)
		return
	}

	if err := h.Repository.ValidarContaPai(h.DB, 0, req.ContaPaiID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Conta pai não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao validar conta pai", http.StatusInternalServerError)
		return
	}

	p := PlanoContas{Codigo: req.Codigo, Nome: req.Nome, ContaPaiID: req.ContaPaiID}
	if err := h.Repository.Criar(h.DB, &p); err != nil {
		http.Error(w, "Erro ao criar conta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// ListarTodas trata GET /plano-contas
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	contas, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar contas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contas)
}

// BuscarPorID trata GET /plano-contas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Conta não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar conta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// Atualizar trata PUT /plano-contas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Conta não encontrada", http.StatusNotFound)
		return
	}

	var req PlanoContasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Codigo == "" || req.Nome == "" {
		http.Error(w, "Os campos 'codigo' e 'nome' são obrigatórios", http.StatusBadRequest)
		return
	}

	if err := h.Repository.ValidarContaPai(h.DB, p.ID, req.ContaPaiID); err != nil {
		switch {
		case errors.Is(err, ErrCicloContaPai):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Conta pai não encontrada", http.StatusNotFound)
		default:
			http.Error(w, "Erro ao validar conta pai", http.StatusInternalServerError)
		}
		return
	}

	p.Codigo = req.Codigo
	p.Nome = req.Nome
	p.ContaPaiID = req.ContaPaiID
	if err := h.Repository.Atualizar(h.DB, p); err != nil {
		http.Error(w, "Erro ao atualizar conta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// Deletar trata DELETE /plano-contas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Conta não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao deletar conta", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
