package empresa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula o DB e o Repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	validate   *validator.Validate
}

// NewHandler cria um novo handler de empresas
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		validate:   validator.New(),
	}
}

// EmpresaRequest define o corpo de criação/atualização de uma empresa.
type EmpresaRequest struct {
	RazaoSocial  string `json:"razaoSocial" validate:"required"`
	NomeFantasia string `json:"nomeFantasia"`
	CNPJ         string `json:"cnpj" validate:"required,len=14,numeric"`
}

// Criar trata POST /empresas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req EmpresaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	e := Empresa{
		RazaoSocial:  req.RazaoSocial,
		NomeFantasia: req.NomeFantasia,
		CNPJ:         req.CNPJ,
	}
	if err := h.Repository.Criar(h.DB, &e); err != nil {
		http.Error(w, "Erro ao criar empresa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// ListarTodas trata GET /empresas
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	empresas, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar empresas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(empresas)
}

// BuscarPorID trata GET /empresas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	e, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Empresa não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar empresa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

// Atualizar trata PUT /empresas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	e, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Empresa não encontrada", http.StatusNotFound)
		return
	}

	var req EmpresaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	e.RazaoSocial = req.RazaoSocial
	e.NomeFantasia = req.NomeFantasia
	e.CNPJ = req.CNPJ
	if err := h.Repository.Atualizar(h.DB, e); err != nil {
		http.Error(w, "Erro ao atualizar empresa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

// Deletar trata DELETE /empresas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Empresa não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao deletar empresa", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
