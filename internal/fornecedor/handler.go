package fornecedor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gestorpag/api-contas-pagar/internal/tag"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	validate   *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		validate:   validator.New(),
	}
}

// FornecedorRequest define o corpo de criação/atualização de um fornecedor.
type FornecedorRequest struct {
	Nome     string `json:"nome" validate:"required"`
	CNPJCPF  string `json:"cnpjCpf" validate:"omitempty,numeric,min=11,max=14"`
	Email    string `json:"email" validate:"omitempty,email"`
	Telefone string `json:"telefone"`
	Contato  string `json:"contato"`
	TagIDs   []uint `json:"tagIds"`
}

func (h *Handler) carregarTags(ids []uint) ([]tag.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []tag.Tag
	if err := h.DB.Find(&tags, ids).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Criar trata POST /fornecedores
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req FornecedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	tags, err := h.carregarTags(req.TagIDs)
	if err != nil {
		http.Error(w, "Erro ao carregar tags", http.StatusInternalServerError)
		return
	}

	f := Fornecedor{
		Nome:     req.Nome,
		CNPJCPF:  req.CNPJCPF,
		Email:    req.Email,
		Telefone: req.Telefone,
		Contato:  req.Contato,
		Tags:     tags,
	}
	if err := h.Repository.Criar(h.DB, &f); err != nil {
		http.Error(w, "Erro ao criar fornecedor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

// ListarTodos trata GET /fornecedores
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	fornecedores, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar fornecedores", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fornecedores)
}

// BuscarPorID trata GET /fornecedores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Fornecedor não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar fornecedor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// Atualizar trata PUT /fornecedores/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Fornecedor não encontrado", http.StatusNotFound)
		return
	}

	var req FornecedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	f.Nome = req.Nome
	f.CNPJCPF = req.CNPJCPF
	f.Email = req.Email
	f.Telefone = req.Telefone
	f.Contato = req.Contato
	if err := h.Repository.Atualizar(h.DB, f); err != nil {
		http.Error(w, "Erro ao atualizar fornecedor", http.StatusInternalServerError)
		return
	}

	tags, err := h.carregarTags(req.TagIDs)
	if err != nil {
		http.Error(w, "Erro ao carregar tags", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.SubstituirTags(h.DB, f, tags); err != nil {
		http.Error(w, "Erro ao atualizar tags do fornecedor", http.StatusInternalServerError)
		return
	}
	f.Tags = tags

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// Deletar trata DELETE /fornecedores/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Fornecedor não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao deletar fornecedor", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
