package contrato

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gestorpag/api-contas-pagar/internal/titulo"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var (
	// ErrCamposFinanceirosBloqueados indica edição de campo financeiro em
	// contrato que já gerou títulos.
	ErrCamposFinanceirosBloqueados = errors.New("contrato com títulos gerados não permite alterar campos financeiros")
	// ErrContratoComTitulos indica exclusão de contrato que já gerou títulos.
	ErrContratoComTitulos = errors.New("contrato com títulos gerados não pode ser excluído; use o cancelamento")
)

type Handler struct {
	Repo     *Repository
	validate *validator.Validate
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, validate: validator.New()}
}

func (h *Handler) contarTitulos(contratoID uint) (int64, error) {
	return titulo.NewRepository(h.Repo.DB).ContarPorContrato(contratoID)
}

// Criar trata POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto ContratoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ParcelaInicial == 0 {
		dto.ParcelaInicial = 1
	}
	if dto.MascaraNumeracao == 0 {
		dto.MascaraNumeracao = MascaraNumeroParcelaTotal
	}

	c := Contrato{
		EmpresaID:        dto.EmpresaID,
		FornecedorID:     dto.FornecedorID,
		PlanoContasID:    dto.PlanoContasID,
		Descricao:        dto.Descricao,
		ValorTotal:       dto.ValorTotal,
		ValorParcela:     dto.ValorParcela,
		NumParcelas:      dto.NumParcelas,
		ParcelaInicial:   dto.ParcelaInicial,
		DataInicio:       dto.DataInicio,
		DiaVencimento:    dto.DiaVencimento,
		NumeroTitulo:     dto.NumeroTitulo,
		MascaraNumeracao: dto.MascaraNumeracao,
		Ativo:            true,
		Observacoes:      dto.Observacoes,
	}
	if err := validarCamposFinanceiros(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&c); err != nil {
		http.Error(w, "Erro ao criar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarTodos trata GET /contratos (filtro opcional empresaId)
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	var empresaID uint
	if v, err := strconv.Atoi(r.URL.Query().Get("empresaId")); err == nil {
		empresaID = uint(v)
	}

	contratos, err := h.Repo.ListarTodos(empresaID)
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contratos)
}

// BuscarPorID trata GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Atualizar trata PUT /contratos/{id}. Com títulos gerados, só os campos
// não financeiros podem mudar; com atualizarTitulos=true a mudança é
// propagada aos títulos sem baixa ativa.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	var dto ContratoUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ParcelaInicial == 0 {
		dto.ParcelaInicial = 1
	}
	if dto.MascaraNumeracao == 0 {
		dto.MascaraNumeracao = c.MascaraNumeracao
	}

	gerados, err := h.contarTitulos(c.ID)
	if err != nil {
		http.Error(w, "Erro ao verificar títulos do contrato", http.StatusInternalServerError)
		return
	}

	mudouFinanceiro := !dto.ValorTotal.Equal(c.ValorTotal) ||
		dto.NumParcelas != c.NumParcelas ||
		dto.ParcelaInicial != c.ParcelaInicial ||
		!dto.DataInicio.Equal(c.DataInicio) ||
		dto.DiaVencimento != c.DiaVencimento
	if gerados > 0 && mudouFinanceiro {
		http.Error(w, ErrCamposFinanceirosBloqueados.Error(), http.StatusConflict)
		return
	}

	c.PlanoContasID = dto.PlanoContasID
	c.Descricao = dto.Descricao
	c.ValorTotal = dto.ValorTotal
	c.ValorParcela = dto.ValorParcela
	c.NumParcelas = dto.NumParcelas
	c.ParcelaInicial = dto.ParcelaInicial
	c.DataInicio = dto.DataInicio
	c.DiaVencimento = dto.DiaVencimento
	c.NumeroTitulo = dto.NumeroTitulo
	c.MascaraNumeracao = dto.MascaraNumeracao
	c.Observacoes = dto.Observacoes
	if dto.Ativo != nil {
		c.Ativo = *dto.Ativo
	}
	if err := validarCamposFinanceiros(c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repo.Atualizar(c); err != nil {
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}

	resp := ContratoUpdateResponse{Contrato: c}
	if dto.AtualizarTitulos {
		atualizados, err := AtualizarTitulos(h.Repo.DB, c)
		if err != nil {
			http.Error(w, "Erro ao propagar alterações para os títulos", http.StatusInternalServerError)
			return
		}
		resp.TitulosAtualizados = atualizados
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GerarTitulos trata POST /contratos/{id}/gerar-titulos
func (h *Handler) GerarTitulos(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar contrato", http.StatusInternalServerError)
		return
	}

	titulos, err := GerarTitulos(h.Repo.DB, c)
	if err != nil {
		switch {
		case errors.Is(err, ErrContratoJaGerado):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrContratoIncompleto):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Erro ao gerar títulos", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(titulos)
}

// Cancelar trata POST /contratos/{id}/cancelar
func (h *Handler) Cancelar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar contrato", http.StatusInternalServerError)
		return
	}

	res, err := CancelarContrato(h.Repo.DB, c)
	if err != nil {
		http.Error(w, "Erro ao cancelar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Deletar trata DELETE /contratos/{id}; só permitido sem títulos gerados.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}

	gerados, err := h.contarTitulos(uint(id))
	if err != nil {
		http.Error(w, "Erro ao verificar títulos do contrato", http.StatusInternalServerError)
		return
	}
	if gerados > 0 {
		http.Error(w, ErrContratoComTitulos.Error(), http.StatusConflict)
		return
	}

	if err := h.Repo.Deletar(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao deletar contrato", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
