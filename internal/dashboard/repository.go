package dashboard

import (
	"sort"
	"time"

	"github.com/gestorpag/api-contas-pagar/internal/titulo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ResumoBucket acumula quantidade e soma de saldo a pagar de um grupo de
// títulos.
type ResumoBucket struct {
	Quantidade int             `json:"quantidade"`
	Total      decimal.Decimal `json:"total"`
}

func (b *ResumoBucket) somar(saldo decimal.Decimal) {
	b.Quantidade++
	b.Total = b.Total.Add(saldo)
}

// ResumoEmpresa quebra os mesmos buckets por empresa.
type ResumoEmpresa struct {
	EmpresaID    uint         `json:"empresaId"`
	VencemHoje   ResumoBucket `json:"vencemHoje"`
	Vencidos     ResumoBucket `json:"vencidos"`
	VencemAmanha ResumoBucket `json:"vencemAmanha"`
}

// Resumo é a resposta do GET /dashboard, sempre recalculada na hora a
// partir dos títulos (nenhum estado materializado).
type Resumo struct {
	Data         string          `json:"data"`
	VencemHoje   ResumoBucket    `json:"vencemHoje"`
	Vencidos     ResumoBucket    `json:"vencidos"`
	VencemAmanha ResumoBucket    `json:"vencemAmanha"`
	PorEmpresa   []ResumoEmpresa `json:"porEmpresa"`
}

// Repository monta o resumo do dashboard.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func novoResumo(hoje time.Time) *Resumo {
	return &Resumo{
		Data:         hoje.Format("2006-01-02"),
		VencemHoje:   ResumoBucket{Total: decimal.Zero},
		Vencidos:     ResumoBucket{Total: decimal.Zero},
		VencemAmanha: ResumoBucket{Total: decimal.Zero},
	}
}

// Montar particiona os títulos não cancelados em vencem-hoje, vencidos com
// saldo em aberto e vencem-amanhã, somando saldo_pagar por bucket e por
// empresa. A soma é feita em Go com decimal.
func (r *Repository) Montar(hoje time.Time) (*Resumo, error) {
	inicioHoje := time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, hoje.Location())
	inicioAmanha := inicioHoje.AddDate(0, 0, 1)
	inicioDepois := inicioHoje.AddDate(0, 0, 2)

	var titulos []titulo.Titulo
	err := r.DB.
		Where("cancelado = ?", false).
		Where("data_vencimento < ?", inicioDepois).
		Find(&titulos).Error
	if err != nil {
		return nil, err
	}

	resumo := novoResumo(inicioHoje)
	porEmpresa := map[uint]*ResumoEmpresa{}
	empresaDe := func(id uint) *ResumoEmpresa {
		e, ok := porEmpresa[id]
		if !ok {
			e = &ResumoEmpresa{
				EmpresaID:    id,
				VencemHoje:   ResumoBucket{Total: decimal.Zero},
				Vencidos:     ResumoBucket{Total: decimal.Zero},
				VencemAmanha: ResumoBucket{Total: decimal.Zero},
			}
			porEmpresa[id] = e
		}
		return e
	}

	for i := range titulos {
		t := &titulos[i]
		venc := t.DataVencimento
		switch {
		case !venc.Before(inicioHoje) && venc.Before(inicioAmanha):
			resumo.VencemHoje.somar(t.SaldoPagar)
			empresaDe(t.EmpresaID).VencemHoje.somar(t.SaldoPagar)
		case venc.Before(inicioHoje) && t.SaldoPagar.GreaterThan(decimal.Zero):
			resumo.Vencidos.somar(t.SaldoPagar)
			empresaDe(t.EmpresaID).Vencidos.somar(t.SaldoPagar)
		case !venc.Before(inicioAmanha) && venc.Before(inicioDepois):
			resumo.VencemAmanha.somar(t.SaldoPagar)
			empresaDe(t.EmpresaID).VencemAmanha.somar(t.SaldoPagar)
		}
	}

	ids := make([]uint, 0, len(porEmpresa))
	for id := range porEmpresa {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		resumo.PorEmpresa = append(resumo.PorEmpresa, *porEmpresa[id])
	}
	return resumo, nil
}
