package fatura

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fdelfino93/locacao-sub002/internal/contrato"
	"github.com/fdelfino93/locacao-sub002/internal/desconto"
	"github.com/fdelfino93/locacao-sub002/internal/rateio"
)

type Handler struct {
	DB        *gorm.DB
	Contratos contrato.Repositorio
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Contratos: contrato.NovoRepositorio(db)}
}

// DescontoRequest é um lançamento avulso aplicado só a este demonstrativo.
type DescontoRequest struct {
	Tipo   desconto.Tipo `json:"tipo"`
	Rotulo string        `json:"rotulo"`
	Valor  float64       `json:"valor"`
}

type DemonstrativoRequest struct {
	Descontos []DescontoRequest `json:"descontos"`
}

// DemonstrativoResposta anexa ao demonstrativo a divisão do repasse pelo
// rateio persistido.
type DemonstrativoResposta struct {
	Demonstrativo
	Repasses []Linha `json:"repasses,omitempty"`
}

// POST /contratos/{id}/demonstrativo (?formato=xlsx exporta a planilha)
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	c, err := h.Contratos.BuscarPorID(r.Context(), uint(id))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}

	var req DemonstrativoRequest
	if r.Body != nil {
		// Corpo vazio é aceito: demonstrativo sem lançamentos avulsos.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	ledger := desconto.NovoLedger()
	for _, dr := range req.Descontos {
		if _, ok := ledger.Adicionar(dr.Tipo, dr.Rotulo, decimal.NewFromFloat(dr.Valor)); !ok {
			http.Error(w, "desconto inválido: tipo desconhecido ou valor não positivo", http.StatusBadRequest)
			return
		}
	}

	d := GerarDemonstrativo(c, ledger)

	if r.URL.Query().Get("formato") == "xlsx" {
		planilha, err := ExportarXLSX(&d)
		if err != nil {
			http.Error(w, "erro ao gerar a planilha", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=demonstrativo.xlsx")
		if err := planilha.Write(w); err != nil {
			http.Error(w, "erro ao enviar a planilha", http.StatusInternalServerError)
		}
		return
	}

	resposta := DemonstrativoResposta{Demonstrativo: d}
	if linhas, err := h.Contratos.BuscarLocadores(r.Context(), uint(id)); err == nil && len(linhas) > 0 {
		alocacoes := make([]rateio.Alocacao, 0, len(linhas))
		for _, l := range linhas {
			alocacoes = append(alocacoes, rateio.Alocacao{
				LocadorID:       l.LocadorID,
				ContaBancariaID: l.ContaBancariaID,
				Porcentagem:     l.Porcentagem,
			})
		}
		resposta.Repasses = RatearRepasse(d.RepasseLocadores, alocacoes)
	}

	json.NewEncoder(w).Encode(resposta)
}
