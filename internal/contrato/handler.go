package contrato

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/fdelfino93/locacao-sub002/internal/rateio"
)

type Handler struct {
	DB          *gorm.DB
	Repositorio Repositorio
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repositorio: NovoRepositorio(db)}
}

// POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req ContratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	f := NovoFormulario(NovoModoCriacao(), h.Repositorio)
	aplicarRequest(f, &req)

	// Salvar já roda a trava de envio; aqui só se traduz o resultado.
	resultado, err := f.Salvar(r.Context())
	if err != nil {
		if EhErroDeValidacao(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "erro ao salvar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resultado)
}

// GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	contratos, err := h.Repositorio.ListarTodos(r.Context())
	if err != nil {
		http.Error(w, "erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(contratos)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	f := NovoFormulario(NovoModoVisualizacao(uint(id)), h.Repositorio)
	if err := f.Carregar(r.Context()); err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(FormularioResposta{
		Contrato:      f.Rascunho,
		Locadores:     f.Locadores,
		Locatarios:    f.Locatarios,
		DadosCorretor: f.DadosCorretor,
	})
}

// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req ContratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	f := NovoFormulario(NovoModoEdicao(uint(id)), h.Repositorio)
	if err := f.Carregar(r.Context()); err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}
	aplicarRequest(f, &req)

	resultado, err := f.Salvar(r.Context())
	if err != nil {
		if EhErroDeValidacao(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resultado)
}

// DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repositorio.Deletar(r.Context(), uint(id)); err != nil {
		http.Error(w, "erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GET /contratos/{id}/rateio/validacao
//
// Exposto para a tela exibir o status do rateio; o resultado não bloqueia o
// salvamento do contrato.
func (h *Handler) ValidacaoRateio(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	linhas, err := h.Repositorio.BuscarLocadores(r.Context(), uint(id))
	if err != nil {
		http.Error(w, "erro ao buscar o rateio do contrato", http.StatusInternalServerError)
		return
	}

	alocacoes := make([]rateio.Alocacao, 0, len(linhas))
	for _, l := range linhas {
		alocacoes = append(alocacoes, rateio.Alocacao{
			LocadorID:       l.LocadorID,
			ContaBancariaID: l.ContaBancariaID,
			Porcentagem:     l.Porcentagem,
		})
	}
	json.NewEncoder(w).Encode(rateio.Validar(alocacoes))
}
