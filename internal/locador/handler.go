package locador

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var validate = validator.New()

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /locadores
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarLocadorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "campos obrigatórios não preenchidos", http.StatusBadRequest)
		return
	}

	l := Locador{
		Nome:     req.Nome,
		CpfCnpj:  req.CpfCnpj,
		Email:    req.Email,
		Telefone: req.Telefone,
		Endereco: req.Endereco,
		Ativo:    true,
	}
	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		http.Error(w, "erro ao salvar locador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// GET /locadores (?ativos=true filtra o diretório para o formulário de contrato)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		locadores []Locador
		err       error
	)
	if r.URL.Query().Get("ativos") == "true" {
		locadores, err = h.Repository.ListarAtivos(h.DB)
	} else {
		locadores, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar locadores", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(locadores)
}

// GET /locadores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "locador não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(l)
}

// PUT /locadores/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var l Locador
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	l.ID = uint(id)
	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		http.Error(w, "erro ao atualizar locador", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(l)
}

// DELETE /locadores/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir locador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// POST /locadores/{id}/contas
func (h *Handler) CriarConta(w http.ResponseWriter, r *http.Request) {
	locadorID, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req CriarContaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "campos obrigatórios não preenchidos", http.StatusBadRequest)
		return
	}

	c := ContaBancaria{
		LocadorID: uint(locadorID),
		Banco:     req.Banco,
		Agencia:   req.Agencia,
		Conta:     req.Conta,
		TipoConta: req.TipoConta,
		ChavePix:  req.ChavePix,
		Titular:   req.Titular,
		Principal: req.Principal,
	}
	if err := h.Repository.SalvarConta(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar conta bancária", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /locadores/{id}/contas
func (h *Handler) ListarContas(w http.ResponseWriter, r *http.Request) {
	locadorID, _ := strconv.Atoi(mux.Vars(r)["id"])
	contas, err := h.Repository.ListarContas(h.DB, uint(locadorID))
	if err != nil {
		http.Error(w, "erro ao listar contas bancárias", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(contas)
}

// DELETE /contas/{id}
func (h *Handler) DeletarConta(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.DeletarConta(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir conta bancária", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
