package locatario

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

// POST /locatarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarLocatarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "campos obrigatórios não preenchidos", http.StatusBadRequest)
		return
	}

	l := Locatario{
		Nome:        req.Nome,
		CpfCnpj:     req.CpfCnpj,
		Rg:          req.Rg,
		Email:       req.Email,
		Telefone:    req.Telefone,
		Profissao:   req.Profissao,
		EstadoCivil: req.EstadoCivil,
		Endereco:    req.Endereco,
	}
	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		http.Error(w, "erro ao salvar locatário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// GET /locatarios
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	locatarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar locatários", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(locatarios)
}

// GET /locatarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "locatário não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(l)
}

// PUT /locatarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var l Locatario
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	l.ID = uint(id)
	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		http.Error(w, "erro ao atualizar locatário", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(l)
}

// DELETE /locatarios/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir locatário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
