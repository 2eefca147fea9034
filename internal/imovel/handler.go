package imovel

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

// POST /imoveis
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarImovelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "campos obrigatórios não preenchidos", http.StatusBadRequest)
		return
	}

	i := Imovel{
		Endereco:      req.Endereco,
		Numero:        req.Numero,
		Complemento:   req.Complemento,
		Bairro:        req.Bairro,
		Cidade:        req.Cidade,
		Uf:            req.Uf,
		Cep:           req.Cep,
		Tipo:          req.Tipo,
		MatriculaIptu: req.MatriculaIptu,
		Quartos:       req.Quartos,
		Vagas:         req.Vagas,
		AreaM2:        req.AreaM2,
		Disponivel:    true,
	}
	if err := h.Repository.Salvar(h.DB, &i); err != nil {
		http.Error(w, "erro ao salvar imóvel", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(i)
}

// GET /imoveis (?disponiveis=true)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		imoveis []Imovel
		err     error
	)
	if r.URL.Query().Get("disponiveis") == "true" {
		imoveis, err = h.Repository.ListarDisponiveis(h.DB)
	} else {
		imoveis, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar imóveis", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(imoveis)
}

// GET /imoveis/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	i, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "imóvel não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(i)
}

// PUT /imoveis/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var i Imovel
	if err := json.NewDecoder(r.Body).Decode(&i); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	i.ID = uint(id)
	if err := h.Repository.Salvar(h.DB, &i); err != nil {
		http.Error(w, "erro ao atualizar imóvel", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(i)
}

// DELETE /imoveis/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir imóvel", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
