package busca

import (
	"encoding/json"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /busca?q=termo
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	termo := strings.TrimSpace(r.URL.Query().Get("q"))
	if termo == "" {
		http.Error(w, "informe o termo de busca em q", http.StatusBadRequest)
		return
	}

	resultado, err := h.Repository.Buscar(h.DB, termo)
	if err != nil {
		http.Error(w, "erro ao executar a busca", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resultado)
}
