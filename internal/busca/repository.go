package busca

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fdelfino93/locacao-sub002/internal/contrato"
	"github.com/fdelfino93/locacao-sub002/internal/imovel"
	"github.com/fdelfino93/locacao-sub002/internal/locador"
	"github.com/fdelfino93/locacao-sub002/internal/locatario"
)

// limitePorEntidade limita cada grupo do resultado da busca global.
const limitePorEntidade = 10

// Resultado agrupa as ocorrências do termo por entidade.
type Resultado struct {
	Locadores  []locador.Locador     `json:"locadores"`
	Locatarios []locatario.Locatario `json:"locatarios"`
	Imoveis    []imovel.Imovel       `json:"imoveis"`
	Contratos  []contrato.Contrato   `json:"contratos"`
}

type Repository interface {
	Buscar(db *gorm.DB, termo string) (*Resultado, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Buscar roda o termo em todas as entidades. A falha de um grupo não derruba
// os demais; o grupo fica vazio e a falha sai no log.
func (r *repositoryImpl) Buscar(db *gorm.DB, termo string) (*Resultado, error) {
	padrao := "%" + termo + "%"
	resultado := &Resultado{}

	avisar := func(grupo string, err error) {
		if err != nil {
			logrus.WithError(err).WithField("grupo", grupo).Warn("busca: grupo indisponível")
		}
	}

	avisar("locadores", db.Where("nome ILIKE ? OR cpf_cnpj ILIKE ?", padrao, padrao).
		Limit(limitePorEntidade).Find(&resultado.Locadores).Error)

	avisar("locatarios", db.Where("nome ILIKE ? OR cpf_cnpj ILIKE ?", padrao, padrao).
		Limit(limitePorEntidade).Find(&resultado.Locatarios).Error)

	avisar("imoveis", db.Where("endereco ILIKE ? OR bairro ILIKE ? OR cidade ILIKE ?", padrao, padrao, padrao).
		Limit(limitePorEntidade).Find(&resultado.Imoveis).Error)

	avisar("contratos", db.Joins("JOIN imoveis ON imoveis.id = contratos.imovel_id").
		Where("imoveis.endereco ILIKE ? OR CAST(contratos.id AS TEXT) = ?", padrao, termo).
		Limit(limitePorEntidade).Find(&resultado.Contratos).Error)

	return resultado, nil
}
