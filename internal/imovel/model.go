package imovel

import "gorm.io/gorm"

// Imovel é a unidade ofertada para locação.
type Imovel struct {
	gorm.Model
	Endereco      string  `json:"endereco"`
	Numero        string  `json:"numero"`
	Complemento   string  `json:"complemento"`
	Bairro        string  `json:"bairro"`
	Cidade        string  `json:"cidade"`
	Uf            string  `json:"uf" gorm:"size:2"`
	Cep           string  `json:"cep"`
	Tipo          string  `json:"tipo"` // "Apartamento", "Casa", "Sala comercial"...
	MatriculaIptu string  `json:"matriculaIptu"`
	Quartos       int     `json:"quartos"`
	Vagas         int     `json:"vagas"`
	AreaM2        float64 `json:"areaM2"`
	Disponivel    bool    `json:"disponivel" gorm:"default:true"`
}
