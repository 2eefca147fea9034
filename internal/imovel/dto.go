package imovel

type CriarImovelRequest struct {
	Endereco      string  `json:"endereco" validate:"required"`
	Numero        string  `json:"numero"`
	Complemento   string  `json:"complemento"`
	Bairro        string  `json:"bairro"`
	Cidade        string  `json:"cidade" validate:"required"`
	Uf            string  `json:"uf" validate:"required,len=2"`
	Cep           string  `json:"cep"`
	Tipo          string  `json:"tipo" validate:"required"`
	MatriculaIptu string  `json:"matriculaIptu"`
	Quartos       int     `json:"quartos" validate:"gte=0"`
	Vagas         int     `json:"vagas" validate:"gte=0"`
	AreaM2        float64 `json:"areaM2" validate:"gte=0"`
}
