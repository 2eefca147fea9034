package locador

type CriarLocadorRequest struct {
	Nome     string `json:"nome" validate:"required"`
	CpfCnpj  string `json:"cpfCnpj" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
}

type CriarContaRequest struct {
	Banco     string `json:"banco" validate:"required"`
	Agencia   string `json:"agencia" validate:"required"`
	Conta     string `json:"conta" validate:"required"`
	TipoConta string `json:"tipoConta" validate:"omitempty,oneof=Corrente Poupança"`
	ChavePix  string `json:"chavePix"`
	Titular   string `json:"titular"`
	Principal bool   `json:"principal"`
}
