package locatario

type CriarLocatarioRequest struct {
	Nome        string `json:"nome" validate:"required"`
	CpfCnpj     string `json:"cpfCnpj" validate:"required"`
	Rg          string `json:"rg"`
	Email       string `json:"email" validate:"omitempty,email"`
	Telefone    string `json:"telefone"`
	Profissao   string `json:"profissao"`
	EstadoCivil string `json:"estadoCivil"`
	Endereco    string `json:"endereco"`
}
