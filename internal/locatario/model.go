package locatario

import "gorm.io/gorm"

// Locatario é o inquilino vinculado a um ou mais contratos.
type Locatario struct {
	gorm.Model
	Nome        string `json:"nome"`
	CpfCnpj     string `json:"cpfCnpj" gorm:"unique"`
	Rg          string `json:"rg"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	Profissao   string `json:"profissao"`
	EstadoCivil string `json:"estadoCivil"`
	Endereco    string `json:"endereco"`
}
