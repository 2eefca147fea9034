package locador

import "gorm.io/gorm"

// Locador é o proprietário (pessoa física ou jurídica) que recebe o repasse.
type Locador struct {
	gorm.Model
	Nome     string          `json:"nome"`
	CpfCnpj  string          `json:"cpfCnpj" gorm:"unique"`
	Email    string          `json:"email"`
	Telefone string          `json:"telefone"`
	Endereco string          `json:"endereco"`
	Ativo    bool            `json:"ativo" gorm:"default:true"`
	Contas   []ContaBancaria `json:"contas" gorm:"foreignKey:LocadorID"`
}

// ContaBancaria recebe o repasse do rateio. Um locador pode ter várias.
type ContaBancaria struct {
	gorm.Model
	LocadorID uint   `json:"locadorId" gorm:"not null;index"`
	Banco     string `json:"banco"`
	Agencia   string `json:"agencia"`
	Conta     string `json:"conta"`
	TipoConta string `json:"tipoConta"` // "Corrente" ou "Poupança"
	ChavePix  string `json:"chavePix"`
	Titular   string `json:"titular"`
	Principal bool   `json:"principal"`
}
