package usuario

import "gorm.io/gorm"

// Usuario é quem opera o sistema (imobiliária), não uma parte do contrato.
type Usuario struct {
	gorm.Model
	Nome                  string `json:"nome"`
	Email                 string `json:"email" gorm:"unique"`
	Senha                 string `json:"-"`
	IsAdmin               bool   `json:"isAdmin"`
	PrecisaRedefinirSenha bool   `json:"-"`
}
