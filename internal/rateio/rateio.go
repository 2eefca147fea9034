// Package rateio distribui e valida as porcentagens de propriedade entre os
// locadores de um contrato. A soma do rateio precisa fechar em exatamente
// 100,00%, por isso toda a aritmética usa decimal com duas casas.
package rateio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Alocacao é uma linha do rateio: um locador, a conta bancária que recebe o
// repasse e a fatia dele na propriedade. Zero em LocadorID ou ContaBancariaID
// significa "ainda não selecionado".
type Alocacao struct {
	LocadorID       uint            `json:"locadorId"`
	ContaBancariaID uint            `json:"contaBancariaId"`
	Porcentagem     decimal.Decimal `json:"porcentagem"`
}

// TipoStatus discrimina a severidade do resultado da validação. Ela orienta a
// apresentação; nenhuma outra lógica depende do discriminante.
type TipoStatus string

const (
	StatusErro    TipoStatus = "error"
	StatusAviso   TipoStatus = "warning"
	StatusSucesso TipoStatus = "success"
)

// Status é o resultado da validação do rateio.
type Status struct {
	Tipo     TipoStatus `json:"tipo"`
	Mensagem string     `json:"mensagem"`
}

var cem = decimal.NewFromInt(100)

// DistribuirIgualmente reparte 100% entre as linhas: as n-1 primeiras recebem
// 100/n truncado em duas casas e a última absorve o resto do arredondamento,
// garantindo soma exata de 100,00 para qualquer n. Lista vazia é devolvida
// como está.
func DistribuirIgualmente(alocacoes []Alocacao) []Alocacao {
	n := len(alocacoes)
	if n == 0 {
		return alocacoes
	}

	base := cem.Div(decimal.NewFromInt(int64(n))).Truncate(2)
	resultado := make([]Alocacao, n)
	copy(resultado, alocacoes)

	acumulado := decimal.Zero
	for i := 0; i < n-1; i++ {
		resultado[i].Porcentagem = base
		acumulado = acumulado.Add(base)
	}
	resultado[n-1].Porcentagem = cem.Sub(acumulado).Round(2)
	return resultado
}

// Validar avalia o rateio na seguinte ordem de precedência, devolvendo o
// primeiro status aplicável:
//
//  1. lista vazia                      -> erro
//  2. linha com campo não preenchido   -> aviso
//  3. locador repetido                 -> erro
//  4. soma diferente de 100,00 exatos  -> erro, com a diferença assinalada
//  5. caso contrário                   -> sucesso
func Validar(alocacoes []Alocacao) Status {
	if len(alocacoes) == 0 {
		return Status{StatusErro, "é necessário pelo menos um locador no contrato"}
	}

	for _, a := range alocacoes {
		if a.LocadorID == 0 || a.ContaBancariaID == 0 || a.Porcentagem.LessThanOrEqual(decimal.Zero) {
			return Status{StatusAviso, "preencha todos os campos dos locadores"}
		}
	}

	vistos := make(map[uint]bool, len(alocacoes))
	for _, a := range alocacoes {
		if vistos[a.LocadorID] {
			return Status{StatusErro, "o mesmo locador aparece mais de uma vez no rateio"}
		}
		vistos[a.LocadorID] = true
	}

	soma := decimal.Zero
	for _, a := range alocacoes {
		soma = soma.Add(a.Porcentagem.Round(2))
	}
	if !soma.Equal(cem) {
		diferenca := cem.Sub(soma)
		if diferenca.IsNegative() {
			return Status{StatusErro, fmt.Sprintf(
				"a soma das porcentagens deve ser exatamente 100%%, atualmente %s%% (excedem %s%%)",
				soma.StringFixed(2), diferenca.Neg().StringFixed(2))}
		}
		return Status{StatusErro, fmt.Sprintf(
			"a soma das porcentagens deve ser exatamente 100%%, atualmente %s%% (faltam %s%%)",
			soma.StringFixed(2), diferenca.StringFixed(2))}
	}

	return Status{StatusSucesso, "rateio válido"}
}

// Soma devolve o total das porcentagens arredondadas em duas casas. Exposta
// para a tela de rateio exibir o parcial enquanto o usuário digita.
func Soma(alocacoes []Alocacao) decimal.Decimal {
	soma := decimal.Zero
	for _, a := range alocacoes {
		soma = soma.Add(a.Porcentagem.Round(2))
	}
	return soma
}
