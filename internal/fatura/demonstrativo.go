// Package fatura monta o demonstrativo mensal de um contrato: a fatura do
// locatário e o repasse dos locadores, já considerando taxa de administração,
// encargos retidos e antecipados e os descontos lançados.
package fatura

import (
	"github.com/shopspring/decimal"

	"github.com/fdelfino93/locacao-sub002/internal/contrato"
	"github.com/fdelfino93/locacao-sub002/internal/desconto"
	"github.com/fdelfino93/locacao-sub002/internal/rateio"
)

// Linha é um item nomeado do demonstrativo. Créditos para o locatário
// (bonificação, descontos) entram com valor negativo.
type Linha struct {
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
}

// Demonstrativo é o fechamento de um mês do contrato.
type Demonstrativo struct {
	ContratoID        uint            `json:"contratoId"`
	Linhas            []Linha         `json:"linhas"`
	TotalFatura       decimal.Decimal `json:"totalFatura"`
	TaxaAdministracao decimal.Decimal `json:"taxaAdministracao"`
	Retencoes         []Linha         `json:"retencoes"`
	TotalRetido       decimal.Decimal `json:"totalRetido"`
	TotalAntecipado   decimal.Decimal `json:"totalAntecipado"`
	RepasseLocadores  decimal.Decimal `json:"repasseLocadores"`
}

func dinheiro(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// GerarDemonstrativo calcula a fatura e o repasse de um contrato. O ledger de
// descontos pode ser nulo quando não há lançamentos no mês.
func GerarDemonstrativo(c *contrato.Contrato, descontos *desconto.Ledger) Demonstrativo {
	d := Demonstrativo{ContratoID: c.ID}

	adicionar := func(descricao string, valor decimal.Decimal) {
		if valor.IsZero() {
			return
		}
		d.Linhas = append(d.Linhas, Linha{Descricao: descricao, Valor: valor})
		d.TotalFatura = d.TotalFatura.Add(valor)
	}

	adicionar("Aluguel", dinheiro(c.ValorAluguel))
	adicionar("Condomínio", dinheiro(c.ValorCondominio))
	adicionar("FCI", dinheiro(c.ValorFci))
	adicionar("IPTU", dinheiro(c.ValorIptu))
	adicionar("Seguro fiança", dinheiro(c.ValorSeguroFianca))
	adicionar("Seguro incêndio", dinheiro(c.ValorSeguroIncendio))
	adicionar("Bonificação", dinheiro(c.Bonificacao).Neg())

	if descontos != nil {
		for _, item := range descontos.Itens() {
			adicionar(item.Rotulo, item.Valor.Round(2).Neg())
		}
	}

	// Taxa de administração incide sobre o aluguel.
	d.TaxaAdministracao = dinheiro(c.ValorAluguel).
		Mul(decimal.NewFromFloat(c.TaxaAdministracao)).
		Div(decimal.NewFromInt(100)).Round(2)

	reter := func(descricao string, retido bool, valor float64) {
		if !retido || valor <= 0 {
			return
		}
		v := dinheiro(valor)
		d.Retencoes = append(d.Retencoes, Linha{Descricao: descricao, Valor: v})
		d.TotalRetido = d.TotalRetido.Add(v)
	}
	reter("FCI", c.RetidoFci, c.ValorFci)
	reter("IPTU", c.RetidoIptu, c.ValorIptu)
	reter("Condomínio", c.RetidoCondominio, c.ValorCondominio)
	reter("Seguro fiança", c.RetidoSeguroFianca, c.ValorSeguroFianca)
	reter("Seguro incêndio", c.RetidoSeguroIncendio, c.ValorSeguroIncendio)

	antecipar := func(antecipa bool, valor float64) {
		if antecipa && valor > 0 {
			d.TotalAntecipado = d.TotalAntecipado.Add(dinheiro(valor))
		}
	}
	antecipar(c.AntecipaCondominio, c.ValorCondominio)
	antecipar(c.AntecipaSeguroFianca, c.ValorSeguroFianca)
	antecipar(c.AntecipaSeguroIncendio, c.ValorSeguroIncendio)

	d.RepasseLocadores = d.TotalFatura.
		Sub(d.TaxaAdministracao).
		Sub(d.TotalRetido)

	return d
}

// RatearRepasse divide o repasse entre os locadores conforme o rateio. A
// última linha absorve o resíduo de arredondamento, para que a soma das
// partes feche exatamente com o repasse.
func RatearRepasse(repasse decimal.Decimal, alocacoes []rateio.Alocacao) []Linha {
	if len(alocacoes) == 0 {
		return nil
	}

	linhas := make([]Linha, 0, len(alocacoes))
	acumulado := decimal.Zero
	cem := decimal.NewFromInt(100)

	for i, a := range alocacoes {
		var parte decimal.Decimal
		if i == len(alocacoes)-1 {
			parte = repasse.Sub(acumulado)
		} else {
			parte = repasse.Mul(a.Porcentagem).Div(cem).Round(2)
			acumulado = acumulado.Add(parte)
		}
		linhas = append(linhas, Linha{
			Descricao: "Repasse locador " + a.Porcentagem.StringFixed(2) + "%",
			Valor:     parte,
		})
	}
	return linhas
}
