package fatura

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdelfino93/locacao-sub002/internal/contrato"
	"github.com/fdelfino93/locacao-sub002/internal/desconto"
	"github.com/fdelfino93/locacao-sub002/internal/rateio"
)

func valor(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func contratoDeExemplo() *contrato.Contrato {
	c := &contrato.Contrato{
		ValorAluguel:        2500,
		ValorCondominio:     400,
		ValorIptu:           210.55,
		ValorSeguroIncendio: 80,
		Bonificacao:         100,
		TaxaAdministracao:   10,

		RetidoCondominio:       true,
		AntecipaCondominio:     true,
		AntecipaSeguroIncendio: true,
	}
	c.ID = 9
	return c
}

func TestGerarDemonstrativo_TotaisERetencoes(t *testing.T) {
	ledger := desconto.NovoLedger()
	_, ok := ledger.Adicionar(desconto.TipoPontualidade, "", valor("50"))
	require.True(t, ok)

	d := GerarDemonstrativo(contratoDeExemplo(), ledger)

	assert.Equal(t, uint(9), d.ContratoID)

	// Aluguel, condomínio, IPTU, seguro incêndio, bonificação e o desconto;
	// FCI e seguro fiança zerados ficam fora.
	require.Len(t, d.Linhas, 6)
	assert.Equal(t, "Bonificação", d.Linhas[4].Descricao)
	assert.True(t, d.Linhas[4].Valor.Equal(valor("-100")))
	assert.Equal(t, "Desconto Pontualidade", d.Linhas[5].Descricao)
	assert.True(t, d.Linhas[5].Valor.Equal(valor("-50")))

	assert.True(t, d.TotalFatura.Equal(valor("3040.55")), "total %s", d.TotalFatura)
	assert.True(t, d.TaxaAdministracao.Equal(valor("250")))

	require.Len(t, d.Retencoes, 1)
	assert.Equal(t, "Condomínio", d.Retencoes[0].Descricao)
	assert.True(t, d.TotalRetido.Equal(valor("400")))
	assert.True(t, d.TotalAntecipado.Equal(valor("480")))

	// Repasse = fatura - taxa - retido. Antecipação não reduz o repasse.
	assert.True(t, d.RepasseLocadores.Equal(valor("2390.55")), "repasse %s", d.RepasseLocadores)
}

func TestGerarDemonstrativo_SemLancamentos(t *testing.T) {
	c := &contrato.Contrato{ValorAluguel: 1800, TaxaAdministracao: 8}
	c.ID = 3

	d := GerarDemonstrativo(c, nil)

	require.Len(t, d.Linhas, 1)
	assert.Equal(t, "Aluguel", d.Linhas[0].Descricao)
	assert.True(t, d.TotalFatura.Equal(valor("1800")))
	assert.True(t, d.TaxaAdministracao.Equal(valor("144")))
	assert.Empty(t, d.Retencoes)
	assert.True(t, d.RepasseLocadores.Equal(valor("1656")))
}

func TestGerarDemonstrativo_FlagsIndependentes(t *testing.T) {
	c := contratoDeExemplo()
	c.RetidoCondominio = false
	c.RetidoIptu = true

	d := GerarDemonstrativo(c, nil)

	require.Len(t, d.Retencoes, 1)
	assert.Equal(t, "IPTU", d.Retencoes[0].Descricao)
	assert.True(t, d.TotalRetido.Equal(valor("210.55")))
	// Antecipações continuam as mesmas; reter e antecipar não se acoplam.
	assert.True(t, d.TotalAntecipado.Equal(valor("480")))
}

func TestRatearRepasse_UltimaLinhaAbsorveResiduo(t *testing.T) {
	repasse := valor("100")
	alocacoes := []rateio.Alocacao{
		{LocadorID: 1, ContaBancariaID: 10, Porcentagem: valor("33.33")},
		{LocadorID: 2, ContaBancariaID: 20, Porcentagem: valor("33.33")},
		{LocadorID: 3, ContaBancariaID: 30, Porcentagem: valor("33.34")},
	}

	linhas := RatearRepasse(repasse, alocacoes)
	require.Len(t, linhas, 3)

	assert.True(t, linhas[0].Valor.Equal(valor("33.33")))
	assert.True(t, linhas[1].Valor.Equal(valor("33.33")))
	assert.True(t, linhas[2].Valor.Equal(valor("33.34")))

	soma := decimal.Zero
	for _, l := range linhas {
		soma = soma.Add(l.Valor)
	}
	assert.True(t, soma.Equal(repasse))
}

func TestRatearRepasse_Vazio(t *testing.T) {
	assert.Nil(t, RatearRepasse(valor("500"), nil))
}
