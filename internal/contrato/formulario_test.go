package contrato

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func relogioFixo(s string) func() time.Time {
	d := dia(s)
	return func() time.Time { return d }
}

func formularioValido(repo Repositorio) *Formulario {
	f := NovoFormulario(NovoModoCriacao(), repo)
	f.agora = relogioFixo("2024-01-15")
	f.DefinirImovel(3)
	f.DefinirDataInicio(dia("2024-01-15"))
	f.DefinirPeriodoContrato(12)
	f.Rascunho.ValorAluguel = 2500
	f.Rascunho.DiaVencimento = 5
	f.Rascunho.TipoGarantia = GarantiaCaucao
	f.AdicionarLocatario()
	f.DefinirLocatario(0, 7)
	return f
}

func TestDataFimDerivadaDaVigencia(t *testing.T) {
	f := NovoFormulario(NovoModoCriacao(), nil)
	f.agora = relogioFixo("2024-01-15")

	f.DefinirDataInicio(dia("2024-01-15"))
	f.DefinirPeriodoContrato(12)

	require.NotNil(t, f.Rascunho.DataFim)
	assert.Equal(t, dia("2025-01-15"), *f.Rascunho.DataFim)

	// Período indeterminado derruba a data de término.
	f.DefinirPeriodoContrato(PeriodoIndeterminado)
	assert.Nil(t, f.Rascunho.DataFim)
}

func TestProximoReajusteDerivado(t *testing.T) {
	f := NovoFormulario(NovoModoCriacao(), nil)
	f.agora = relogioFixo("2024-01-15")

	f.DefinirDataInicio(dia("2024-01-15"))
	f.DefinirTempoReajuste(6)

	// O marco que cai em hoje não conta como futuro.
	require.NotNil(t, f.Rascunho.ProximoReajuste)
	assert.Equal(t, dia("2024-07-15"), *f.Rascunho.ProximoReajuste)

	f.DefinirTempoReajuste(0)
	assert.Nil(t, f.Rascunho.ProximoReajuste)
}

func TestParcelamentoDerivado(t *testing.T) {
	f := NovoFormulario(NovoModoCriacao(), nil)
	f.agora = relogioFixo("2024-01-15")

	f.DefinirParcelamentoIptu(dia("2024-02-01"), 10)
	require.NotNil(t, f.Rascunho.ParcelamentoIptu.DataFim)
	assert.Equal(t, dia("2024-12-01"), *f.Rascunho.ParcelamentoIptu.DataFim)

	f.DefinirParcelamentoIptu(dia("2024-02-01"), 0)
	assert.Nil(t, f.Rascunho.ParcelamentoIptu.DataFim)

	// Os demais parcelamentos não são afetados.
	assert.Nil(t, f.Rascunho.ParcelamentoSeguroFianca.DataFim)
}

func TestQuantidadePetsSincronizaLista(t *testing.T) {
	f := NovoFormulario(NovoModoCriacao(), nil)

	f.DefinirQuantidadePets(3)
	require.Len(t, f.Rascunho.Pets, 3)

	f.DefinirPet(0, Pet{Nome: "Thor", Especie: "Cão", Porte: PorteGrande})
	f.DefinirPet(1, Pet{Nome: "Mia", Especie: "Gato", Porte: PortePequeno})

	// Reduzir corta do fim; aumentar preserva os já preenchidos.
	f.DefinirQuantidadePets(1)
	require.Len(t, f.Rascunho.Pets, 1)
	assert.Equal(t, "Thor", f.Rascunho.Pets[0].Nome)

	f.DefinirQuantidadePets(2)
	require.Len(t, f.Rascunho.Pets, 2)
	assert.Equal(t, "Thor", f.Rascunho.Pets[0].Nome)
	assert.Empty(t, f.Rascunho.Pets[1].Nome)

	f.DefinirQuantidadePets(-4)
	assert.Empty(t, f.Rascunho.Pets)
	assert.Zero(t, f.Rascunho.QuantidadePets)
}

func TestTrocaDeLocadorZeraContaBancaria(t *testing.T) {
	f := NovoFormulario(NovoModoCriacao(), nil)

	f.AdicionarLocador()
	f.DefinirLocador(0, 5)
	f.DefinirContaBancaria(0, 50)
	require.Equal(t, uint(50), f.Locadores[0].ContaBancariaID)

	f.DefinirLocador(0, 6)
	assert.Zero(t, f.Locadores[0].ContaBancariaID)

	// Reatribuir o mesmo locador não zera a conta.
	f.DefinirContaBancaria(0, 60)
	f.DefinirLocador(0, 6)
	assert.Equal(t, uint(60), f.Locadores[0].ContaBancariaID)
}

func TestContaBancariaExigeLocadorSelecionado(t *testing.T) {
	f := NovoFormulario(NovoModoCriacao(), nil)
	f.AdicionarLocador()

	f.DefinirContaBancaria(0, 50)
	assert.Zero(t, f.Locadores[0].ContaBancariaID)
}

func TestDistribuirPorcentagensPeloFormulario(t *testing.T) {
	f := NovoFormulario(NovoModoCriacao(), nil)
	for i := 0; i < 3; i++ {
		f.AdicionarLocador()
	}
	f.DistribuirPorcentagens()

	assert.True(t, f.Locadores[0].Porcentagem.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, f.Locadores[1].Porcentagem.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, f.Locadores[2].Porcentagem.Equal(decimal.RequireFromString("33.34")))
}

func TestTravaDeEnvio_OrdemDasChecagens(t *testing.T) {
	f := NovoFormulario(NovoModoCriacao(), nil)
	f.agora = relogioFixo("2024-01-15")

	assert.ErrorIs(t, f.ValidarParaEnvio(), ErrImovelNaoSelecionado)

	f.DefinirImovel(3)
	assert.ErrorIs(t, f.ValidarParaEnvio(), ErrDataInicioAusente)

	f.DefinirDataInicio(dia("2024-01-15"))
	assert.ErrorIs(t, f.ValidarParaEnvio(), ErrDataFimAusente)

	f.DefinirPeriodoContrato(12)
	assert.ErrorIs(t, f.ValidarParaEnvio(), ErrAluguelInvalido)

	f.Rascunho.ValorAluguel = 2500
	assert.ErrorIs(t, f.ValidarParaEnvio(), ErrVencimentoAusente)

	f.Rascunho.DiaVencimento = 5
	assert.ErrorIs(t, f.ValidarParaEnvio(), ErrGarantiaNaoEscolhida)

	f.Rascunho.TipoGarantia = GarantiaSemGarantia
	assert.ErrorIs(t, f.ValidarParaEnvio(), ErrSemLocatarios)

	f.AdicionarLocatario()
	assert.ErrorIs(t, f.ValidarParaEnvio(), ErrLocatarioNaoEscolhido)

	f.DefinirLocatario(0, 7)
	assert.NoError(t, f.ValidarParaEnvio())
}

func TestTravaDeEnvio_Idempotente(t *testing.T) {
	f := NovoFormulario(NovoModoCriacao(), nil)
	f.DefinirImovel(3)

	primeiro := f.ValidarParaEnvio()
	segundo := f.ValidarParaEnvio()

	require.Error(t, primeiro)
	assert.Equal(t, primeiro, segundo)
}

func TestTravaDeEnvio_NaoExigeRateioFechado(t *testing.T) {
	// Rateio somando 90% passa pela trava de envio; o status de tela é que
	// aponta o problema. As duas políticas são consultáveis separadamente.
	f := formularioValido(nil)
	f.AdicionarLocador()
	f.DefinirLocador(0, 5)
	f.DefinirContaBancaria(0, 50)
	f.DefinirPorcentagem(0, decimal.RequireFromString("90"))

	assert.NoError(t, f.ValidarParaEnvio())

	status := f.StatusRateio()
	assert.Equal(t, "error", string(status.Tipo))
	assert.Contains(t, status.Mensagem, "atualmente 90.00%")
}

func TestEstadoInicialPorModo(t *testing.T) {
	assert.Equal(t, EstadoPronto, NovoFormulario(NovoModoCriacao(), nil).Estado())
	assert.Equal(t, EstadoCarregando, NovoFormulario(NovoModoVisualizacao(9), nil).Estado())
	assert.Equal(t, EstadoCarregando, NovoFormulario(NovoModoEdicao(9), nil).Estado())
}
