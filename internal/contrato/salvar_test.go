package contrato

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// repoFalso grava em memória e registra a ordem das chamadas. As coleções do
// fan-out são lidas em goroutines, por isso o registro é protegido por mutex.
type repoFalso struct {
	mu       sync.Mutex
	chamadas []string

	contrato   *Contrato
	locadores  []ContratoLocador
	locatarios []ContratoLocatario
	pets       []Pet
	garantias  []Garantia
	plano      *Plano
	dadosBanco *DadosBancariosCorretor

	erroBusca    error
	erroCriar    error
	errosColecao map[string]error
	errosAnexo   map[EtapaAnexo]error

	linhasAnexadas   []ContratoLocador
	vinculosAnexados []ContratoLocatario
	garantiaAnexada  *Garantia
	petsAnexados     []Pet
}

func (r *repoFalso) registrar(nome string) {
	r.mu.Lock()
	r.chamadas = append(r.chamadas, nome)
	r.mu.Unlock()
}

func (r *repoFalso) erroColecao(secao string) error {
	if r.errosColecao == nil {
		return nil
	}
	return r.errosColecao[secao]
}

func (r *repoFalso) Criar(ctx context.Context, c *Contrato) error {
	r.registrar("criar")
	if r.erroCriar != nil {
		return r.erroCriar
	}
	c.ID = 42
	return nil
}

func (r *repoFalso) Atualizar(ctx context.Context, c *Contrato) error {
	r.registrar("atualizar")
	return nil
}

func (r *repoFalso) BuscarPorID(ctx context.Context, id uint) (*Contrato, error) {
	r.registrar("buscar")
	if r.erroBusca != nil {
		return nil, r.erroBusca
	}
	if r.contrato == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r.contrato
	return &cp, nil
}

func (r *repoFalso) ListarTodos(ctx context.Context) ([]Contrato, error) { return nil, nil }
func (r *repoFalso) Deletar(ctx context.Context, id uint) error         { return nil }

func (r *repoFalso) BuscarLocadores(ctx context.Context, contratoID uint) ([]ContratoLocador, error) {
	r.registrar("buscarLocadores")
	if err := r.erroColecao("locadores"); err != nil {
		return nil, err
	}
	return r.locadores, nil
}

func (r *repoFalso) BuscarLocatarios(ctx context.Context, contratoID uint) ([]ContratoLocatario, error) {
	r.registrar("buscarLocatarios")
	if err := r.erroColecao("locatarios"); err != nil {
		return nil, err
	}
	return r.locatarios, nil
}

func (r *repoFalso) BuscarPets(ctx context.Context, contratoID uint) ([]Pet, error) {
	r.registrar("buscarPets")
	if err := r.erroColecao("pets"); err != nil {
		return nil, err
	}
	return r.pets, nil
}

func (r *repoFalso) BuscarGarantias(ctx context.Context, contratoID uint) ([]Garantia, error) {
	r.registrar("buscarGarantias")
	if err := r.erroColecao("garantias"); err != nil {
		return nil, err
	}
	return r.garantias, nil
}

func (r *repoFalso) BuscarPlano(ctx context.Context, contratoID uint) (*Plano, error) {
	r.registrar("buscarPlano")
	if r.plano == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.plano, nil
}

func (r *repoFalso) BuscarDadosBancariosCorretor(ctx context.Context, contratoID uint) (*DadosBancariosCorretor, error) {
	r.registrar("buscarDadosBancariosCorretor")
	if r.dadosBanco == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.dadosBanco, nil
}

func (r *repoFalso) AnexarLocadores(ctx context.Context, contratoID uint, linhas []ContratoLocador) error {
	r.registrar("anexarLocadores")
	if err := r.errosAnexo[EtapaLocadores]; err != nil {
		return err
	}
	r.linhasAnexadas = linhas
	return nil
}

func (r *repoFalso) AnexarLocatarios(ctx context.Context, contratoID uint, vinculos []ContratoLocatario) error {
	r.registrar("anexarLocatarios")
	if err := r.errosAnexo[EtapaLocatarios]; err != nil {
		return err
	}
	r.vinculosAnexados = vinculos
	return nil
}

// AnexarGarantia imita a semântica de substituição do repositório real: a
// garantia anterior do contrato sai e a nova entra no lugar.
func (r *repoFalso) AnexarGarantia(ctx context.Context, contratoID uint, g *Garantia) error {
	r.registrar("anexarGarantia")
	if err := r.errosAnexo[EtapaGarantia]; err != nil {
		return err
	}
	g.ContratoID = contratoID
	r.garantiaAnexada = g
	r.garantias = []Garantia{*g}
	return nil
}

func (r *repoFalso) AnexarPets(ctx context.Context, contratoID uint, pets []Pet) error {
	r.registrar("anexarPets")
	if err := r.errosAnexo[EtapaPets]; err != nil {
		return err
	}
	r.petsAnexados = pets
	return nil
}

// contratoGravado é um registro persistido completo o bastante para passar na
// trava de envio depois de carregado.
func contratoGravado() *Contrato {
	inicio := dia("2024-01-15")
	c := &Contrato{
		ImovelID:        3,
		DataInicio:      &inicio,
		PeriodoContrato: 12,
		ValorAluguel:    2500,
		DiaVencimento:   5,
		TipoGarantia:    GarantiaCaucao,
	}
	c.ID = 9
	return c
}

func TestSalvar_SequenciaCompleta(t *testing.T) {
	repo := &repoFalso{}
	f := formularioValido(repo)

	f.AdicionarLocador()
	f.DefinirLocador(0, 5)
	f.DefinirContaBancaria(0, 50)
	f.DefinirPorcentagem(0, decimal.NewFromInt(100))
	f.Rascunho.Garantia = &Garantia{CaucaoValor: 5000}
	f.DefinirQuantidadePets(2)

	resultado, err := f.Salvar(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resultado)

	assert.Equal(t, uint(42), resultado.ContratoID)
	assert.Equal(t, []string{
		"criar",
		"anexarLocadores",
		"anexarLocatarios",
		"anexarGarantia",
		"anexarPets",
	}, repo.chamadas)

	require.Len(t, resultado.Anexos, 4)
	for _, a := range resultado.Anexos {
		assert.Empty(t, a.Erro, "etapa %s", a.Etapa)
	}

	require.Len(t, repo.linhasAnexadas, 1)
	assert.Equal(t, uint(42), repo.linhasAnexadas[0].ContratoID)
	assert.Equal(t, uint(5), repo.linhasAnexadas[0].LocadorID)

	require.Len(t, repo.vinculosAnexados, 1)
	assert.Equal(t, uint(7), repo.vinculosAnexados[0].LocatarioID)

	// O tipo da garantia vem do contrato quando o payload não o informa.
	require.NotNil(t, repo.garantiaAnexada)
	assert.Equal(t, GarantiaCaucao, repo.garantiaAnexada.Tipo)

	assert.Len(t, repo.petsAnexados, 2)
	assert.Equal(t, EstadoPronto, f.Estado())
}

func TestSalvar_AnexoFalhoNaoInterrompe(t *testing.T) {
	repo := &repoFalso{
		errosAnexo: map[EtapaAnexo]error{EtapaLocadores: errors.New("deadlock detectado")},
	}
	f := formularioValido(repo)

	resultado, err := f.Salvar(context.Background())
	require.NoError(t, err)

	// O contrato foi gravado e as etapas seguintes rodaram mesmo assim.
	assert.Contains(t, repo.chamadas, "anexarLocatarios")

	require.Len(t, resultado.Anexos, 2)
	assert.Equal(t, EtapaLocadores, resultado.Anexos[0].Etapa)
	assert.Contains(t, resultado.Anexos[0].Erro, "deadlock")
	assert.Empty(t, resultado.Anexos[1].Erro)
}

func TestSalvar_PulaGarantiaVaziaEPets(t *testing.T) {
	repo := &repoFalso{}
	f := formularioValido(repo)
	f.Rascunho.Garantia = &Garantia{}

	resultado, err := f.Salvar(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, repo.chamadas, "anexarGarantia")
	assert.NotContains(t, repo.chamadas, "anexarPets")
	assert.Len(t, resultado.Anexos, 2)
}

func TestSalvar_CriacaoLimpaRascunho(t *testing.T) {
	repo := &repoFalso{}
	f := formularioValido(repo)
	f.AdicionarLocador()
	f.DefinirLocador(0, 5)

	_, err := f.Salvar(context.Background())
	require.NoError(t, err)

	assert.Zero(t, f.Rascunho.ImovelID)
	assert.Empty(t, f.Locadores)
	assert.Empty(t, f.Locatarios)
}

func TestSalvar_EdicaoMantemRascunho(t *testing.T) {
	repo := &repoFalso{
		contrato:   contratoGravado(),
		locatarios: []ContratoLocatario{{ContratoID: 9, LocatarioID: 7}},
	}
	f := NovoFormulario(NovoModoEdicao(9), repo)
	require.NoError(t, f.Carregar(context.Background()))

	f.Rascunho.ValorAluguel = 2800
	_, err := f.Salvar(context.Background())
	require.NoError(t, err)

	assert.Contains(t, repo.chamadas, "atualizar")
	assert.NotContains(t, repo.chamadas, "criar")
	assert.Equal(t, uint(9), f.Rascunho.ID)
	assert.Equal(t, 2800.0, f.Rascunho.ValorAluguel)
	assert.NotEmpty(t, f.Locatarios)
}

func TestSalvar_EdicaoSubstituiGarantia(t *testing.T) {
	antiga := Garantia{Tipo: GarantiaCaucao, CaucaoValor: 3000}
	antiga.ID = 1
	antiga.ContratoID = 9
	repo := &repoFalso{
		contrato:   contratoGravado(),
		locatarios: []ContratoLocatario{{ContratoID: 9, LocatarioID: 7}},
		garantias:  []Garantia{antiga},
	}
	f := NovoFormulario(NovoModoEdicao(9), repo)
	require.NoError(t, f.Carregar(context.Background()))

	// O payload de edição chega sem chave primária, como no PUT.
	f.Rascunho.Garantia = &Garantia{
		Tipo:            GarantiaCaucao,
		CaucaoValor:     8000,
		CaucaoDescricao: "caução reforçada",
	}
	_, err := f.Salvar(context.Background())
	require.NoError(t, err)

	// Uma garantia só por contrato; nada de linhas acumuladas.
	require.Len(t, repo.garantias, 1)
	assert.Equal(t, 8000.0, repo.garantias[0].CaucaoValor)

	// Recarregar mostra a garantia editada, não a anterior.
	g := NovoFormulario(NovoModoVisualizacao(9), repo)
	require.NoError(t, g.Carregar(context.Background()))
	require.NotNil(t, g.Rascunho.Garantia)
	assert.Equal(t, "caução reforçada", g.Rascunho.Garantia.CaucaoDescricao)
}

func TestSalvar_FalhaDeGravacaoEhRecuperavel(t *testing.T) {
	repo := &repoFalso{erroCriar: errors.New("conexão recusada")}
	f := formularioValido(repo)

	resultado, err := f.Salvar(context.Background())
	require.Error(t, err)
	assert.Nil(t, resultado)

	// Falha de salvamento não é terminal: o usuário pode tentar de novo.
	assert.Equal(t, EstadoPronto, f.Estado())
	assert.NotEmpty(t, f.Mensagem())
	assert.NotContains(t, repo.chamadas, "anexarLocadores")
}

func TestSalvar_TravaDeEnvioBloqueiaAntesDoRepositorio(t *testing.T) {
	repo := &repoFalso{}
	f := NovoFormulario(NovoModoCriacao(), repo)

	_, err := f.Salvar(context.Background())
	require.ErrorIs(t, err, ErrImovelNaoSelecionado)
	assert.Empty(t, repo.chamadas)

	// A reprovação da trava é distinguível de falha de infraestrutura.
	assert.True(t, EhErroDeValidacao(err))
	assert.False(t, EhErroDeValidacao(errors.New("conexão recusada")))
}

func TestCarregar_ModoCriacaoNaoConsultaRepositorio(t *testing.T) {
	repo := &repoFalso{}
	f := NovoFormulario(NovoModoCriacao(), repo)

	require.NoError(t, f.Carregar(context.Background()))
	assert.Empty(t, repo.chamadas)
}

func TestCarregar_PreencheTodasAsSecoes(t *testing.T) {
	validade := dia("2025-06-01")
	repo := &repoFalso{
		contrato: contratoGravado(),
		locadores: []ContratoLocador{
			{ContratoID: 9, LocadorID: 5, ContaBancariaID: 50, Porcentagem: decimal.NewFromInt(60)},
			{ContratoID: 9, LocadorID: 6, ContaBancariaID: 61, Porcentagem: decimal.NewFromInt(40)},
		},
		locatarios: []ContratoLocatario{{ContratoID: 9, LocatarioID: 7}},
		pets:       []Pet{{Nome: "Thor"}},
		garantias:  []Garantia{{Tipo: GarantiaSeguroFianca, SeguroApolice: "AP-1", SeguroValidade: &validade}},
		plano:      &Plano{ContratoID: 9, Nome: "Plano completo", TaxaAdministracao: 12},
		dadosBanco: &DadosBancariosCorretor{ContratoID: 9, Banco: "341", ChavePix: "corretor@pix"},
	}
	f := NovoFormulario(NovoModoVisualizacao(9), repo)

	require.NoError(t, f.Carregar(context.Background()))
	assert.Equal(t, EstadoPronto, f.Estado())

	require.Len(t, f.Locadores, 2)
	assert.Equal(t, uint(5), f.Locadores[0].LocadorID)
	require.Len(t, f.Locatarios, 1)
	assert.Equal(t, uint(7), f.Locatarios[0].LocatarioID)

	assert.Equal(t, 1, f.Rascunho.QuantidadePets)
	require.Len(t, f.Rascunho.Pets, 1)

	require.NotNil(t, f.Rascunho.Garantia)
	assert.Equal(t, "AP-1", f.Rascunho.Garantia.SeguroApolice)

	// A taxa do plano prevalece sobre a gravada no contrato.
	assert.Equal(t, 12.0, f.Rascunho.TaxaAdministracao)

	require.NotNil(t, f.DadosCorretor)
	assert.Equal(t, "corretor@pix", f.DadosCorretor.ChavePix)

	// Campos derivados recalculados a partir do registro carregado.
	require.NotNil(t, f.Rascunho.DataFim)
	assert.Equal(t, dia("2025-01-15"), *f.Rascunho.DataFim)
}

func TestCarregar_FalhaPrincipalEhTerminal(t *testing.T) {
	repo := &repoFalso{erroBusca: errors.New("timeout")}
	f := NovoFormulario(NovoModoVisualizacao(9), repo)

	err := f.Carregar(context.Background())
	require.Error(t, err)
	assert.Equal(t, EstadoErro, f.Estado())
	assert.NotEmpty(t, f.Mensagem())
}

func TestCarregar_ColecaoFalhaNaoDerrubaFormulario(t *testing.T) {
	repo := &repoFalso{
		contrato:     contratoGravado(),
		locatarios:   []ContratoLocatario{{ContratoID: 9, LocatarioID: 7}},
		errosColecao: map[string]error{"locadores": errors.New("tabela bloqueada")},
	}
	f := NovoFormulario(NovoModoVisualizacao(9), repo)

	// A seção falhada fica vazia; as demais carregam normalmente.
	require.NoError(t, f.Carregar(context.Background()))
	assert.Equal(t, EstadoPronto, f.Estado())
	assert.Empty(t, f.Locadores)
	assert.Len(t, f.Locatarios, 1)
}

func TestCarregar_ContextoCanceladoNaoEfetiva(t *testing.T) {
	repo := &repoFalso{contrato: contratoGravado()}
	f := NovoFormulario(NovoModoVisualizacao(9), repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.Carregar(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotEqual(t, EstadoPronto, f.Estado())
}
