package contrato

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fdelfino93/locacao-sub002/internal/desconto"
	"github.com/fdelfino93/locacao-sub002/internal/rateio"
	"github.com/fdelfino93/locacao-sub002/internal/vigencia"
)

// TipoModo distingue criação, visualização e edição de contrato.
type TipoModo int

const (
	ModoCriacao TipoModo = iota
	ModoVisualizacao
	ModoEdicao
)

// Modo é passado explicitamente ao formulário na construção; o id só existe
// em visualização e edição.
type Modo struct {
	Tipo       TipoModo
	ContratoID uint
}

func NovoModoCriacao() Modo             { return Modo{Tipo: ModoCriacao} }
func NovoModoVisualizacao(id uint) Modo { return Modo{Tipo: ModoVisualizacao, ContratoID: id} }
func NovoModoEdicao(id uint) Modo       { return Modo{Tipo: ModoEdicao, ContratoID: id} }

// Estado da sessão de formulário. EstadoErro é terminal e só ocorre quando a
// busca do próprio contrato falha; falhas de salvamento voltam a EstadoPronto
// com mensagem.
type Estado int

const (
	EstadoCarregando Estado = iota
	EstadoPronto
	EstadoSalvando
	EstadoErro
)

// VinculoLocatario é uma linha da lista de locatários do formulário.
// LocatarioID zero significa "ainda não selecionado".
type VinculoLocatario struct {
	LocatarioID uint `json:"locatarioId"`
}

// Formulario é o dono do rascunho do contrato e das listas de locadores,
// locatários e pets durante a sessão de edição. Toda alteração de campo passa
// pelos métodos Definir*, que recalculam os campos derivados.
type Formulario struct {
	modo     Modo
	estado   Estado
	mensagem string

	Rascunho      Contrato
	Locadores     []rateio.Alocacao
	Locatarios    []VinculoLocatario
	Descontos     *desconto.Ledger
	DadosCorretor *DadosBancariosCorretor

	repo  Repositorio
	agora func() time.Time
}

// NovoFormulario monta a sessão para o modo informado. Em criação o estado
// inicial já é Pronto; visualização e edição começam em Carregando até
// Carregar concluir.
func NovoFormulario(modo Modo, repo Repositorio) *Formulario {
	f := &Formulario{
		modo:      modo,
		estado:    EstadoPronto,
		Descontos: desconto.NovoLedger(),
		repo:      repo,
		agora:     time.Now,
	}
	if modo.Tipo != ModoCriacao {
		f.estado = EstadoCarregando
	}
	return f
}

func (f *Formulario) Modo() Modo       { return f.modo }
func (f *Formulario) Estado() Estado   { return f.estado }
func (f *Formulario) Mensagem() string { return f.mensagem }

// normalizar preenche os defaults de um registro recém-carregado uma única
// vez, para que o restante do código não precise ler defensivamente.
func (f *Formulario) normalizar() {
	r := &f.Rascunho
	if r.PeriodoContrato < 0 {
		r.PeriodoContrato = PeriodoIndeterminado
	}
	if r.QuantidadePets < 0 {
		r.QuantidadePets = 0
	}
	f.sincronizarPets()
	if f.Locadores == nil {
		f.Locadores = []rateio.Alocacao{}
	}
	if f.Locatarios == nil {
		f.Locatarios = []VinculoLocatario{}
	}
	f.recalcularDerivados()
}

// recalcularDerivados reaplica a aritmética de vigência sobre o rascunho.
// Campos derivados são sobrescritos sempre, nunca editados diretamente.
func (f *Formulario) recalcularDerivados() {
	r := &f.Rascunho

	r.DataFim = nil
	if r.DataInicio != nil {
		if fim := vigencia.CalcularDataFim(*r.DataInicio, r.PeriodoContrato); !fim.IsZero() {
			r.DataFim = &fim
		}
	}

	r.ProximoReajuste = nil
	if r.DataInicio != nil && r.TempoReajuste > 0 {
		prox := vigencia.CalcularProximoReajuste(*r.DataInicio, r.TempoReajuste, f.agora())
		r.ProximoReajuste = &prox
	}

	recalcularParcelamento(&r.ParcelamentoSeguroFianca)
	recalcularParcelamento(&r.ParcelamentoSeguroIncendio)
	recalcularParcelamento(&r.ParcelamentoIptu)
}

func recalcularParcelamento(p *Parcelamento) {
	p.DataFim = nil
	if p.DataInicio != nil {
		if fim := vigencia.CalcularDataFimParcelas(*p.DataInicio, p.Parcelas); !fim.IsZero() {
			p.DataFim = &fim
		}
	}
}

// --- edições de vigência ---

func (f *Formulario) DefinirImovel(id uint) {
	f.Rascunho.ImovelID = id
}

func (f *Formulario) DefinirDataInicio(d time.Time) {
	if d.IsZero() {
		f.Rascunho.DataInicio = nil
	} else {
		f.Rascunho.DataInicio = &d
	}
	f.recalcularDerivados()
}

func (f *Formulario) DefinirPeriodoContrato(meses int) {
	if meses < 0 {
		meses = PeriodoIndeterminado
	}
	f.Rascunho.PeriodoContrato = meses
	f.recalcularDerivados()
}

func (f *Formulario) DefinirTempoReajuste(meses int) {
	f.Rascunho.TempoReajuste = meses
	f.recalcularDerivados()
}

func (f *Formulario) DefinirParcelamentoSeguroFianca(inicio time.Time, parcelas int) {
	definirParcelamento(&f.Rascunho.ParcelamentoSeguroFianca, inicio, parcelas)
	f.recalcularDerivados()
}

func (f *Formulario) DefinirParcelamentoSeguroIncendio(inicio time.Time, parcelas int) {
	definirParcelamento(&f.Rascunho.ParcelamentoSeguroIncendio, inicio, parcelas)
	f.recalcularDerivados()
}

func (f *Formulario) DefinirParcelamentoIptu(inicio time.Time, parcelas int) {
	definirParcelamento(&f.Rascunho.ParcelamentoIptu, inicio, parcelas)
	f.recalcularDerivados()
}

func definirParcelamento(p *Parcelamento, inicio time.Time, parcelas int) {
	if inicio.IsZero() {
		p.DataInicio = nil
	} else {
		p.DataInicio = &inicio
	}
	p.Parcelas = parcelas
}

// --- pets ---

// DefinirQuantidadePets mantém a lista de pets com exatamente um registro por
// vaga, preservando os já preenchidos.
func (f *Formulario) DefinirQuantidadePets(quantidade int) {
	if quantidade < 0 {
		quantidade = 0
	}
	f.Rascunho.QuantidadePets = quantidade
	f.sincronizarPets()
}

func (f *Formulario) sincronizarPets() {
	r := &f.Rascunho
	for len(r.Pets) < r.QuantidadePets {
		r.Pets = append(r.Pets, Pet{})
	}
	if len(r.Pets) > r.QuantidadePets {
		r.Pets = r.Pets[:r.QuantidadePets]
	}
}

// DefinirPet substitui o registro de uma vaga da lista.
func (f *Formulario) DefinirPet(indice int, p Pet) {
	if indice < 0 || indice >= len(f.Rascunho.Pets) {
		return
	}
	f.Rascunho.Pets[indice] = p
}

// --- locadores (rateio) ---

// AdicionarLocador abre uma linha vazia no rateio.
func (f *Formulario) AdicionarLocador() {
	f.Locadores = append(f.Locadores, rateio.Alocacao{})
}

func (f *Formulario) RemoverLocador(indice int) {
	if indice < 0 || indice >= len(f.Locadores) {
		return
	}
	f.Locadores = append(f.Locadores[:indice], f.Locadores[indice+1:]...)
}

// DefinirLocador troca o locador de uma linha. A conta bancária volta a zero,
// porque as contas listadas pertencem ao locador anterior.
func (f *Formulario) DefinirLocador(indice int, locadorID uint) {
	if indice < 0 || indice >= len(f.Locadores) {
		return
	}
	if f.Locadores[indice].LocadorID != locadorID {
		f.Locadores[indice].ContaBancariaID = 0
	}
	f.Locadores[indice].LocadorID = locadorID
}

func (f *Formulario) DefinirContaBancaria(indice int, contaID uint) {
	if indice < 0 || indice >= len(f.Locadores) {
		return
	}
	// Conta só é selecionável com o locador definido.
	if f.Locadores[indice].LocadorID == 0 {
		return
	}
	f.Locadores[indice].ContaBancariaID = contaID
}

func (f *Formulario) DefinirPorcentagem(indice int, porcentagem decimal.Decimal) {
	if indice < 0 || indice >= len(f.Locadores) {
		return
	}
	f.Locadores[indice].Porcentagem = porcentagem.Round(2)
}

// DistribuirPorcentagens reparte 100% igualmente entre as linhas atuais.
func (f *Formulario) DistribuirPorcentagens() {
	f.Locadores = rateio.DistribuirIgualmente(f.Locadores)
}

// StatusRateio devolve o status de validação do rateio para exibição. O
// resultado não participa da trava de envio; ver ValidarParaEnvio.
func (f *Formulario) StatusRateio() rateio.Status {
	return rateio.Validar(f.Locadores)
}

// --- locatários ---

func (f *Formulario) AdicionarLocatario() {
	f.Locatarios = append(f.Locatarios, VinculoLocatario{})
}

func (f *Formulario) RemoverLocatario(indice int) {
	if indice < 0 || indice >= len(f.Locatarios) {
		return
	}
	f.Locatarios = append(f.Locatarios[:indice], f.Locatarios[indice+1:]...)
}

func (f *Formulario) DefinirLocatario(indice int, locatarioID uint) {
	if indice < 0 || indice >= len(f.Locatarios) {
		return
	}
	f.Locatarios[indice].LocatarioID = locatarioID
}
