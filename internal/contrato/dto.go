package contrato

import (
	"time"

	"github.com/fdelfino93/locacao-sub002/internal/rateio"
)

// ContratoRequest é o payload de criação/edição vindo da tela do contrato.
// Datas chegam como "AAAA-MM-DD"; campos derivados não são aceitos.
type ContratoRequest struct {
	IdImovel uint `json:"idImovel"`

	DataInicio                string `json:"dataInicio"`
	PeriodoContrato           int    `json:"periodoContrato"`
	TempoReajuste             int    `json:"tempoReajuste"`
	UltimoReajuste            string `json:"ultimoReajuste"`
	TempoRenovacao            int    `json:"tempoRenovacao"`
	RenovacaoAutomatica       bool   `json:"renovacaoAutomatica"`
	ProximoReajusteAutomatico bool   `json:"proximoReajusteAutomatico"`
	DiaVencimento             int    `json:"diaVencimento"`

	ValorAluguel          float64 `json:"valorAluguel"`
	ValorCondominio       float64 `json:"valorCondominio"`
	ValorFci              float64 `json:"valorFci"`
	ValorIptu             float64 `json:"valorIptu"`
	ValorSeguroFianca     float64 `json:"valorSeguroFianca"`
	ValorSeguroIncendio   float64 `json:"valorSeguroIncendio"`
	TaxaAdministracao     float64 `json:"taxaAdministracao"`
	PercentualReajuste    float64 `json:"percentualReajuste"`
	Bonificacao           float64 `json:"bonificacao"`
	PercentualMultaAtraso float64 `json:"percentualMultaAtraso"`

	SeguroFianca   ParcelamentoRequest `json:"seguroFianca"`
	SeguroIncendio ParcelamentoRequest `json:"seguroIncendio"`
	Iptu           ParcelamentoRequest `json:"iptu"`

	RetidoFci              bool `json:"retidoFci"`
	RetidoIptu             bool `json:"retidoIptu"`
	RetidoCondominio       bool `json:"retidoCondominio"`
	RetidoSeguroFianca     bool `json:"retidoSeguroFianca"`
	RetidoSeguroIncendio   bool `json:"retidoSeguroIncendio"`
	AntecipaCondominio     bool `json:"antecipaCondominio"`
	AntecipaSeguroFianca   bool `json:"antecipaSeguroFianca"`
	AntecipaSeguroIncendio bool `json:"antecipaSeguroIncendio"`

	TipoGarantia string    `json:"tipoGarantia"`
	Garantia     *Garantia `json:"garantia"`

	TemCorretor bool     `json:"temCorretor"`
	Corretor    Corretor `json:"corretor"`

	QuantidadePets int   `json:"quantidadePets"`
	Pets           []Pet `json:"pets"`

	ClausulasAdicionais string `json:"clausulasAdicionais"`

	Locadores  []rateio.Alocacao `json:"locadores"`
	Locatarios []uint            `json:"locatarios"`
}

type ParcelamentoRequest struct {
	DataInicio string `json:"dataInicio"`
	Parcelas   int    `json:"parcelas"`
}

func parseData(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return d
}

// aplicarRequest despeja o payload no formulário pelos métodos Definir*, para
// que os campos derivados sejam recalculados no caminho normal.
func aplicarRequest(f *Formulario, req *ContratoRequest) {
	r := &f.Rascunho

	r.TempoRenovacao = req.TempoRenovacao
	r.RenovacaoAutomatica = req.RenovacaoAutomatica
	r.ProximoReajusteAutomatico = req.ProximoReajusteAutomatico
	r.DiaVencimento = req.DiaVencimento
	if ultimo := parseData(req.UltimoReajuste); !ultimo.IsZero() {
		r.UltimoReajuste = &ultimo
	} else {
		r.UltimoReajuste = nil
	}

	r.ValorAluguel = req.ValorAluguel
	r.ValorCondominio = req.ValorCondominio
	r.ValorFci = req.ValorFci
	r.ValorIptu = req.ValorIptu
	r.ValorSeguroFianca = req.ValorSeguroFianca
	r.ValorSeguroIncendio = req.ValorSeguroIncendio
	r.TaxaAdministracao = req.TaxaAdministracao
	r.PercentualReajuste = req.PercentualReajuste
	r.Bonificacao = req.Bonificacao
	r.PercentualMultaAtraso = req.PercentualMultaAtraso

	r.RetidoFci = req.RetidoFci
	r.RetidoIptu = req.RetidoIptu
	r.RetidoCondominio = req.RetidoCondominio
	r.RetidoSeguroFianca = req.RetidoSeguroFianca
	r.RetidoSeguroIncendio = req.RetidoSeguroIncendio
	r.AntecipaCondominio = req.AntecipaCondominio
	r.AntecipaSeguroFianca = req.AntecipaSeguroFianca
	r.AntecipaSeguroIncendio = req.AntecipaSeguroIncendio

	r.TipoGarantia = req.TipoGarantia
	r.Garantia = req.Garantia
	r.TemCorretor = req.TemCorretor
	if req.TemCorretor {
		r.Corretor = req.Corretor
	} else {
		r.Corretor = Corretor{}
	}
	r.ClausulasAdicionais = req.ClausulasAdicionais

	f.DefinirImovel(req.IdImovel)
	f.DefinirDataInicio(parseData(req.DataInicio))
	f.DefinirPeriodoContrato(req.PeriodoContrato)
	f.DefinirTempoReajuste(req.TempoReajuste)
	f.DefinirParcelamentoSeguroFianca(parseData(req.SeguroFianca.DataInicio), req.SeguroFianca.Parcelas)
	f.DefinirParcelamentoSeguroIncendio(parseData(req.SeguroIncendio.DataInicio), req.SeguroIncendio.Parcelas)
	f.DefinirParcelamentoIptu(parseData(req.Iptu.DataInicio), req.Iptu.Parcelas)

	f.DefinirQuantidadePets(req.QuantidadePets)
	for i, p := range req.Pets {
		f.DefinirPet(i, p)
	}

	f.Locadores = append([]rateio.Alocacao{}, req.Locadores...)
	f.Locatarios = make([]VinculoLocatario, 0, len(req.Locatarios))
	for _, id := range req.Locatarios {
		f.Locatarios = append(f.Locatarios, VinculoLocatario{LocatarioID: id})
	}
}

// FormularioResposta é o retorno da visualização/edição: rascunho e listas
// que o formulário possui.
type FormularioResposta struct {
	Contrato      Contrato                `json:"contrato"`
	Locadores     []rateio.Alocacao       `json:"locadores"`
	Locatarios    []VinculoLocatario      `json:"locatarios"`
	DadosCorretor *DadosBancariosCorretor `json:"dadosCorretor,omitempty"`
}
