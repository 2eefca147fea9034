package contrato

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PeriodoIndeterminado sinaliza um contrato sem prazo definido: nenhuma data
// de término é derivada.
const PeriodoIndeterminado = 0

// Tipos de garantia aceitos. Exatamente uma variante da Garantia é preenchida
// conforme o tipo escolhido.
const (
	GarantiaFiador              = "Fiador"
	GarantiaCaucao              = "Caução"
	GarantiaSeguroFianca        = "Seguro-fiança"
	GarantiaTituloCapitalizacao = "Título de Capitalização"
	GarantiaSemGarantia         = "Sem garantia"
)

// Portes de pet aceitos.
const (
	PortePequeno = "Pequeno"
	PorteMedio   = "Médio"
	PorteGrande  = "Grande"
)

// Contrato é o registro de locação persistido. Os campos marcados como
// derivados nunca são editados diretamente; o Formulario os recalcula a cada
// edição dos campos de origem.
type Contrato struct {
	gorm.Model
	ImovelID uint `gorm:"not null;index" json:"idImovel"`

	// Vigência e reajuste
	DataInicio                *time.Time `json:"dataInicio"`
	PeriodoContrato           int        `json:"periodoContrato"` // meses; PeriodoIndeterminado = sem prazo
	DataFim                   *time.Time `json:"dataFim"`         // derivado
	TempoReajuste             int        `json:"tempoReajuste"`   // meses entre reajustes
	UltimoReajuste            *time.Time `json:"ultimoReajuste"`
	ProximoReajuste           *time.Time `json:"proximoReajuste"` // derivado
	TempoRenovacao            int        `json:"tempoRenovacao"`
	RenovacaoAutomatica       bool       `json:"renovacaoAutomatica"`
	ProximoReajusteAutomatico bool       `json:"proximoReajusteAutomatico"`
	DiaVencimento             int        `json:"diaVencimento"`

	// Valores mensais
	ValorAluguel          float64 `json:"valorAluguel"`
	ValorCondominio       float64 `json:"valorCondominio"`
	ValorFci              float64 `json:"valorFci"`
	ValorIptu             float64 `json:"valorIptu"`
	ValorSeguroFianca     float64 `json:"valorSeguroFianca"`
	ValorSeguroIncendio   float64 `json:"valorSeguroIncendio"`
	TaxaAdministracao     float64 `json:"taxaAdministracao"` // percentual sobre o aluguel
	PercentualReajuste    float64 `json:"percentualReajuste"`
	Bonificacao           float64 `json:"bonificacao"`
	PercentualMultaAtraso float64 `json:"percentualMultaAtraso"`

	// Parcelamentos por encargo
	ParcelamentoSeguroFianca   Parcelamento `gorm:"embedded;embeddedPrefix:seguro_fianca_" json:"parcelamentoSeguroFianca"`
	ParcelamentoSeguroIncendio Parcelamento `gorm:"embedded;embeddedPrefix:seguro_incendio_" json:"parcelamentoSeguroIncendio"`
	ParcelamentoIptu           Parcelamento `gorm:"embedded;embeddedPrefix:iptu_" json:"parcelamentoIptu"`

	// Retenções (descontadas do repasse) e antecipações (pagas adiantadas).
	// Flags independentes entre si.
	RetidoFci              bool `json:"retidoFci"`
	RetidoIptu             bool `json:"retidoIptu"`
	RetidoCondominio       bool `json:"retidoCondominio"`
	RetidoSeguroFianca     bool `json:"retidoSeguroFianca"`
	RetidoSeguroIncendio   bool `json:"retidoSeguroIncendio"`
	AntecipaCondominio     bool `json:"antecipaCondominio"`
	AntecipaSeguroFianca   bool `json:"antecipaSeguroFianca"`
	AntecipaSeguroIncendio bool `json:"antecipaSeguroIncendio"`

	TipoGarantia string    `gorm:"size:50" json:"tipoGarantia"`
	Garantia     *Garantia `gorm:"foreignKey:ContratoID" json:"garantia,omitempty"`

	TemCorretor bool     `json:"temCorretor"`
	Corretor    Corretor `gorm:"embedded;embeddedPrefix:corretor_" json:"corretor"`

	QuantidadePets int   `json:"quantidadePets"`
	Pets           []Pet `gorm:"foreignKey:ContratoID" json:"pets"`

	ClausulasAdicionais string `gorm:"type:text" json:"clausulasAdicionais"`

	Locadores  []ContratoLocador   `gorm:"foreignKey:ContratoID" json:"locadores"`
	Locatarios []ContratoLocatario `gorm:"foreignKey:ContratoID" json:"locatarios"`
}

// Parcelamento é o sub-cronograma de um encargo (seguro fiança, seguro
// incêndio, IPTU): início, quantidade de parcelas mensais e fim derivado.
type Parcelamento struct {
	DataInicio *time.Time `json:"dataInicio"`
	DataFim    *time.Time `json:"dataFim"` // derivado
	Parcelas   int        `json:"parcelas"`
}

// Corretor é o bloco de identidade do corretor, preenchido quando TemCorretor.
type Corretor struct {
	Nome     string `json:"nome"`
	Cpf      string `json:"cpf"`
	Creci    string `json:"creci"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

// DadosBancariosCorretor é a conta de repasse do corretor; carregada à parte
// do contrato.
type DadosBancariosCorretor struct {
	gorm.Model
	ContratoID uint   `gorm:"not null;index" json:"contratoId"`
	Banco      string `json:"banco"`
	Agencia    string `json:"agencia"`
	Conta      string `json:"conta"`
	TipoConta  string `json:"tipoConta"`
	ChavePix   string `json:"chavePix"`
	Titular    string `json:"titular"`
}

// Garantia guarda o payload da garantia escolhida. Os campos das variantes
// não selecionadas ficam vazios.
type Garantia struct {
	gorm.Model
	ContratoID uint   `gorm:"not null;index" json:"contratoId"`
	Tipo       string `gorm:"size:50" json:"tipo"`

	// Fiador
	FiadorNome     string `json:"fiadorNome"`
	FiadorCpf      string `json:"fiadorCpf"`
	FiadorTelefone string `json:"fiadorTelefone"`
	FiadorEndereco string `json:"fiadorEndereco"`

	// Caução
	CaucaoTipo      string  `json:"caucaoTipo"`
	CaucaoDescricao string  `json:"caucaoDescricao"`
	CaucaoValor     float64 `json:"caucaoValor"`

	// Seguro-fiança
	SeguroSeguradora string     `json:"seguroSeguradora"`
	SeguroApolice    string     `json:"seguroApolice"`
	SeguroCobertura  float64    `json:"seguroCobertura"`
	SeguroValidade   *time.Time `json:"seguroValidade"`

	// Título de capitalização
	TituloEmissor    string     `json:"tituloEmissor"`
	TituloNumero     string     `json:"tituloNumero"`
	TituloValor      float64    `json:"tituloValor"`
	TituloVencimento *time.Time `json:"tituloVencimento"`
}

// Preenchida informa se algum campo de variante foi informado. Garantias
// totalmente vazias não são anexadas ao salvar.
func (g *Garantia) Preenchida() bool {
	if g == nil {
		return false
	}
	return g.Tipo != "" ||
		g.FiadorNome != "" || g.FiadorCpf != "" || g.FiadorTelefone != "" || g.FiadorEndereco != "" ||
		g.CaucaoTipo != "" || g.CaucaoDescricao != "" || g.CaucaoValor > 0 ||
		g.SeguroSeguradora != "" || g.SeguroApolice != "" || g.SeguroCobertura > 0 || g.SeguroValidade != nil ||
		g.TituloEmissor != "" || g.TituloNumero != "" || g.TituloValor > 0 || g.TituloVencimento != nil
}

// Pet é um animal declarado no contrato; a lista acompanha QuantidadePets.
type Pet struct {
	gorm.Model
	ContratoID     uint   `gorm:"index" json:"contratoId"`
	Nome           string `json:"nome"`
	Especie        string `json:"especie"`
	Raca           string `json:"raca"`
	Porte          string `gorm:"size:20" json:"porte"`
	Idade          int    `json:"idade"`
	VacinacaoEmDia bool   `json:"vacinacaoEmDia"`
}

// ContratoLocador é uma linha persistida do rateio de propriedade.
type ContratoLocador struct {
	gorm.Model
	ContratoID      uint            `gorm:"not null;index" json:"contratoId"`
	LocadorID       uint            `gorm:"not null" json:"locadorId"`
	ContaBancariaID uint            `json:"contaBancariaId"`
	Porcentagem     decimal.Decimal `gorm:"type:decimal(5,2)" json:"porcentagem"`
}

// ContratoLocatario vincula um inquilino ao contrato.
type ContratoLocatario struct {
	gorm.Model
	ContratoID  uint `gorm:"not null;index" json:"contratoId"`
	LocatarioID uint `gorm:"not null" json:"locatarioId"`
}

// Plano é o plano de administração aplicado ao contrato.
type Plano struct {
	gorm.Model
	ContratoID        uint    `gorm:"not null;index" json:"contratoId"`
	Nome              string  `json:"nome"`
	TaxaAdministracao float64 `json:"taxaAdministracao"`
	Descricao         string  `json:"descricao"`
}
