package contrato

import "errors"

// Mensagens da trava de envio, na ordem em que as checagens rodam. A primeira
// reprovação interrompe o envio.
var (
	ErrImovelNaoSelecionado  = errors.New("selecione um imóvel para o contrato")
	ErrDataInicioAusente     = errors.New("informe a data de início do contrato")
	ErrDataFimAusente        = errors.New("informe o período do contrato para calcular a data de término")
	ErrAluguelInvalido       = errors.New("o valor do aluguel deve ser maior que zero")
	ErrVencimentoAusente     = errors.New("informe o dia de vencimento do aluguel")
	ErrGarantiaNaoEscolhida  = errors.New("selecione o tipo de garantia")
	ErrSemLocatarios         = errors.New("inclua pelo menos um locatário no contrato")
	ErrLocatarioNaoEscolhido = errors.New("selecione todos os locatários incluídos")
)

// ValidarParaEnvio é a trava que roda antes de salvar. As checagens são
// avaliadas nesta ordem fixa e a função é idempotente: o mesmo rascunho
// produz sempre o mesmo resultado e a mesma primeira mensagem.
//
// A soma de 100% do rateio fica deliberadamente fora desta trava; ela é
// exposta à parte por StatusRateio e rateio.Validar, para que a política mais
// estrita possa ser ligada por quem chama.
func (f *Formulario) ValidarParaEnvio() error {
	r := &f.Rascunho

	if r.ImovelID == 0 {
		return ErrImovelNaoSelecionado
	}
	if r.DataInicio == nil {
		return ErrDataInicioAusente
	}
	if r.DataFim == nil {
		return ErrDataFimAusente
	}
	if r.ValorAluguel <= 0 {
		return ErrAluguelInvalido
	}
	if r.DiaVencimento == 0 {
		return ErrVencimentoAusente
	}
	if r.TipoGarantia == "" {
		return ErrGarantiaNaoEscolhida
	}
	if len(f.Locatarios) == 0 {
		return ErrSemLocatarios
	}
	for _, v := range f.Locatarios {
		if v.LocatarioID == 0 {
			return ErrLocatarioNaoEscolhido
		}
	}
	return nil
}

var errosTrava = []error{
	ErrImovelNaoSelecionado,
	ErrDataInicioAusente,
	ErrDataFimAusente,
	ErrAluguelInvalido,
	ErrVencimentoAusente,
	ErrGarantiaNaoEscolhida,
	ErrSemLocatarios,
	ErrLocatarioNaoEscolhido,
}

// EhErroDeValidacao informa se o erro veio da trava de envio, para o handler
// distinguir reprovação do rascunho de falha de infraestrutura.
func EhErroDeValidacao(err error) bool {
	for _, e := range errosTrava {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
