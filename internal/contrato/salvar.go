package contrato

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fdelfino93/locacao-sub002/internal/rateio"
)

// EtapaAnexo nomeia cada etapa posterior à gravação do contrato.
type EtapaAnexo string

const (
	EtapaLocadores  EtapaAnexo = "locadores"
	EtapaLocatarios EtapaAnexo = "locatarios"
	EtapaGarantia   EtapaAnexo = "garantia"
	EtapaPets       EtapaAnexo = "pets"
)

// ResultadoAnexo registra o desfecho de uma etapa de anexo. Erro preenchido
// significa etapa falhada, mas o contrato em si já foi gravado.
type ResultadoAnexo struct {
	Etapa EtapaAnexo `json:"etapa"`
	Erro  string     `json:"erro,omitempty"`
}

// ResultadoSalvar devolve o id gravado e o desfecho de cada anexo, para que o
// chamador possa exibir falhas parciais em vez de só registrá-las em log.
type ResultadoSalvar struct {
	ContratoID uint             `json:"contratoId"`
	Anexos     []ResultadoAnexo `json:"anexos"`
}

// Salvar roda a trava de envio e grava o contrato. A sequência é estritamente
// ordenada: contrato, depois locadores, locatários, garantia e pets, porque
// as etapas de anexo dependem do id gerado na primeira. Cada anexo é feito em
// melhor esforço: a falha vira um aviso no resultado e a sequência continua,
// sem desfazer o contrato já gravado.
//
// Em criação bem-sucedida o formulário volta ao rascunho em branco; em edição
// o rascunho é mantido como está.
func (f *Formulario) Salvar(ctx context.Context) (*ResultadoSalvar, error) {
	if err := f.ValidarParaEnvio(); err != nil {
		return nil, err
	}

	f.estado = EstadoSalvando
	f.mensagem = ""

	var err error
	if f.modo.Tipo == ModoEdicao {
		f.Rascunho.ID = f.modo.ContratoID
		err = f.repo.Atualizar(ctx, &f.Rascunho)
	} else {
		err = f.repo.Criar(ctx, &f.Rascunho)
	}
	if err != nil {
		// Falha de salvamento é recuperável: volta a Pronto com mensagem,
		// nunca ao estado terminal de erro.
		f.estado = EstadoPronto
		f.mensagem = "não foi possível salvar o contrato"
		return nil, err
	}

	id := f.Rascunho.ID
	resultado := &ResultadoSalvar{ContratoID: id}

	anexar := func(etapa EtapaAnexo, fn func() error) {
		r := ResultadoAnexo{Etapa: etapa}
		if err := fn(); err != nil {
			r.Erro = err.Error()
			logrus.WithError(err).WithFields(logrus.Fields{
				"contratoId": id,
				"etapa":      etapa,
			}).Warn("contrato salvo, mas etapa de anexo falhou")
		}
		resultado.Anexos = append(resultado.Anexos, r)
	}

	anexar(EtapaLocadores, func() error {
		return f.repo.AnexarLocadores(ctx, id, f.linhasLocadores(id))
	})
	anexar(EtapaLocatarios, func() error {
		return f.repo.AnexarLocatarios(ctx, id, f.vinculosLocatarios(id))
	})
	if f.Rascunho.Garantia.Preenchida() {
		anexar(EtapaGarantia, func() error {
			g := *f.Rascunho.Garantia
			if g.Tipo == "" {
				g.Tipo = f.Rascunho.TipoGarantia
			}
			return f.repo.AnexarGarantia(ctx, id, &g)
		})
	}
	if f.Rascunho.QuantidadePets > 0 {
		anexar(EtapaPets, func() error {
			return f.repo.AnexarPets(ctx, id, f.Rascunho.Pets)
		})
	}

	if f.modo.Tipo != ModoEdicao {
		f.limpar()
	}
	f.estado = EstadoPronto
	return resultado, nil
}

func (f *Formulario) linhasLocadores(contratoID uint) []ContratoLocador {
	linhas := make([]ContratoLocador, 0, len(f.Locadores))
	for _, a := range f.Locadores {
		linhas = append(linhas, ContratoLocador{
			ContratoID:      contratoID,
			LocadorID:       a.LocadorID,
			ContaBancariaID: a.ContaBancariaID,
			Porcentagem:     a.Porcentagem,
		})
	}
	return linhas
}

func (f *Formulario) vinculosLocatarios(contratoID uint) []ContratoLocatario {
	vinculos := make([]ContratoLocatario, 0, len(f.Locatarios))
	for _, v := range f.Locatarios {
		vinculos = append(vinculos, ContratoLocatario{
			ContratoID:  contratoID,
			LocatarioID: v.LocatarioID,
		})
	}
	return vinculos
}

// limpar devolve o formulário ao rascunho em branco após uma criação.
func (f *Formulario) limpar() {
	f.Rascunho = Contrato{}
	f.Locadores = []rateio.Alocacao{}
	f.Locatarios = []VinculoLocatario{}
	f.DadosCorretor = nil
}
