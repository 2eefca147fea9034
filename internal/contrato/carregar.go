package contrato

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fdelfino93/locacao-sub002/internal/rateio"
)

// Carregar busca o contrato e, depois, as seis coleções relacionadas em
// paralelo. A falha da busca principal é fatal e leva o formulário a
// EstadoErro; a falha de uma coleção é registrada e ignorada, a seção
// correspondente simplesmente fica vazia. O ctx é checado antes de cada
// efetivação de estado, para que um formulário descartado não receba dados
// atrasados.
func (f *Formulario) Carregar(ctx context.Context) error {
	if f.modo.Tipo == ModoCriacao {
		return nil
	}
	f.estado = EstadoCarregando
	id := f.modo.ContratoID

	c, err := f.repo.BuscarPorID(ctx, id)
	if err != nil {
		f.estado = EstadoErro
		f.mensagem = "não foi possível carregar o contrato"
		logrus.WithError(err).WithField("contratoId", id).Error("contrato: falha na busca principal")
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.Rascunho = *c

	var (
		wg         sync.WaitGroup
		locadores  []ContratoLocador
		locatarios []ContratoLocatario
		pets       []Pet
		garantias  []Garantia
		plano      *Plano
		dadosBanco *DadosBancariosCorretor
	)

	buscar := func(secao string, fn func() error) {
		defer wg.Done()
		if err := fn(); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"contratoId": id,
				"secao":      secao,
			}).Warn("contrato: coleção relacionada indisponível")
		}
	}

	wg.Add(6)
	go buscar("locadores", func() error {
		v, err := f.repo.BuscarLocadores(ctx, id)
		if err == nil {
			locadores = v
		}
		return err
	})
	go buscar("locatarios", func() error {
		v, err := f.repo.BuscarLocatarios(ctx, id)
		if err == nil {
			locatarios = v
		}
		return err
	})
	go buscar("pets", func() error {
		v, err := f.repo.BuscarPets(ctx, id)
		if err == nil {
			pets = v
		}
		return err
	})
	go buscar("garantias", func() error {
		v, err := f.repo.BuscarGarantias(ctx, id)
		if err == nil {
			garantias = v
		}
		return err
	})
	go buscar("plano", func() error {
		v, err := f.repo.BuscarPlano(ctx, id)
		if err == nil {
			plano = v
		}
		return err
	})
	go buscar("dadosBancariosCorretor", func() error {
		v, err := f.repo.BuscarDadosBancariosCorretor(ctx, id)
		if err == nil {
			dadosBanco = v
		}
		return err
	})
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	f.Locadores = make([]rateio.Alocacao, 0, len(locadores))
	for _, l := range locadores {
		f.Locadores = append(f.Locadores, rateio.Alocacao{
			LocadorID:       l.LocadorID,
			ContaBancariaID: l.ContaBancariaID,
			Porcentagem:     l.Porcentagem,
		})
	}
	f.Locatarios = make([]VinculoLocatario, 0, len(locatarios))
	for _, v := range locatarios {
		f.Locatarios = append(f.Locatarios, VinculoLocatario{LocatarioID: v.LocatarioID})
	}
	f.Rascunho.Pets = pets
	f.Rascunho.QuantidadePets = len(pets)
	if len(garantias) > 0 {
		g := garantias[0]
		f.Rascunho.Garantia = &g
		if f.Rascunho.TipoGarantia == "" {
			f.Rascunho.TipoGarantia = g.Tipo
		}
	}
	if plano != nil && plano.TaxaAdministracao > 0 {
		f.Rascunho.TaxaAdministracao = plano.TaxaAdministracao
	}
	f.DadosCorretor = dadosBanco

	f.normalizar()
	f.estado = EstadoPronto
	return nil
}
